package response_models

type DestinationResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Region      string   `json:"region"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Altitude    string   `json:"altitude,omitempty"`
	BestSeason  string   `json:"best_season,omitempty"`
}

type ExperienceResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	Images      []string `json:"images"`
}

type HotelResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	PricePerNight string   `json:"price_per_night"`
	Images        []string `json:"images"`
}

type CostSettingResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	ChargeType    string `json:"charge_type"`
	Scope         string `json:"scope"`
	TravelerClass string `json:"traveler_class"`
}
