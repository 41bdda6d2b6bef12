package response_models

type BookingResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type FeeLineView struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type EstimateResponse struct {
	TripLengthDays int           `json:"trip_length_days"`
	FeeLines       []FeeLineView `json:"fee_lines"`
	FeesTotal      string        `json:"fees_total"`
	ItemsTotal     string        `json:"items_total"`
	GrandTotal     string        `json:"grand_total"`
}

type LocationResponse struct {
	DestinationID string `json:"destination_id"`
	Name          string `json:"name"`
}
