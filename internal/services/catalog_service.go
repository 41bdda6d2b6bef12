package services

import (
	"context"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/response_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/repositories"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

// CatalogServiceInterface exposes read-only snapshots of what the operator
// sells: destinations, experiences, hotels and the fee rules. The builder
// never mutates any of it.
type CatalogServiceInterface interface {
	ListDestinations(ctx context.Context, page int, pageSize int) ([]response_models.DestinationResponse, error)
	ListExperiences(ctx context.Context, destinationID string) ([]response_models.ExperienceResponse, error)
	ListHotels(ctx context.Context, destinationID string) ([]response_models.HotelResponse, error)
	ListCostSettings(ctx context.Context) ([]response_models.CostSettingResponse, error)

	// CostInputs is the raw snapshot the cost calculator folds over.
	CostInputs(ctx context.Context) ([]db_models.CostSetting, []db_models.Experience, []db_models.Hotel, error)
}

type CatalogService struct {
	destinationRepo repositories.DestinationRepositoryInterface
	experienceRepo  repositories.ExperienceRepositoryInterface
	hotelRepo       repositories.HotelRepositoryInterface
	costSettingRepo repositories.CostSettingRepositoryInterface
}

func NewCatalogService(
	destinationRepo repositories.DestinationRepositoryInterface,
	experienceRepo repositories.ExperienceRepositoryInterface,
	hotelRepo repositories.HotelRepositoryInterface,
	costSettingRepo repositories.CostSettingRepositoryInterface,
) CatalogServiceInterface {
	return &CatalogService{
		destinationRepo: destinationRepo,
		experienceRepo:  experienceRepo,
		hotelRepo:       hotelRepo,
		costSettingRepo: costSettingRepo,
	}
}

func (s *CatalogService) ListDestinations(ctx context.Context, page int, pageSize int) ([]response_models.DestinationResponse, error) {
	destinations, err := s.destinationRepo.GetAllDestinations(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, response_models.DestinationResponse{
			ID:          d.ID.String(),
			Name:        d.Name,
			Region:      d.Region,
			Description: d.Description,
			Images:      d.Images,
			Altitude:    d.Altitude,
			BestSeason:  d.BestSeason,
		})
	}
	return out, nil
}

func (s *CatalogService) ListExperiences(ctx context.Context, destinationID string) ([]response_models.ExperienceResponse, error) {
	experiences, err := s.experienceRepo.GetExperiencesByDestination(ctx, destinationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		out = append(out, response_models.ExperienceResponse{
			ID:          e.ID.String(),
			Title:       e.Title,
			Description: e.Description,
			Duration:    e.Duration,
			Price:       e.Price.String(),
			Images:      e.Images,
		})
	}
	return out, nil
}

func (s *CatalogService) ListHotels(ctx context.Context, destinationID string) ([]response_models.HotelResponse, error) {
	hotels, err := s.hotelRepo.GetHotelsByDestination(ctx, destinationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, response_models.HotelResponse{
			ID:            h.ID.String(),
			Name:          h.Name,
			Category:      h.Category,
			Description:   h.Description,
			PricePerNight: h.PricePerNight.String(),
			Images:        h.Images,
		})
	}
	return out, nil
}

func (s *CatalogService) ListCostSettings(ctx context.Context) ([]response_models.CostSettingResponse, error) {
	settings, err := s.costSettingRepo.GetActiveCostSettings(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CostSettingResponse, 0, len(settings))
	for _, cs := range settings {
		out = append(out, response_models.CostSettingResponse{
			ID:            cs.ID.String(),
			Title:         cs.Title,
			Price:         cs.Price.String(),
			ChargeType:    string(cs.ChargeType),
			Scope:         string(cs.Scope),
			TravelerClass: string(cs.TravelerClass),
		})
	}
	return out, nil
}

func (s *CatalogService) CostInputs(ctx context.Context) ([]db_models.CostSetting, []db_models.Experience, []db_models.Hotel, error) {
	settings, err := s.costSettingRepo.GetActiveCostSettings(ctx)
	if err != nil {
		return nil, nil, nil, utils.ErrDatabaseError
	}
	experiences, err := s.experienceRepo.GetAllExperiences(ctx)
	if err != nil {
		return nil, nil, nil, utils.ErrDatabaseError
	}
	hotels, err := s.hotelRepo.GetAllHotels(ctx)
	if err != nil {
		return nil, nil, nil, utils.ErrDatabaseError
	}
	return settings, experiences, hotels, nil
}
