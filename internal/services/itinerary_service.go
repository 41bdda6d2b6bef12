package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/repositories"
	mem "github.com/ogghostdeveloper/Tourism-sub000/pkg/memcache"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

const builderSessionTTL = 4 * time.Hour

// ItineraryServiceInterface drives one live building session: the day/item
// store plus the placement rules that guard it. Every mutation hands back
// the fresh day sequence so the caller can render it directly.
type ItineraryServiceInterface interface {
	StartSession(ctx context.Context, destinationID string) (*itinerary_models.Builder, error)
	GetSession(sessionID string) (*itinerary_models.Builder, error)
	EndSession(sessionID string)

	AddDay(sessionID string) ([]itinerary_models.Day, error)
	RemoveDay(sessionID string, dayIdx int) ([]itinerary_models.Day, error)
	AddExperience(ctx context.Context, sessionID string, dayIdx int, experienceID string) ([]itinerary_models.Day, error)
	AddTravel(ctx context.Context, sessionID string, dayIdx int, destinationID string) ([]itinerary_models.Day, error)
	AddHotel(ctx context.Context, sessionID string, dayIdx int, hotelID string) ([]itinerary_models.Day, error)
	RemoveItem(sessionID string, dayIdx int, itemID string) ([]itinerary_models.Day, error)
	ReorderItems(sessionID string, dayIdx int, itemIDs []string) ([]itinerary_models.Day, error)

	LocationAt(sessionID string, dayIdx int, itemIdx int) (id string, name string, err error)
	UpdateTraveler(sessionID string, profile itinerary_models.TravelerProfile) error
}

type ItineraryService struct {
	sessions        mem.BuilderSessionStore
	destinationRepo repositories.DestinationRepositoryInterface
	experienceRepo  repositories.ExperienceRepositoryInterface
	hotelRepo       repositories.HotelRepositoryInterface
	travelTime      TravelTimeProviderInterface
}

func NewItineraryService(
	sessions mem.BuilderSessionStore,
	destinationRepo repositories.DestinationRepositoryInterface,
	experienceRepo repositories.ExperienceRepositoryInterface,
	hotelRepo repositories.HotelRepositoryInterface,
	travelTime TravelTimeProviderInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		sessions:        sessions,
		destinationRepo: destinationRepo,
		experienceRepo:  experienceRepo,
		hotelRepo:       hotelRepo,
		travelTime:      travelTime,
	}
}

func (s *ItineraryService) StartSession(ctx context.Context, destinationID string) (*itinerary_models.Builder, error) {
	destination, err := s.destinationRepo.GetDestinationByID(ctx, destinationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationMissing
	}

	builder := itinerary_models.NewBuilder(itinerary_models.EntryPoint{
		DestinationID: destination.ID.String(),
		Name:          destination.Name,
	})
	s.sessions.Put(builder.ID.String(), builder, builderSessionTTL)
	return builder, nil
}

func (s *ItineraryService) GetSession(sessionID string) (*itinerary_models.Builder, error) {
	builder, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return builder, nil
}

func (s *ItineraryService) EndSession(sessionID string) {
	s.sessions.Drop(sessionID)
}

func (s *ItineraryService) AddDay(sessionID string) ([]itinerary_models.Day, error) {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	builder.Days = itinerary_models.AppendDay(builder.Days)
	return builder.Days, nil
}

func (s *ItineraryService) RemoveDay(sessionID string, dayIdx int) ([]itinerary_models.Day, error) {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if dayIdx < 0 || dayIdx >= len(builder.Days) {
		return nil, utils.ErrDayOutOfRange
	}
	if len(builder.Days) == 1 {
		return nil, utils.ErrLastDay
	}
	builder.Days = itinerary_models.RemoveDayAt(builder.Days, dayIdx)
	return builder.Days, nil
}

func (s *ItineraryService) AddExperience(ctx context.Context, sessionID string, dayIdx int, experienceID string) ([]itinerary_models.Day, error) {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if dayIdx < 0 || dayIdx >= len(builder.Days) {
		return nil, utils.ErrDayOutOfRange
	}
	if builder.Days[dayIdx].HasHotel() {
		return nil, utils.ErrDayClosedByHotel
	}

	experience, err := s.experienceRepo.GetExperienceByID(ctx, experienceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if experience == nil {
		return nil, utils.ErrExperienceMissing
	}

	builder.Days = itinerary_models.AppendItem(builder.Days, dayIdx, itinerary_models.ExperienceItem{
		ID:           uuid.New(),
		ExperienceID: experience.ID.String(),
		Title:        experience.Title,
		Duration:     experience.Duration,
	})
	return builder.Days, nil
}

func (s *ItineraryService) AddTravel(ctx context.Context, sessionID string, dayIdx int, destinationID string) ([]itinerary_models.Day, error) {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if dayIdx < 0 || dayIdx >= len(builder.Days) {
		return nil, utils.ErrDayOutOfRange
	}
	if builder.Days[dayIdx].HasHotel() {
		return nil, utils.ErrDayClosedByHotel
	}

	destination, err := s.destinationRepo.GetDestinationByID(ctx, destinationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationMissing
	}

	fromID, fromName := builder.CurrentLocation(dayIdx, -1)
	hours := s.travelTime.Lookup(ctx, fromName, destination.Name)

	builder.Days = itinerary_models.AppendItem(builder.Days, dayIdx, itinerary_models.TravelItem{
		ID:       uuid.New(),
		FromID:   fromID,
		ToID:     destination.ID.String(),
		FromName: fromName,
		ToName:   destination.Name,
		Hours:    hours,
	})
	return builder.Days, nil
}

// AddHotel closes the day: one hotel stay per day, and a stay on the last
// day opens the next morning as a fresh empty day.
func (s *ItineraryService) AddHotel(ctx context.Context, sessionID string, dayIdx int, hotelID string) ([]itinerary_models.Day, error) {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if dayIdx < 0 || dayIdx >= len(builder.Days) {
		return nil, utils.ErrDayOutOfRange
	}
	if builder.Days[dayIdx].HasHotel() {
		return nil, utils.ErrHotelAlreadySet
	}

	hotel, err := s.hotelRepo.GetHotelByID(ctx, hotelID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hotel == nil {
		return nil, utils.ErrHotelMissing
	}

	days := itinerary_models.AppendItem(builder.Days, dayIdx, itinerary_models.HotelItem{
		ID:      uuid.New(),
		HotelID: hotel.ID.String(),
		Name:    hotel.Name,
	})
	if dayIdx == len(days)-1 {
		days = itinerary_models.AppendDay(days)
	}
	builder.Days = days
	return builder.Days, nil
}

func (s *ItineraryService) RemoveItem(sessionID string, dayIdx int, itemID string) ([]itinerary_models.Day, error) {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if dayIdx < 0 || dayIdx >= len(builder.Days) {
		return nil, utils.ErrDayOutOfRange
	}
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	builder.Days = itinerary_models.RemoveItem(builder.Days, dayIdx, id)
	return builder.Days, nil
}

func (s *ItineraryService) ReorderItems(sessionID string, dayIdx int, itemIDs []string) ([]itinerary_models.Day, error) {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if dayIdx < 0 || dayIdx >= len(builder.Days) {
		return nil, utils.ErrDayOutOfRange
	}

	order := make([]uuid.UUID, 0, len(itemIDs))
	for _, raw := range itemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		order = append(order, id)
	}

	days, ok := itinerary_models.ReorderItems(builder.Days, dayIdx, order)
	if !ok {
		return nil, utils.ErrNotAPermutation
	}
	builder.Days = days
	return builder.Days, nil
}

func (s *ItineraryService) LocationAt(sessionID string, dayIdx int, itemIdx int) (string, string, error) {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return "", "", err
	}
	id, name := builder.CurrentLocation(dayIdx, itemIdx)
	return id, name, nil
}

func (s *ItineraryService) UpdateTraveler(sessionID string, profile itinerary_models.TravelerProfile) error {
	builder, err := s.GetSession(sessionID)
	if err != nil {
		return err
	}
	builder.Traveler = profile
	return nil
}
