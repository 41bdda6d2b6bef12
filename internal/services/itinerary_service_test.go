package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
	mem "github.com/ogghostdeveloper/Tourism-sub000/pkg/memcache"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

type stubDestinationRepo struct {
	items map[string]*db_models.Destination
}

func (s stubDestinationRepo) GetAllDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error) {
	return nil, nil
}

func (s stubDestinationRepo) GetDestinationByID(ctx context.Context, id string) (*db_models.Destination, error) {
	return s.items[id], nil
}

func (s stubDestinationRepo) GetDestinationByName(ctx context.Context, name string) (*db_models.Destination, error) {
	for _, d := range s.items {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

type stubExperienceRepo struct {
	items map[string]*db_models.Experience
}

func (s stubExperienceRepo) GetExperiencesByDestination(ctx context.Context, destinationID string) ([]db_models.Experience, error) {
	return nil, nil
}

func (s stubExperienceRepo) GetExperienceByID(ctx context.Context, id string) (*db_models.Experience, error) {
	return s.items[id], nil
}

func (s stubExperienceRepo) GetAllExperiences(ctx context.Context) ([]db_models.Experience, error) {
	return nil, nil
}

type stubHotelRepo struct {
	items map[string]*db_models.Hotel
}

func (s stubHotelRepo) GetHotelsByDestination(ctx context.Context, destinationID string) ([]db_models.Hotel, error) {
	return nil, nil
}

func (s stubHotelRepo) GetHotelByID(ctx context.Context, id string) (*db_models.Hotel, error) {
	return s.items[id], nil
}

func (s stubHotelRepo) GetAllHotels(ctx context.Context) ([]db_models.Hotel, error) {
	return nil, nil
}

type stubTravelTimes struct {
	hours map[string]float64
}

func (s stubTravelTimes) Lookup(ctx context.Context, fromName string, toName string) float64 {
	if fromName == toName {
		return 0
	}
	if h, ok := s.hours[fromName+"->"+toName]; ok {
		return h
	}
	return 3
}

type itineraryFixture struct {
	service   ItineraryServiceInterface
	gangtokID string
	pellingID string
	raftingID string
	hilltopID string
}

func newItineraryFixture() itineraryFixture {
	gangtok := &db_models.Destination{Name: "Gangtok"}
	gangtok.ID = uuid.New()
	pelling := &db_models.Destination{Name: "Pelling"}
	pelling.ID = uuid.New()

	rafting := &db_models.Experience{DestinationID: gangtok.ID, Title: "River rafting", Duration: "5-6 Hours"}
	rafting.ID = uuid.New()

	hilltop := &db_models.Hotel{DestinationID: gangtok.ID, Name: "Hilltop Residency"}
	hilltop.ID = uuid.New()

	service := NewItineraryService(
		mem.NewBuilderSessions(),
		stubDestinationRepo{items: map[string]*db_models.Destination{
			gangtok.ID.String(): gangtok,
			pelling.ID.String(): pelling,
		}},
		stubExperienceRepo{items: map[string]*db_models.Experience{rafting.ID.String(): rafting}},
		stubHotelRepo{items: map[string]*db_models.Hotel{hilltop.ID.String(): hilltop}},
		stubTravelTimes{hours: map[string]float64{"Gangtok->Pelling": 4.5}},
	)

	return itineraryFixture{
		service:   service,
		gangtokID: gangtok.ID.String(),
		pellingID: pelling.ID.String(),
		raftingID: rafting.ID.String(),
		hilltopID: hilltop.ID.String(),
	}
}

func TestStartSessionCreatesArrivalDay(t *testing.T) {
	f := newItineraryFixture()
	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)

	require.Len(t, builder.Days, 1)
	require.Len(t, builder.Days[0].Items, 1)

	leg, ok := builder.Days[0].Items[0].(itinerary_models.TravelItem)
	require.True(t, ok)
	assert.Equal(t, "Gangtok", leg.ToName)
	assert.Equal(t, 0.0, leg.Hours)
}

func TestStartSessionUnknownDestination(t *testing.T) {
	f := newItineraryFixture()
	_, err := f.service.StartSession(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDestinationMissing)
}

func TestSessionNotFound(t *testing.T) {
	f := newItineraryFixture()
	_, err := f.service.AddDay(uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestAddTravelInfersOriginAndDuration(t *testing.T) {
	f := newItineraryFixture()
	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	days, err := f.service.AddTravel(context.Background(), sid, 0, f.pellingID)
	require.NoError(t, err)

	leg, ok := days[0].Items[1].(itinerary_models.TravelItem)
	require.True(t, ok)
	assert.Equal(t, "Gangtok", leg.FromName)
	assert.Equal(t, "Pelling", leg.ToName)
	assert.Equal(t, 4.5, leg.Hours)

	// the location right after the leg is its destination
	_, name, err := f.service.LocationAt(sid, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, "Pelling", name)
}

func TestAddHotelOnLastDayOpensNextDay(t *testing.T) {
	f := newItineraryFixture()
	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	days, err := f.service.AddHotel(context.Background(), sid, 0, f.hilltopID)
	require.NoError(t, err)

	require.Len(t, days, 2, "hotel on the last day must open the next day")
	assert.True(t, days[0].HasHotel())
	assert.Empty(t, days[1].Items)
	assert.Equal(t, 2, days[1].DayNumber)
}

func TestSecondHotelOnSameDayRejectedUnchanged(t *testing.T) {
	f := newItineraryFixture()
	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	days, err := f.service.AddHotel(context.Background(), sid, 0, f.hilltopID)
	require.NoError(t, err)
	itemsBefore := len(days[0].Items)

	_, err = f.service.AddHotel(context.Background(), sid, 0, f.hilltopID)
	assert.ErrorIs(t, err, utils.ErrHotelAlreadySet)

	after, err := f.service.GetSession(sid)
	require.NoError(t, err)
	assert.Len(t, after.Days, 2, "rejection must not change the day count")
	assert.Len(t, after.Days[0].Items, itemsBefore, "rejection must leave the day unchanged")
}

func TestClosedDayRejectsExperienceAndTravel(t *testing.T) {
	f := newItineraryFixture()
	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	_, err = f.service.AddHotel(context.Background(), sid, 0, f.hilltopID)
	require.NoError(t, err)

	_, err = f.service.AddExperience(context.Background(), sid, 0, f.raftingID)
	assert.ErrorIs(t, err, utils.ErrDayClosedByHotel)

	_, err = f.service.AddTravel(context.Background(), sid, 0, f.pellingID)
	assert.ErrorIs(t, err, utils.ErrDayClosedByHotel)
}

func TestRemoveDayKeepsAtLeastOne(t *testing.T) {
	f := newItineraryFixture()
	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	_, err = f.service.RemoveDay(sid, 0)
	assert.ErrorIs(t, err, utils.ErrLastDay)

	_, err = f.service.AddDay(sid)
	require.NoError(t, err)
	days, err := f.service.RemoveDay(sid, 0)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].DayNumber)
}

func TestReorderItemsValidatesPermutation(t *testing.T) {
	f := newItineraryFixture()
	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	days, err := f.service.AddExperience(context.Background(), sid, 0, f.raftingID)
	require.NoError(t, err)
	require.Len(t, days[0].Items, 2)

	_, err = f.service.ReorderItems(sid, 0, []string{uuid.NewString(), uuid.NewString()})
	assert.ErrorIs(t, err, utils.ErrNotAPermutation)

	reversed := []string{
		days[0].Items[1].ItemID().String(),
		days[0].Items[0].ItemID().String(),
	}
	got, err := f.service.ReorderItems(sid, 0, reversed)
	require.NoError(t, err)
	assert.Equal(t, days[0].Items[1].ItemID(), got[0].Items[0].ItemID())
}

func TestRemoveItemFiltersById(t *testing.T) {
	f := newItineraryFixture()
	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	days, err := f.service.AddExperience(context.Background(), sid, 0, f.raftingID)
	require.NoError(t, err)
	target := days[0].Items[1].ItemID().String()

	got, err := f.service.RemoveItem(sid, 0, target)
	require.NoError(t, err)
	assert.Len(t, got[0].Items, 1)
}
