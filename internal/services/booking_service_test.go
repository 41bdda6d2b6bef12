package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

type recordingBookingRepo struct {
	created *db_models.Booking
}

func (r *recordingBookingRepo) CreateBooking(ctx context.Context, booking *db_models.Booking) error {
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now().Unix()
	r.created = booking
	return nil
}

func (r *recordingBookingRepo) GetBookingByID(ctx context.Context, id string) (*db_models.Booking, error) {
	return r.created, nil
}

type recordingMailService struct {
	sent chan string
}

func newRecordingMailService() *recordingMailService {
	return &recordingMailService{sent: make(chan string, 4)}
}

func (m *recordingMailService) SendBookingConfirmation(to, travelerName, bookingRef string) error {
	m.sent <- "traveler:" + to
	return nil
}

func (m *recordingMailService) SendOperatorNotification(bookingRef, summary string) error {
	m.sent <- "operator"
	return nil
}

func validProfile() itinerary_models.TravelerProfile {
	return itinerary_models.TravelerProfile{
		FirstName:     "Asha",
		LastName:      "Rai",
		Email:         "asha@example.com",
		Phone:         "+91 90000 00000",
		Nationality:   itinerary_models.NationalityIndian,
		Adults:        2,
		ArrivalDate:   utils.ParseISODate("2025-03-01"),
		DepartureDate: utils.ParseISODate("2025-03-04"),
		Message:       "Window-facing rooms please",
	}
}

func TestSubmitItineraryPersistsAndNotifies(t *testing.T) {
	f := newItineraryFixture()
	repo := &recordingBookingRepo{}
	mailer := newRecordingMailService()
	svc := NewBookingService(f.service, NewBudgetValidator(), repo, mailer)

	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()
	_, err = f.service.AddExperience(context.Background(), sid, 0, f.raftingID)
	require.NoError(t, err)

	booking, err := svc.SubmitItinerary(context.Background(), sid, validProfile())
	require.NoError(t, err)

	assert.Equal(t, db_models.BookingStatusPending, booking.Status)
	assert.Equal(t, "Indian", booking.Nationality)
	assert.Contains(t, booking.CustomItinerary, `"type":"travel"`)
	assert.Contains(t, booking.CustomItinerary, `"type":"experience"`)

	// two independent best-effort notifications
	for i := 0; i < 2; i++ {
		select {
		case <-mailer.sent:
		case <-time.After(time.Second):
			t.Fatal("expected two notification mails")
		}
	}

	// the session is gone once the record is durable
	_, err = f.service.GetSession(sid)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestSubmitItineraryRejectsInvalidItinerary(t *testing.T) {
	f := newItineraryFixture()
	svc := NewBookingService(f.service, NewBudgetValidator(), &recordingBookingRepo{}, newRecordingMailService())

	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	// a hotel on the last day opens an empty next day, which fails validation
	_, err = f.service.AddHotel(context.Background(), sid, 0, f.hilltopID)
	require.NoError(t, err)

	_, err = svc.SubmitItinerary(context.Background(), sid, validProfile())
	assert.ErrorIs(t, err, utils.ErrEmptyDay)

	// the traveler can keep editing after a validation failure
	_, err = f.service.GetSession(sid)
	assert.NoError(t, err)
}

func TestSubmitItineraryRequiresContactAndParty(t *testing.T) {
	f := newItineraryFixture()
	svc := NewBookingService(f.service, NewBudgetValidator(), &recordingBookingRepo{}, newRecordingMailService())

	builder, err := f.service.StartSession(context.Background(), f.gangtokID)
	require.NoError(t, err)
	sid := builder.ID.String()

	profile := validProfile()
	profile.Email = ""
	_, err = svc.SubmitItinerary(context.Background(), sid, profile)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	profile = validProfile()
	profile.Adults = 0
	_, err = svc.SubmitItinerary(context.Background(), sid, profile)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	profile = validProfile()
	profile.Nationality = "Martian"
	_, err = svc.SubmitItinerary(context.Background(), sid, profile)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
