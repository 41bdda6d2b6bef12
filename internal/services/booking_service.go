package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/db_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/models/itinerary_models"
	"github.com/ogghostdeveloper/Tourism-sub000/internal/repositories"
	"github.com/ogghostdeveloper/Tourism-sub000/pkg/utils"
)

// BookingServiceInterface turns a finished builder session into a durable
// booking enquiry. Success is reported once the record is written; the two
// notification mails are best-effort and never fail the submission.
type BookingServiceInterface interface {
	SubmitItinerary(ctx context.Context, sessionID string, profile itinerary_models.TravelerProfile) (*db_models.Booking, error)
}

type BookingService struct {
	itineraries ItineraryServiceInterface
	validator   BudgetValidatorInterface
	bookingRepo repositories.BookingRepositoryInterface
	mail        IMailService
}

func NewBookingService(
	itineraries ItineraryServiceInterface,
	validator BudgetValidatorInterface,
	bookingRepo repositories.BookingRepositoryInterface,
	mail IMailService,
) BookingServiceInterface {
	return &BookingService{
		itineraries: itineraries,
		validator:   validator,
		bookingRepo: bookingRepo,
		mail:        mail,
	}
}

func (s *BookingService) SubmitItinerary(ctx context.Context, sessionID string, profile itinerary_models.TravelerProfile) (*db_models.Booking, error) {
	builder, err := s.itineraries.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if profile.Email == "" || profile.FirstName == "" || profile.Adults < 1 {
		return nil, utils.ErrInvalidInput
	}
	if profile.Nationality != itinerary_models.NationalityIndian &&
		profile.Nationality != itinerary_models.NationalityInternational {
		return nil, utils.ErrInvalidInput
	}

	builder.Traveler = profile
	if err := s.validator.ValidateItinerary(builder.Days); err != nil {
		return nil, err
	}

	itineraryJSON, err := json.Marshal(builder.Days)
	if err != nil {
		return nil, err
	}

	booking := &db_models.Booking{
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		Email:           profile.Email,
		Phone:           profile.Phone,
		Nationality:     string(profile.Nationality),
		Adults:          profile.Adults,
		Children6To12:   profile.Children6To12,
		ChildrenUnder6:  profile.ChildrenUnder6,
		ArrivalDate:     profile.ArrivalDate,
		DepartureDate:   profile.DepartureDate,
		Message:         profile.Message,
		CustomItinerary: string(itineraryJSON),
		Status:          db_models.BookingStatusPending,
	}
	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Two independent best-effort notifications; neither blocks the other
	// and neither can fail the submission, which is already durable.
	ref := booking.ID.String()
	travelerName := fmt.Sprintf("%s %s", profile.FirstName, profile.LastName)
	go func() {
		if err := s.mail.SendBookingConfirmation(profile.Email, travelerName, ref); err != nil {
			log.Printf("booking %s: traveler confirmation mail failed: %v", ref, err)
		}
	}()
	go func() {
		summary := fmt.Sprintf("%s, %d day(s), party of %d",
			travelerName, len(builder.Days), profile.Adults+profile.Children6To12+profile.ChildrenUnder6)
		if err := s.mail.SendOperatorNotification(ref, summary); err != nil {
			log.Printf("booking %s: operator notification mail failed: %v", ref, err)
		}
	}()

	s.itineraries.EndSession(sessionID)
	return booking, nil
}
