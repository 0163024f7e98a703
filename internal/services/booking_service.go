package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/utils"
)

// BookingService owns the quote -> create -> cancel lifecycle.
type BookingService struct {
	TripRepo         repositories.TripRepository
	BookingRepo      repositories.BookingRepository
	NotificationRepo repositories.NotificationRepository
	RequestID        string
}

// QuoteInput prices a prospective booking without persisting anything.
type QuoteInput struct {
	TripID       int64
	SeatCodes    []string
	Need         domain.SpecialNeed
	DiscountCode string
}

// CreateInput is a quote plus the passengers to seat.
type CreateInput struct {
	UserID       int64
	TripID       int64
	Seats        []models.BookingSeat
	Need         domain.SpecialNeed
	DiscountCode string
}

// Quote validates the requested seats against the trip's live seat map and
// returns the fare breakdown. ErrInvalidDiscountCode still carries the
// undiscounted breakdown so the caller can show both.
func (s BookingService) Quote(in QuoteInput) (domain.FareBreakdown, error) {
	var out domain.FareBreakdown

	trip, err := s.TripRepo.GetByID(in.TripID)
	if err != nil {
		return out, err
	}
	if _, err := s.validateSeats(trip, in.SeatCodes, in.Need); err != nil {
		return out, err
	}

	return domain.QuoteFare(len(in.SeatCodes), tripBaseFare(trip), in.DiscountCode)
}

// Create books the seats. The ticket code is minted here; an unknown discount
// code rejects the booking rather than silently charging full fare.
func (s BookingService) Create(in CreateInput) (models.Booking, error) {
	var out models.Booking

	trip, err := s.TripRepo.GetByID(in.TripID)
	if err != nil {
		return out, err
	}
	if trip.Status != models.TripScheduled {
		return out, domain.ConflictError{Resource: "trip", Msg: "trip is no longer open for booking"}
	}

	codes := make([]string, 0, len(in.Seats))
	for _, seat := range in.Seats {
		codes = append(codes, seat.SeatCode)
	}
	if utils.HasDuplicates(codes) {
		return out, domain.ValidationError{Field: "seats", Msg: "duplicate seat code"}
	}
	if _, err := s.validateSeats(trip, codes, in.Need); err != nil {
		return out, err
	}

	fare, err := domain.QuoteFare(len(codes), tripBaseFare(trip), in.DiscountCode)
	if err != nil {
		return out, err
	}

	booking := models.Booking{
		TicketCode:     newTicketCode(),
		UserID:         in.UserID,
		TripID:         trip.ID,
		RouteFrom:      trip.RouteFrom,
		RouteTo:        trip.RouteTo,
		TripDate:       trip.TripDate,
		TripTime:       trip.TripTime,
		PassengerCount: len(in.Seats),
		PricePerSeat:   fare.BaseFare,
		ServiceFee:     fare.ServiceFee,
		DiscountCode:   fare.DiscountCode,
		DiscountAmount: fare.DiscountAmount,
		Total:          fare.Total,
		Status:         models.BookingPending,
	}

	id, err := s.BookingRepo.Create(booking, in.Seats)
	if err != nil {
		return out, err
	}
	booking.ID = id

	s.notify(in.UserID, "Booking created",
		fmt.Sprintf("Ticket %s: %s to %s on %s %s, %s.",
			booking.TicketCode, booking.RouteFrom, booking.RouteTo,
			booking.TripDate, booking.TripTime, utils.FormatAmount(booking.Total)))

	utils.LogEvent(s.RequestID, "bookings", "create",
		fmt.Sprintf("booking_id=%d ticket=%s seats=%d", id, booking.TicketCode, len(in.Seats)))
	return booking, nil
}

// Get returns a booking with its seats, enforcing ownership.
func (s BookingService) Get(bookingID, userID int64) (models.Booking, []models.BookingSeat, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return b, nil, err
	}
	if b.UserID != userID {
		return models.Booking{}, nil, domain.NotFoundError{Resource: "booking"}
	}
	seats, err := s.BookingRepo.Seats(bookingID)
	if err != nil {
		return b, nil, err
	}
	return b, seats, nil
}

// ListForUser returns the user's bookings, newest first.
func (s BookingService) ListForUser(userID int64) ([]models.Booking, error) {
	return s.BookingRepo.ListByUser(userID)
}

// Cancel releases the booking's seats. A reason is required and a cancelled
// booking stays cancelled.
func (s BookingService) Cancel(bookingID, userID int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ValidationError{Field: "reason", Msg: "cancellation reason is required"}
	}

	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return domain.NotFoundError{Resource: "booking"}
	}
	if b.Status == models.BookingCancelled {
		return domain.ConflictError{Resource: "booking", Msg: "already cancelled"}
	}
	if b.Status == models.BookingPaid {
		return domain.ConflictError{Resource: "booking", Msg: "paid bookings cannot be cancelled here"}
	}

	ok, err := s.BookingRepo.UpdateStatus(bookingID, b.Status, models.BookingCancelled, reason)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ConflictError{Resource: "booking", Msg: "status changed, retry"}
	}

	s.notify(userID, "Booking cancelled",
		fmt.Sprintf("Ticket %s was cancelled: %s", b.TicketCode, strings.TrimSpace(reason)))
	utils.LogEvent(s.RequestID, "bookings", "cancel", fmt.Sprintf("booking_id=%d", bookingID))
	return nil
}

// validateSeats runs the requested codes through a selection bound to the
// trip's live availability, so create and quote reject exactly what the seat
// picker would.
func (s BookingService) validateSeats(trip models.Trip, codes []string, need domain.SpecialNeed) (*domain.SeatMap, error) {
	if len(codes) == 0 {
		return nil, domain.ValidationError{Field: "seats", Msg: "at least one seat is required"}
	}

	base := tripBaseFare(trip)
	layout := domain.GenerateSeatMap(base, base+premiumUplift, domain.AllAvailable)

	booked, err := s.BookingRepo.BookedSeatCodes(trip.ID)
	if err != nil {
		return nil, err
	}
	layout.MarkBooked(booked)

	sel := domain.NewSeatSelection(layout, len(codes))
	sel.SetNeed(need)
	for _, code := range codes {
		if err := sel.Toggle(code); err != nil {
			return nil, err
		}
	}
	return layout, nil
}

func (s BookingService) notify(userID int64, title, body string) {
	if _, err := s.NotificationRepo.Insert(models.Notification{UserID: userID, Title: title, Body: body}); err != nil {
		utils.LogEvent(s.RequestID, "bookings", "notify", "insert warning: "+err.Error())
	}
}

// newTicketCode mints a short user-facing ticket code like ZG-3F2A9B1C.
func newTicketCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ZG-" + strings.ToUpper(raw[:8])
}

// IsRetryableCreateError reports whether a booking create failure came from a
// seat race (duplicate key on booking_seats) rather than a caller mistake.
func IsRetryableCreateError(err error) bool {
	if err == nil {
		return false
	}
	var conflict domain.ConflictError
	if errors.As(err, &conflict) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}
