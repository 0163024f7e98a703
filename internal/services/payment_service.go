package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/utils"
)

// PaymentService runs the mock card gateway: validate, flip the booking to
// PAID, record the payment.
type PaymentService struct {
	BookingRepo      repositories.BookingRepository
	PaymentRepo      repositories.PaymentRepository
	NotificationRepo repositories.NotificationRepository
	RequestID        string

	// Now is injected in tests to pin card expiry checks.
	Now func() time.Time
}

// CardDetails is the mock gateway's input. Nothing but the last four digits
// is ever stored.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
	Method string `json:"method"`
}

func (s PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Pay charges a PENDING booking owned by the user.
func (s PaymentService) Pay(bookingID, userID int64, card CardDetails) (models.Payment, error) {
	var out models.Payment

	if err := s.ValidateCard(card); err != nil {
		return out, err
	}

	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return out, err
	}
	if b.UserID != userID {
		return out, domain.NotFoundError{Resource: "booking"}
	}
	if b.Status != models.BookingPending {
		return out, domain.ConflictError{Resource: "booking", Msg: "booking is not awaiting payment"}
	}

	ok, err := s.BookingRepo.UpdateStatus(bookingID, models.BookingPending, models.BookingPaid, "")
	if err != nil {
		return out, err
	}
	if !ok {
		return out, domain.ConflictError{Resource: "booking", Msg: "status changed, retry"}
	}

	digits := cardDigits(card.Number)
	out = models.Payment{
		BookingID: bookingID,
		Method:    normalizeMethod(card.Method),
		CardLast4: digits[len(digits)-4:],
		Amount:    b.Total,
		Status:    "APPROVED",
	}
	id, err := s.PaymentRepo.Insert(out)
	if err != nil {
		return out, err
	}
	out.ID = id

	if _, err := s.NotificationRepo.Insert(models.Notification{
		UserID: userID,
		Title:  "Payment received",
		Body:   fmt.Sprintf("Ticket %s is confirmed. Paid %s.", b.TicketCode, utils.FormatAmount(b.Total)),
	}); err != nil {
		utils.LogEvent(s.RequestID, "payments", "notify", "insert warning: "+err.Error())
	}

	utils.LogEvent(s.RequestID, "payments", "pay",
		fmt.Sprintf("booking_id=%d amount=%d last4=%s", bookingID, b.Total, out.CardLast4))
	return out, nil
}

// ValidateCard checks the mock gateway's acceptance rules: Luhn-valid number,
// unexpired MM/YY, 3-4 digit CVV.
func (s PaymentService) ValidateCard(card CardDetails) error {
	digits := cardDigits(card.Number)
	if len(digits) < 13 || len(digits) > 19 {
		return domain.ValidationError{Field: "number", Msg: "card number must be 13-19 digits"}
	}
	if !luhnValid(digits) {
		return domain.ValidationError{Field: "number", Msg: "card number failed checksum"}
	}

	if err := checkExpiry(card.Expiry, s.now()); err != nil {
		return err
	}

	cvv := strings.TrimSpace(card.CVV)
	if len(cvv) < 3 || len(cvv) > 4 {
		return domain.ValidationError{Field: "cvv", Msg: "cvv must be 3 or 4 digits"}
	}
	for _, r := range cvv {
		if r < '0' || r > '9' {
			return domain.ValidationError{Field: "cvv", Msg: "cvv must be 3 or 4 digits"}
		}
	}
	return nil
}

func cardDigits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func checkExpiry(expiry string, now time.Time) error {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return domain.ValidationError{Field: "expiry", Msg: "expected MM/YY"}
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return domain.ValidationError{Field: "expiry", Msg: "expected MM/YY"}
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return domain.ValidationError{Field: "expiry", Msg: "expected MM/YY"}
	}
	year += 2000

	// valid through the last day of the expiry month
	endOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	if !now.Before(endOfMonth) {
		return domain.ValidationError{Field: "expiry", Msg: "card is expired"}
	}
	return nil
}

func normalizeMethod(method string) string {
	m := strings.ToLower(strings.TrimSpace(method))
	switch m {
	case "", "card":
		return "CARD"
	case "wallet":
		return "WALLET"
	default:
		return strings.ToUpper(m)
	}
}
