package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/utils"
)

// DocsService renders the downloadable e-ticket PDF for a paid booking.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string

	// Loader is injected in tests to bypass the database.
	Loader func(bookingID int64) (ticketDocData, error)
}

type ticketDocData struct {
	BookingID  int64
	TicketCode string
	RouteFrom  string
	RouteTo    string
	TripDate   string
	TripTime   string
	Seats      []models.BookingSeat
	Total      int64
	Status     string
}

// GenerateETicket renders the e-ticket and returns the bytes plus a download
// filename. Only paid bookings have a ticket to show.
func (s DocsService) GenerateETicket(bookingID, userID int64) ([]byte, string, error) {
	data, err := s.loadTicketDocData(bookingID, userID)
	if err != nil {
		return nil, "", err
	}
	if data.Status != models.BookingPaid {
		return nil, "", domain.ConflictError{Resource: "booking", Msg: "e-ticket is available after payment"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(data)
}

func (s DocsService) loadTicketDocData(bookingID, userID int64) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	var out ticketDocData
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return out, err
	}
	if b.UserID != userID {
		return out, domain.NotFoundError{Resource: "booking"}
	}
	seats, err := s.BookingRepo.Seats(bookingID)
	if err != nil {
		return out, err
	}

	return ticketDocData{
		BookingID:  b.ID,
		TicketCode: b.TicketCode,
		RouteFrom:  b.RouteFrom,
		RouteTo:    b.RouteTo,
		TripDate:   b.TripDate,
		TripTime:   b.TripTime,
		Seats:      seats,
		Total:      b.Total,
		Status:     b.Status,
	}, nil
}

func buildETicketPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("ZuGo E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ZUGO E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket       : %s", safe(d.TicketCode, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(d.RouteFrom, "-"), safe(d.RouteTo, "-")),
		fmt.Sprintf("Departure    : %s %s", safe(dateOnly(d.TripDate), "-"), safe(timeHM(d.TripTime), "-")),
		fmt.Sprintf("Passengers   : %d", len(d.Seats)),
		fmt.Sprintf("Total Paid   : %s", utils.FormatAmount(d.Total)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Seats:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, seat := range d.Seats {
		name := safe(seat.PassengerName, "Passenger")
		pdf.Cell(0, 6, fmt.Sprintf("  %s  %s  (%s-%s)", seat.SeatCode, name, d.TicketCode, seat.SeatCode))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Show this ticket to the driver when boarding. Each seat code is scanned separately.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(d.TicketCode))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

func timeHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
