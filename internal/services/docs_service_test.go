package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

func paidTicketData() ticketDocData {
	return ticketDocData{
		BookingID:  10,
		TicketCode: "ZG-3F2A9B1C",
		RouteFrom:  "Saddar",
		RouteTo:    "Airport",
		TripDate:   "2026-09-01",
		TripTime:   "08:00",
		Seats: []models.BookingSeat{
			{SeatCode: "2A", PassengerName: "Ayesha Khan"},
			{SeatCode: "2B", PassengerName: "Bilal Khan"},
		},
		Total:  3100,
		Status: models.BookingPaid,
	}
}

func TestGenerateETicketProducesPDF(t *testing.T) {
	svc := DocsService{Loader: func(int64) (ticketDocData, error) {
		return paidTicketData(), nil
	}}

	pdfBytes, filename, err := svc.GenerateETicket(10, 1)
	if err != nil {
		t.Fatalf("generate e-ticket: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("empty pdf output")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", pdfBytes[:8])
	}
	if filename != "ETICKET_ZG-3F2A9B1C.pdf" {
		t.Fatalf("filename=%q", filename)
	}
}

func TestGenerateETicketRequiresPaidBooking(t *testing.T) {
	svc := DocsService{Loader: func(int64) (ticketDocData, error) {
		d := paidTicketData()
		d.Status = models.BookingPending
		return d, nil
	}}

	if _, _, err := svc.GenerateETicket(10, 1); !domain.IsConflict(err) {
		t.Fatalf("want conflict for unpaid booking, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	got := safeFilenamePart("ZG 1/2:3")
	if strings.ContainsAny(got, " /:") {
		t.Fatalf("unsafe characters survived: %q", got)
	}
	if safeFilenamePart("  ") != "NA" {
		t.Fatal("blank input must map to NA")
	}
}
