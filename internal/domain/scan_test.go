package domain

import (
	"errors"
	"testing"
)

func TestScanSessionHappyPath(t *testing.T) {
	r := sampleRoster()
	s := NewScanSession()

	if err := s.Start("ZG-1001"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State != ScanScanning {
		t.Fatalf("state=%s, want SCANNING", s.State)
	}

	if err := s.Resolve(r); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.State != ScanSuccess {
		t.Fatalf("state=%s, want SUCCESS", s.State)
	}
	if s.Result == nil || s.Result.Status != BoardingBoarded {
		t.Fatalf("scan result should carry the boarded entry, got %+v", s.Result)
	}

	e, _ := r.Lookup("ZG-1001")
	if e.Status != BoardingBoarded {
		t.Fatalf("roster not updated by scan, status=%s", e.Status)
	}
}

func TestScanSessionUnknownTicketCancels(t *testing.T) {
	r := sampleRoster()
	s := NewScanSession()

	if err := s.Start("ZG-9999"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Resolve(r); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
	if s.State != ScanCancelled {
		t.Fatalf("state=%s, want CANCELLED", s.State)
	}
}

func TestScanSessionInvalidTransitions(t *testing.T) {
	s := NewScanSession()

	if err := s.Cancel(); err == nil {
		t.Fatal("cancel from Idle must fail")
	}
	if err := s.Resolve(sampleRoster()); err == nil {
		t.Fatal("resolve from Idle must fail")
	}

	if err := s.Start("ZG-1001"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start("ZG-1002"); err == nil {
		t.Fatal("double start must fail")
	}
	if err := s.Cancel(); err != nil {
		t.Fatalf("cancel while scanning: %v", err)
	}

	s.Reset()
	if s.State != ScanIdle || s.Ticket != "" {
		t.Fatalf("reset did not return to Idle, got %+v", s)
	}
}
