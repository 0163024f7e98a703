package services

import (
	"testing"
	"time"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)
}

func TestValidateCard(t *testing.T) {
	svc := PaymentService{Now: fixedNow}

	cases := []struct {
		name    string
		card    CardDetails
		wantErr bool
	}{
		{"valid visa test number", CardDetails{Number: "4111 1111 1111 1111", Expiry: "12/27", CVV: "123"}, false},
		{"valid amex cvv4", CardDetails{Number: "378282246310005", Expiry: "01/28", CVV: "1234"}, false},
		{"expires this month", CardDetails{Number: "4111111111111111", Expiry: "03/26", CVV: "123"}, false},
		{"failed checksum", CardDetails{Number: "4111111111111112", Expiry: "12/27", CVV: "123"}, true},
		{"too short", CardDetails{Number: "41111111", Expiry: "12/27", CVV: "123"}, true},
		{"expired last month", CardDetails{Number: "4111111111111111", Expiry: "02/26", CVV: "123"}, true},
		{"malformed expiry", CardDetails{Number: "4111111111111111", Expiry: "2027-12", CVV: "123"}, true},
		{"bad month", CardDetails{Number: "4111111111111111", Expiry: "13/27", CVV: "123"}, true},
		{"cvv too short", CardDetails{Number: "4111111111111111", Expiry: "12/27", CVV: "12"}, true},
		{"cvv not numeric", CardDetails{Number: "4111111111111111", Expiry: "12/27", CVV: "12a"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ValidateCard(tc.card)
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr && !domain.IsValidation(err) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestLuhnRejectsTransposition(t *testing.T) {
	if !luhnValid("4111111111111111") {
		t.Fatal("known-good number rejected")
	}
	if luhnValid("4111111111111117") {
		t.Fatal("altered digit accepted")
	}
}
