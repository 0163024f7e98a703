package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
)

func TestRosterCloseDoorsOnlyTouchesPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE roster_entries").
		WithArgs("MISSED", int64(9), "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := RosterRepository{DB: db}
	affected, err := repo.CloseDoors(9)
	if err != nil {
		t.Fatalf("close doors: %v", err)
	}
	if affected != 3 {
		t.Fatalf("affected=%d, want 3", affected)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRosterUpdateStatusGuardsPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Entry already BOARDED: the conditional update matches no rows.
	mock.ExpectExec("UPDATE roster_entries").
		WithArgs("BOARDED", int64(9), "ZG-AB12CD34-2A", "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := RosterRepository{DB: db}
	ok, err := repo.UpdateStatus(9, "zg-ab12cd34-2a", domain.BoardingBoarded)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if ok {
		t.Fatal("update of a non-pending entry must report false")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRosterListByTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "trip_id", "ticket_no", "passenger_name", "from_stop", "to_stop", "seat_code", "status"}).
		AddRow(1, 9, "ZG-AB12CD34-2A", "Ayesha", "Saddar", "Airport", "2A", "PENDING").
		AddRow(2, 9, "ZG-AB12CD34-2B", "Bilal", "Saddar", "Airport", "2B", "BOARDED")
	mock.ExpectQuery("SELECT (.+) FROM roster_entries").
		WithArgs(int64(9)).
		WillReturnRows(rows)

	repo := RosterRepository{DB: db}
	entries, err := repo.ListByTrip(9)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len=%d, want 2", len(entries))
	}
	if entries[1].Status != domain.BoardingBoarded {
		t.Fatalf("status=%s, want BOARDED", entries[1].Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
