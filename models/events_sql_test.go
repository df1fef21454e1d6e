package models

import (
	"errors"
	"testing"
	"time"
)

func createTestEvent(t *testing.T, repo EventRepository, name string) Event {
	t.Helper()
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	e := Event{
		Name:        name,
		Description: "d",
		Location:    "Room 1",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
	if err := repo.Create(&e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return e
}

func TestEventCreate_AssignsIDAndRoundTrips(t *testing.T) {
	sqldb := newTestDB(t)
	repo := NewSQLEventRepository(sqldb)

	e := createTestEvent(t, repo, "Demo")
	if e.ID <= 0 {
		t.Fatalf("want positive id, got %d", e.ID)
	}

	got, err := repo.GetByID(e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != e.Name || got.Description != e.Description || got.Location != e.Location {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, e)
	}
	if !got.StartTime.Equal(e.StartTime) || !got.EndTime.Equal(e.EndTime) {
		t.Fatalf("time round trip mismatch: got %v/%v want %v/%v",
			got.StartTime, got.EndTime, e.StartTime, e.EndTime)
	}
	if len(got.Registrations) != 0 {
		t.Fatalf("new event should have no registrations, got %d", len(got.Registrations))
	}
}

func TestEventGetByID_NotFound(t *testing.T) {
	sqldb := newTestDB(t)
	repo := NewSQLEventRepository(sqldb)

	if _, err := repo.GetByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestEventGetAll_OmitsRegistrations(t *testing.T) {
	sqldb := newTestDB(t)
	repo := NewSQLEventRepository(sqldb)
	regs := NewSQLRegistrationRepository(sqldb)

	a := createTestEvent(t, repo, "A")
	createTestEvent(t, repo, "B")
	if _, err := regs.Register(a.ID, "R", "123", "r@ex.com"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 events, got %d", len(all))
	}
	for _, e := range all {
		if e.Registrations != nil {
			t.Fatalf("GetAll must not attach registrations, got %v", e.Registrations)
		}
	}
}

func TestEventDelete_MissingReturnsFalse(t *testing.T) {
	sqldb := newTestDB(t)
	repo := NewSQLEventRepository(sqldb)

	other := createTestEvent(t, repo, "Keep")

	deleted, err := repo.Delete(999)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted {
		t.Fatal("delete on missing id must report false")
	}

	// no store mutation
	if _, err := repo.GetByID(other.ID); err != nil {
		t.Fatalf("unrelated event must survive: %v", err)
	}
}

func TestEventDelete_CascadesToRegistrations(t *testing.T) {
	sqldb := newTestDB(t)
	repo := NewSQLEventRepository(sqldb)
	regs := NewSQLRegistrationRepository(sqldb)

	doomed := createTestEvent(t, repo, "Doomed")
	keep := createTestEvent(t, repo, "Keep")

	for _, name := range []string{"R1", "R2"} {
		if _, err := regs.Register(doomed.ID, name, "123", "r@ex.com"); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}
	if _, err := regs.Register(keep.ID, "R3", "456", "k@ex.com"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	deleted, err := repo.Delete(doomed.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("delete on existing id must report true")
	}

	if _, err := repo.GetByID(doomed.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("event must be gone, got %v", err)
	}
	left, err := repo.GetRegistrations(doomed.ID)
	if err != nil {
		t.Fatalf("GetRegistrations: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("registrations must be gone, got %d", len(left))
	}

	// sibling event untouched
	var count int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM registrations`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("want 1 surviving registration, got %d", count)
	}
}

func TestGetRegistrations_FiltersByEvent(t *testing.T) {
	sqldb := newTestDB(t)
	repo := NewSQLEventRepository(sqldb)
	regs := NewSQLRegistrationRepository(sqldb)

	a := createTestEvent(t, repo, "A")
	b := createTestEvent(t, repo, "B")

	if _, err := regs.Register(a.ID, "RA", "111", "a@ex.com"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := regs.Register(b.ID, "RB", "222", "b@ex.com"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := repo.GetRegistrations(a.ID)
	if err != nil {
		t.Fatalf("GetRegistrations: %v", err)
	}
	if len(got) != 1 || got[0].Name != "RA" || got[0].EventID != a.ID {
		t.Fatalf("want only RA for event %d, got %+v", a.ID, got)
	}

	empty, err := repo.GetRegistrations(9999)
	if err != nil {
		t.Fatalf("GetRegistrations empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("want empty slice, got %+v", empty)
	}
}
