package models

import (
	"errors"
	"testing"
)

func createTestUser(t *testing.T, repo UserRepository, username string) User {
	t.Helper()
	u := User{
		FullName:     "Admin Adminson",
		Username:     username,
		Email:        username + "@ex.com",
		PasswordHash: "100000.c2FsdA==.aGFzaA==",
	}
	if err := repo.Create(&u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return u
}

func TestUserGetByUsername(t *testing.T) {
	sqldb := newTestDB(t)
	repo := NewSQLUserRepository(sqldb)

	created := createTestUser(t, repo, "admin")

	got, err := repo.GetByUsername("admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != created.ID || got.PasswordHash != created.PasswordHash {
		t.Fatalf("mismatch: got %+v want %+v", got, created)
	}
	if got.JwtToken != "" {
		t.Fatalf("fresh user must have no token, got %q", got.JwtToken)
	}

	if _, err := repo.GetByUsername("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUserSaveToken(t *testing.T) {
	sqldb := newTestDB(t)
	repo := NewSQLUserRepository(sqldb)

	u := createTestUser(t, repo, "admin")

	if err := repo.SaveToken(u.ID, "tok-1"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	got, err := repo.GetByUsername("admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.JwtToken != "tok-1" {
		t.Fatalf("want stored token, got %q", got.JwtToken)
	}

	// overwrite
	if err := repo.SaveToken(u.ID, "tok-2"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	got, _ = repo.GetByUsername("admin")
	if got.JwtToken != "tok-2" {
		t.Fatalf("want overwritten token, got %q", got.JwtToken)
	}

	// unknown user is a no-op, not an error
	if err := repo.SaveToken(999, "tok-3"); err != nil {
		t.Fatalf("SaveToken unknown id: %v", err)
	}
}
