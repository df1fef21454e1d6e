package models

import (
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when the requested row does not
// exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

type Event struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Location      string         `json:"location"`
	StartTime     time.Time      `json:"startTime"`
	EndTime       time.Time      `json:"endTime"`
	Registrations []Registration `json:"registrations,omitempty"`
}

type Registration struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	EventID     int64  `json:"eventId"`
}

type User struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	JwtToken     string `json:"-"`
}

// ===== Events =====
type EventRepository interface {
	GetAll() ([]Event, error)
	// GetByID returns the event with its registrations attached.
	GetByID(id int64) (Event, error)
	Create(e *Event) error
	GetRegistrations(eventID int64) ([]Registration, error)
	// Delete removes the event's registrations and then the event itself in
	// one transaction. It reports false when no such event exists.
	Delete(id int64) (bool, error)
}

// ===== Registrations =====
type RegistrationRepository interface {
	// Register fails with ErrNotFound when eventID references no event.
	Register(eventID int64, name, phone, email string) (Registration, error)
}

// ===== Users =====
type UserRepository interface {
	GetByUsername(username string) (User, error)
	// SaveToken overwrites the stored token; it is a no-op for unknown ids.
	SaveToken(userID int64, token string) error
	Create(u *User) error
}
