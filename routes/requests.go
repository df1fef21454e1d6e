package routes

import (
	"net/mail"
	"time"
)

// FieldError is one field-level validation failure. Handlers return the
// full list so clients can surface every problem at once.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func requireString(errs []FieldError, field, value string, maxLen int) []FieldError {
	if value == "" {
		return append(errs, FieldError{Field: field, Message: "is required"})
	}
	if maxLen > 0 && len(value) > maxLen {
		return append(errs, FieldError{Field: field, Message: "is too long"})
	}
	return errs
}

type CreateEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
}

func (r CreateEventRequest) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "name", r.Name, 100)
	errs = requireString(errs, "description", r.Description, 500)
	errs = requireString(errs, "location", r.Location, 200)
	if r.StartTime.IsZero() {
		errs = append(errs, FieldError{Field: "startTime", Message: "is required"})
	}
	if r.EndTime.IsZero() {
		errs = append(errs, FieldError{Field: "endTime", Message: "is required"})
	} else if !r.EndTime.After(r.StartTime) {
		errs = append(errs, FieldError{Field: "endTime", Message: "must be after startTime"})
	}
	return errs
}

type RegisterRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

func (r RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "name", r.Name, 120)
	errs = requireString(errs, "phoneNumber", r.PhoneNumber, 30)
	errs = requireString(errs, "email", r.Email, 0)
	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "is not a valid address"})
		}
	}
	return errs
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "username", r.Username, 50)
	errs = requireString(errs, "password", r.Password, 100)
	return errs
}
