package models

import "database/sql"

type sqlRegistrationRepo struct{ db *sql.DB }

func NewSQLRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &sqlRegistrationRepo{db}
}

// Register checks that the event exists before inserting. A concurrent
// delete between the check and the insert is still rejected by the foreign
// key on registrations.event_id; there is no application-level lock here.
func (r *sqlRegistrationRepo) Register(eventID int64, name, phone, email string) (Registration, error) {
	var exists bool
	if err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id=$1)`, eventID).Scan(&exists); err != nil {
		return Registration{}, err
	}
	if !exists {
		return Registration{}, ErrNotFound
	}

	reg := Registration{Name: name, PhoneNumber: phone, Email: email, EventID: eventID}
	err := r.db.QueryRow(
		`INSERT INTO registrations(name, phone_number, email, event_id) VALUES ($1,$2,$3,$4) RETURNING id`,
		reg.Name, reg.PhoneNumber, reg.Email, reg.EventID,
	).Scan(&reg.ID)
	if err != nil {
		return Registration{}, err
	}
	return reg, nil
}
