package models

import (
	"database/sql"
	"errors"
)

type sqlEventRepo struct{ db *sql.DB }

func NewSQLEventRepository(db *sql.DB) EventRepository { return &sqlEventRepo{db} }

func (r *sqlEventRepo) GetAll() ([]Event, error) {
	rows, err := r.db.Query(`SELECT id, name, description, location, start_time, end_time FROM events ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.StartTime, &e.EndTime); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *sqlEventRepo) GetByID(id int64) (Event, error) {
	var e Event
	err := r.db.QueryRow(`SELECT id, name, description, location, start_time, end_time FROM events WHERE id=$1`, id).
		Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.StartTime, &e.EndTime)
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrNotFound
	}
	if err != nil {
		return Event{}, err
	}

	regs, err := r.GetRegistrations(id)
	if err != nil {
		return Event{}, err
	}
	e.Registrations = regs
	return e, nil
}

func (r *sqlEventRepo) Create(e *Event) error {
	return r.db.QueryRow(
		`INSERT INTO events(name, description, location, start_time, end_time) VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		e.Name, e.Description, e.Location, e.StartTime, e.EndTime,
	).Scan(&e.ID)
}

func (r *sqlEventRepo) GetRegistrations(eventID int64) ([]Registration, error) {
	rows, err := r.db.Query(
		`SELECT id, name, phone_number, email, event_id FROM registrations WHERE event_id=$1 ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Registration{}
	for rows.Next() {
		var reg Registration
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.PhoneNumber, &reg.Email, &reg.EventID); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

// Delete removes registrations first and the event second, in one
// transaction, so the ownership stays explicit rather than leaning on the
// store's cascade.
func (r *sqlEventRepo) Delete(id int64) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}

	if _, err := tx.Exec(`DELETE FROM registrations WHERE event_id=$1`, id); err != nil {
		_ = tx.Rollback()
		return false, err
	}

	res, err := tx.Exec(`DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if n == 0 {
		_ = tx.Rollback()
		return false, nil
	}

	return true, tx.Commit()
}
