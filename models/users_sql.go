package models

import (
	"database/sql"
	"errors"
)

type sqlUserRepo struct{ db *sql.DB }

func NewSQLUserRepository(db *sql.DB) UserRepository { return &sqlUserRepo{db} }

func (r *sqlUserRepo) GetByUsername(username string) (User, error) {
	var u User
	var token sql.NullString
	err := r.db.QueryRow(
		`SELECT id, full_name, username, email, password_hash, jwt_token FROM users WHERE username=$1`, username).
		Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.PasswordHash, &token)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	u.JwtToken = token.String
	return u, nil
}

func (r *sqlUserRepo) SaveToken(userID int64, token string) error {
	// RowsAffected is deliberately ignored: saving a token for a user that
	// no longer exists is a no-op, not an error.
	_, err := r.db.Exec(`UPDATE users SET jwt_token=$1 WHERE id=$2`, token, userID)
	return err
}

func (r *sqlUserRepo) Create(u *User) error {
	return r.db.QueryRow(
		`INSERT INTO users(full_name, username, email, password_hash) VALUES ($1,$2,$3,$4) RETURNING id`,
		u.FullName, u.Username, u.Email, u.PasswordHash,
	).Scan(&u.ID)
}
