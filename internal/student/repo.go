package student

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Repository persists student data in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Authenticate matches a trimmed roll+pin pair and returns the canonical
// stored roll. Returns ErrInvalidCredential when no row matches.
func (r *Repository) Authenticate(ctx context.Context, roll, pin string) (string, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT btrim(roll) FROM students
		WHERE btrim(roll) = $1 AND btrim(pin) = $2
	`, roll, pin)
	var stored string
	if err := row.Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredential
		}
		return "", err
	}
	return stored, nil
}

// GetProfile returns the student identified by roll, or nil when absent.
// The Photo field carries the stored filesystem path, not a URL.
func (r *Repository) GetProfile(ctx context.Context, roll string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT roll, name, branch, semester, issue_valid, COALESCE(photo, '')
		FROM students WHERE roll = $1
	`, roll)
	var p Profile
	if err := row.Scan(&p.Roll, &p.Name, &p.Branch, &p.Semester, &p.IssueValid, &p.Photo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// PhotoPath returns the stored photo path for roll. Returns ErrNotFound
// when the student does not exist; an empty path means no photo on record.
func (r *Repository) PhotoPath(ctx context.Context, roll string) (string, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(photo, '') FROM students WHERE roll = $1
	`, roll)
	var path string
	if err := row.Scan(&path); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return path, nil
}

// ListAttendance returns attendance on or after since, newest first.
func (r *Repository) ListAttendance(ctx context.Context, roll string, since time.Time) ([]AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, status FROM attendance
		WHERE roll = $1 AND date >= $2
		ORDER BY date DESC
	`, roll, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []AttendanceRecord{}
	for rows.Next() {
		var day time.Time
		var status string
		if err := rows.Scan(&day, &status); err != nil {
			return nil, err
		}
		records = append(records, AttendanceRecord{Date: day.Format("2006-01-02"), Status: status})
	}
	return records, rows.Err()
}

// ResetPIN verifies dob (date portion only, YYYY-MM-DD) against the stored
// date of birth and updates the pin in one transaction. Returns ErrNotFound
// when roll is unknown and ErrDOBMismatch when the date does not match.
func (r *Repository) ResetPIN(ctx context.Context, roll, dob, newPin string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var stored time.Time
	if err := tx.QueryRowContext(ctx, `SELECT dob FROM students WHERE roll = $1`, roll).Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if stored.Format("2006-01-02") != dob {
		return ErrDOBMismatch
	}

	if _, err := tx.ExecContext(ctx, `UPDATE students SET pin = $1 WHERE roll = $2`, newPin, roll); err != nil {
		return err
	}
	return tx.Commit()
}
