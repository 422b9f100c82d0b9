// Package student holds the domain model and data access for student
// profiles, attendance history, and PIN management.
package student

import "errors"

// Sentinel errors mapped to HTTP statuses at the API boundary.
var (
	ErrInvalidCredential = errors.New("invalid roll or pin")
	ErrNotFound          = errors.New("student not found")
	ErrPhotoNotFound     = errors.New("photo not found")
	ErrFileNotFound      = errors.New("file not found on server")
	ErrDOBMismatch       = errors.New("dob does not match")
	ErrMissingFields     = errors.New("missing fields")
)

// Profile is the student record returned by the profile endpoint. Photo is
// a URL constructed by the service, never raw file bytes.
type Profile struct {
	Roll       string `json:"roll"`
	Name       string `json:"name"`
	Branch     string `json:"branch"`
	Semester   string `json:"semester"`
	IssueValid string `json:"issue_valid"`
	Photo      string `json:"photo"`
}

// AttendanceRecord is a single day's attendance for a student. Date is an
// ISO-8601 date string; Status is free-form (present/absent in practice).
type AttendanceRecord struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}
