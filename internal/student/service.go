package student

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"
)

// Store is the data access surface the service needs. Implemented by
// Repository; faked in tests.
type Store interface {
	Authenticate(ctx context.Context, roll, pin string) (string, error)
	GetProfile(ctx context.Context, roll string) (*Profile, error)
	PhotoPath(ctx context.Context, roll string) (string, error)
	ListAttendance(ctx context.Context, roll string, since time.Time) ([]AttendanceRecord, error)
	ResetPIN(ctx context.Context, roll, dob, newPin string) error
}

// Service applies the domain rules over a Store: input trimming, photo URL
// construction, and the attendance history window.
type Service struct {
	store         Store
	publicBaseURL string
	historyWindow int // calendar months of attendance returned
}

// NewService creates a service backed by a store. publicBaseURL is the
// externally reachable base used to build photo URLs.
func NewService(store Store, publicBaseURL string) *Service {
	return &Service{
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		historyWindow: 4,
	}
}

// Login validates a trimmed roll+pin pair and returns the canonical roll.
func (s *Service) Login(ctx context.Context, roll, pin string) (string, error) {
	return s.store.Authenticate(ctx, strings.TrimSpace(roll), strings.TrimSpace(pin))
}

// Profile returns the student's profile with the photo field rewritten to a
// retrieval URL when a photo is on record, or "" otherwise.
func (s *Service) Profile(ctx context.Context, roll string) (Profile, error) {
	p, err := s.store.GetProfile(ctx, roll)
	if err != nil {
		return Profile{}, err
	}
	if p == nil {
		return Profile{}, ErrNotFound
	}
	if p.Photo != "" {
		p.Photo = s.publicBaseURL + "/api/photo/" + p.Roll
	}
	return *p, nil
}

// PhotoFile resolves the on-disk photo path for roll. ErrPhotoNotFound when
// the student has none on record, ErrFileNotFound when the stored path does
// not exist on disk.
func (s *Service) PhotoFile(ctx context.Context, roll string) (string, error) {
	path, err := s.store.PhotoPath(ctx, roll)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrPhotoNotFound
		}
		return "", err
	}
	if path == "" {
		return "", ErrPhotoNotFound
	}
	if _, err := os.Stat(path); err != nil {
		return "", ErrFileNotFound
	}
	return path, nil
}

// Attendance returns the student's records from the last four calendar
// months, newest first. An empty history is an empty slice, not an error.
func (s *Service) Attendance(ctx context.Context, roll string) ([]AttendanceRecord, error) {
	since := time.Now().AddDate(0, -s.historyWindow, 0)
	return s.store.ListAttendance(ctx, roll, since)
}

// ResetPIN verifies date of birth and sets a new pin. All three inputs are
// required; dob is compared on the date portion only.
func (s *Service) ResetPIN(ctx context.Context, roll, dob, newPin string) error {
	if roll == "" || dob == "" || newPin == "" {
		return ErrMissingFields
	}
	return s.store.ResetPIN(ctx, roll, dob, newPin)
}
