package doctorRepo

import (
	"context"
	"errors"

	"quickmed/models"
)

// ErrNotFound reports an operation on a missing doctor profile.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines data access for practitioner profiles.
type DoctorRepository interface {
	// Upsert creates or updates the profile for an email (applications).
	Upsert(ctx context.Context, email string, doctor *models.Doctor) error
	// GetByEmail retrieves a profile; returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	// GetAll retrieves every profile, newest first.
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// SetRole sets the role field, upserting (admin approval).
	SetRole(ctx context.Context, email, role string) error
	// Delete removes a profile; returns ErrNotFound when absent.
	Delete(ctx context.Context, email string) error
}
