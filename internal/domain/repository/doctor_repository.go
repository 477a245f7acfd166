// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"voll/internal/domain/entity"
	"voll/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for doctor persistence.
var (
	// ErrDoctorNotFound is returned when no doctor has the requested ID.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrDuplicateDoctor is returned when the e-mail or CRM is already taken.
	ErrDuplicateDoctor = errors.New("doctor already exists")
)

// DoctorRepository defines the interface for doctor-related database operations.
type DoctorRepository interface {
	// Create persists a new doctor and assigns its ID and timestamps.
	Create(ctx context.Context, doctor *entity.Doctor) error

	// FindByID retrieves a doctor by ID regardless of its active flag.
	// Returns ErrDoctorNotFound if no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)

	// FindByIDForUpdate is FindByID with a row lock held until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)

	// FindActive returns one page of active doctors plus the total number of active doctors.
	FindActive(ctx context.Context, req entity.PageRequest) ([]*entity.Doctor, int64, error)

	// Update persists the mutable fields (name, email, phone, address, active) of an existing doctor.
	// CRM and specialty are never written.
	Update(ctx context.Context, doctor *entity.Doctor) error
}
