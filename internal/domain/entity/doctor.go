package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the core entity of the registry.
// CRM and Specialty are fixed at registration; the remaining contact data may change.
type Doctor struct {
	ID        uuid.UUID `json:"id"`         // Assigned by the persistence layer on creation.
	Name      string    `json:"name"`       // Full name.
	Email     string    `json:"email"`      // Contact e-mail, unique across doctors.
	Phone     string    `json:"phone"`      // Contact phone.
	CRM       string    `json:"crm"`        // Professional registration code.
	Specialty Specialty `json:"specialty"`  // Medical specialty.
	Address   Address   `json:"address"`    // Practice address.
	Active    bool      `json:"active"`     // False once the doctor has been deactivated.
	CreatedAt time.Time `json:"created_at"` // Timestamp of registration.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// NewDoctor builds an active doctor that has not been persisted yet.
func NewDoctor(name, email, phone, crm string, specialty Specialty, address Address) *Doctor {
	return &Doctor{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CRM:       crm,
		Specialty: specialty,
		Address:   address,
		Active:    true,
	}
}

// Deactivate marks the doctor as inactive and reports whether the flag changed.
// Deactivating an inactive doctor is a no-op.
func (d *Doctor) Deactivate() bool {
	if !d.Active {
		return false
	}
	d.Active = false

	return true
}
