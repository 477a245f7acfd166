// Package usecase declares the application operations exposed to the delivery layer.
package usecase

import (
	"context"
	"strings"

	"voll/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput is the address block of a registration request.
type AddressInput struct {
	Street     string `json:"street" validate:"required,max=255"`
	District   string `json:"district" validate:"required,max=100"`
	ZipCode    string `json:"zip_code" validate:"required,len=8,number"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,len=2,alpha"`
	Number     string `json:"number" validate:"omitempty,max=20"`
	Complement string `json:"complement" validate:"omitempty,max=100"`
}

// AddressPatchInput carries the address fields an update may change.
type AddressPatchInput struct {
	Street     *string `json:"street" validate:"omitempty,min=1,max=255"`
	District   *string `json:"district" validate:"omitempty,min=1,max=100"`
	ZipCode    *string `json:"zip_code" validate:"omitempty,len=8,number"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	State      *string `json:"state" validate:"omitempty,len=2,alpha"`
	Number     *string `json:"number" validate:"omitempty,max=20"`
	Complement *string `json:"complement" validate:"omitempty,max=100"`
}

// RegisterDoctorInput defines the input for registering a doctor.
type RegisterDoctorInput struct {
	Name      string       `json:"name" validate:"required,max=100"`
	Email     string       `json:"email" validate:"required,email,max=255"`
	Phone     string       `json:"phone" validate:"omitempty,max=20"`
	CRM       string       `json:"crm" validate:"required,number,max=6"`
	Specialty string       `json:"specialty" validate:"required,specialty"`
	Address   AddressInput `json:"address" validate:"required"`
}

// UpdateDoctorInput defines the input for updating a doctor's contact data.
// Nil fields keep their stored value.
type UpdateDoctorInput struct {
	ID      uuid.UUID          `json:"id" validate:"required"`
	Name    *string            `json:"name" validate:"omitempty,min=1,max=100"`
	Email   *string            `json:"email" validate:"omitempty,email,max=255"`
	Phone   *string            `json:"phone" validate:"omitempty,max=20"`
	Address *AddressPatchInput `json:"address"`
}

// Normalize trims every text field, lowercases the e-mail and uppercases the state,
// so that validation sees the values that will be stored.
func (in *RegisterDoctorInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.CRM = strings.TrimSpace(in.CRM)
	in.Specialty = strings.TrimSpace(in.Specialty)
	in.Address.Normalize()
}

// Normalize trims the address fields and uppercases the state.
func (in *AddressInput) Normalize() {
	in.Street = strings.TrimSpace(in.Street)
	in.District = strings.TrimSpace(in.District)
	in.ZipCode = strings.TrimSpace(in.ZipCode)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	in.Number = strings.TrimSpace(in.Number)
	in.Complement = strings.TrimSpace(in.Complement)
}

// Normalize replaces every present field with its trimmed value.
// The caller's strings are not modified.
func (in *UpdateDoctorInput) Normalize() {
	in.Name = trimmed(in.Name)
	in.Email = lowered(trimmed(in.Email))
	in.Phone = trimmed(in.Phone)
	if in.Address != nil {
		patch := *in.Address
		patch.Normalize()
		in.Address = &patch
	}
}

// Normalize trims the present address fields and uppercases the state.
func (in *AddressPatchInput) Normalize() {
	in.Street = trimmed(in.Street)
	in.District = trimmed(in.District)
	in.ZipCode = trimmed(in.ZipCode)
	in.City = trimmed(in.City)
	if s := trimmed(in.State); s != nil {
		upper := strings.ToUpper(*s)
		in.State = &upper
	}
	in.Number = trimmed(in.Number)
	in.Complement = trimmed(in.Complement)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}

func lowered(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)

	return &v
}

// DoctorDetail is the full view of a doctor.
type DoctorDetail struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	CRM       string           `json:"crm"`
	Specialty entity.Specialty `json:"specialty"`
	Address   entity.Address   `json:"address"`
	Active    bool             `json:"active"`
}

// DoctorSummary is the listing view of a doctor.
type DoctorSummary struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	CRM       string           `json:"crm"`
	Specialty entity.Specialty `json:"specialty"`
}

// NewDoctorDetail builds the detail view of a doctor.
func NewDoctorDetail(d *entity.Doctor) *DoctorDetail {
	return &DoctorDetail{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		CRM:       d.CRM,
		Specialty: d.Specialty,
		Address:   d.Address,
		Active:    d.Active,
	}
}

// NewDoctorSummary builds the listing view of a doctor.
func NewDoctorSummary(d *entity.Doctor) *DoctorSummary {
	return &DoctorSummary{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		CRM:       d.CRM,
		Specialty: d.Specialty,
	}
}

// DoctorUsecase defines the interface for the doctor registry use cases
type DoctorUsecase interface {
	// Register validates the input and stores a new active doctor.
	Register(ctx context.Context, input *RegisterDoctorInput) (*DoctorDetail, error)

	// List returns one page of active doctors.
	List(ctx context.Context, req entity.PageRequest) (*entity.Page[*DoctorSummary], error)

	// Get returns a doctor by ID, active or not.
	Get(ctx context.Context, id uuid.UUID) (*DoctorDetail, error)

	// Update changes the contact data of a doctor. CRM and specialty never change.
	Update(ctx context.Context, input *UpdateDoctorInput) (*DoctorDetail, error)

	// Deactivate soft-deletes a doctor. Repeating it on an inactive doctor is a no-op.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
