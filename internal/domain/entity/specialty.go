// Package entity contains the core business objects of the project.
package entity

import "strings"

// Specialty is the medical specialty a doctor is registered under.
type Specialty string

const (
	// SpecialtyOrthopedics is orthopedics.
	SpecialtyOrthopedics Specialty = "ORTOPEDIA"
	// SpecialtyCardiology is cardiology.
	SpecialtyCardiology Specialty = "CARDIOLOGIA"
	// SpecialtyGynecology is gynecology.
	SpecialtyGynecology Specialty = "GINECOLOGIA"
	// SpecialtyDermatology is dermatology.
	SpecialtyDermatology Specialty = "DERMATOLOGIA"
)

// Specialties lists every recognized specialty in declaration order.
var Specialties = []Specialty{
	SpecialtyOrthopedics,
	SpecialtyCardiology,
	SpecialtyGynecology,
	SpecialtyDermatology,
}

// String returns the string representation of the Specialty.
func (s Specialty) String() string {
	return string(s)
}

// IsValid checks if the Specialty is a recognized value.
func (s Specialty) IsValid() bool {
	switch s {
	case SpecialtyOrthopedics, SpecialtyCardiology, SpecialtyGynecology, SpecialtyDermatology:
		return true
	default:
		return false
	}
}

// ParseSpecialty converts a case-insensitive string into a Specialty.
// The second return value is false when the string names no known specialty.
func ParseSpecialty(s string) (Specialty, bool) {
	specialty := Specialty(strings.ToUpper(strings.TrimSpace(s)))
	if !specialty.IsValid() {
		return "", false
	}

	return specialty, true
}
