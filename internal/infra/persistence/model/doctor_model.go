// Package model holds the GORM persistence structs. They never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DoctorModel is the GORM-specific struct for the 'doctors' table.
// The application assigns UUIDv7 keys before insert.
type DoctorModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(100);not null;index:idx_doctors_active_name,priority:2"`
	Email     string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string         `gorm:"type:varchar(20);not null;default:''"`
	CRM       string         `gorm:"column:crm;type:varchar(6);not null;uniqueIndex"`
	Specialty string         `gorm:"type:varchar(50);not null"`
	Address   AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	Active    bool           `gorm:"not null;index:idx_doctors_active_name,priority:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoctorModel) TableName() string {
	return "doctors"
}
