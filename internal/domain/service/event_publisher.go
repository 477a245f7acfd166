package service

import (
	"context"
	"time"
)

// DoctorEventType names a change in a doctor's lifecycle.
type DoctorEventType string

const (
	DoctorRegistered  DoctorEventType = "doctor.registered"
	DoctorUpdated     DoctorEventType = "doctor.updated"
	DoctorDeactivated DoctorEventType = "doctor.deactivated"
)

// DoctorEvent is published after a doctor change has been committed
type DoctorEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       DoctorEventType `json:"type"`
	DoctorID   string          `json:"doctor_id"`
	CRM        string          `json:"crm"`
	Specialty  string          `json:"specialty"`
	Active     bool            `json:"active"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDoctorEvent publishes a doctor lifecycle event
	PublishDoctorEvent(ctx context.Context, event *DoctorEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
