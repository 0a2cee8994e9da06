package events

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventEmployeeCreated EventType = "employee_created"
	EventEmployeeUpdated EventType = "employee_updated"
	EventEmployeeDeleted EventType = "employee_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string `json:"username"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	EmployeeType domain.EmployeeType `json:"employee_type"`
	EmployeeID   string              `json:"employee_id"`
	Email        string              `json:"email"`
}

// EmployeeUpdatedPayload payload.
type EmployeeUpdatedPayload struct {
	EmployeeType  domain.EmployeeType `json:"employee_type"`
	EmployeeID    string              `json:"employee_id"`
	UpdatedFields []string            `json:"updated_fields"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	EmployeeType domain.EmployeeType `json:"employee_type"`
	EmployeeID   string              `json:"employee_id"`
}
