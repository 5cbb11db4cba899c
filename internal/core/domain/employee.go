package domain

import "time"

// EmployeeStatus represents the enabled/disabled state of an account.
type EmployeeStatus string

const (
	StatusEnabled  EmployeeStatus = "enabled"
	StatusDisabled EmployeeStatus = "disabled"
)

// Valid reports whether s is one of the known statuses.
func (s EmployeeStatus) Valid() bool {
	return s == StatusEnabled || s == StatusDisabled
}

// Employee models a back-office account in the ordering system.
// PasswordHash is never serialized; CreatedBy/UpdatedBy reference the
// employee id of the acting principal.
type Employee struct {
	ID           int64          `json:"id"`
	Username     string         `json:"username"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone,omitempty"`
	Sex          string         `json:"sex,omitempty"`
	IDNumber     string         `json:"id_number,omitempty"`
	PasswordHash string         `json:"-"`
	Status       EmployeeStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	CreatedBy    int64          `json:"created_by"`
	UpdatedBy    int64          `json:"updated_by"`
}
