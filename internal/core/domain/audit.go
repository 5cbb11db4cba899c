package domain

import "time"

// Audit actions recorded for administrative operations.
const (
	AuditEmployeeCreated       = "employee.created"
	AuditEmployeeUpdated       = "employee.updated"
	AuditEmployeeStatusChanged = "employee.status_changed"
)

// AuditRecord captures who did what to which employee account.
type AuditRecord struct {
	Action     string
	EmployeeID int64
	OperatorID int64
	Detail     string
	Timestamp  time.Time
}
