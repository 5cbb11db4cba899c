package ports

import (
	"context"
	"time"

	"github.com/quickserve/ordering-system/internal/core/domain"
)

// AuditEntryInput is the DTO handed from the services to the audit pipeline.
type AuditEntryInput struct {
	Action     string
	EmployeeID int64
	Username   string
	OperatorID int64
	Detail     string
	Timestamp  time.Time
}

// AuditSink accepts audit entries for asynchronous processing.
type AuditSink interface {
	Enqueue(entry AuditEntryInput)
}

// AuditService processes queued audit entries.
type AuditService interface {
	Process(ctx context.Context, entry AuditEntryInput) error
}

// AuditRepository persists audit records.
type AuditRepository interface {
	Insert(ctx context.Context, record *domain.AuditRecord) error
}
