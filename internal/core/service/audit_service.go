package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickserve/ordering-system/internal/core/domain"
	"github.com/quickserve/ordering-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit entry. Entries arrive from the dispatcher
// workers; a missing timestamp is filled in with the processing time.
func (s *auditService) Process(ctx context.Context, entry ports.AuditEntryInput) error {
	if entry.Action == "" {
		return fmt.Errorf("process audit entry: %w: empty action", domain.ErrInvalidArgument)
	}

	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	record := &domain.AuditRecord{
		Action:     entry.Action,
		EmployeeID: entry.EmployeeID,
		OperatorID: entry.OperatorID,
		Detail:     entry.Detail,
		Timestamp:  ts,
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		return fmt.Errorf("process audit entry: %w", err)
	}

	s.log.Debug().
		Str("action", entry.Action).
		Int64("employee_id", entry.EmployeeID).
		Int64("operator_id", entry.OperatorID).
		Msg("audit entry recorded")

	return nil
}
