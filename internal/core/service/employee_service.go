package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickserve/ordering-system/internal/core/domain"
	"github.com/quickserve/ordering-system/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// EmployeeService implements the administrative CRUD use-cases. Every write
// stamps the acting principal (OperatorID) into the created_by/updated_by
// fields and enqueues an audit entry.
type EmployeeService struct {
	repo            ports.EmployeeRepository
	hasher          *PasswordHasher
	audit           ports.AuditSink // optional, nil disables auditing
	defaultPassword string
	log             zerolog.Logger
}

func NewEmployeeService(
	repo ports.EmployeeRepository,
	hasher *PasswordHasher,
	audit ports.AuditSink,
	defaultPassword string,
	log zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{
		repo:            repo,
		hasher:          hasher,
		audit:           audit,
		defaultPassword: defaultPassword,
		log:             log,
	}
}

// CreateEmployee creates an account with enumerated defaults: status enabled,
// password set to the hashed default password, timestamps set to now, and
// creator/updater taken from the operator.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if input.Username == "" || input.Name == "" {
		return nil, domain.ErrInvalidArgument
	}

	hash, err := s.hasher.Hash(s.defaultPassword)
	if err != nil {
		return nil, fmt.Errorf("hash default password: %w", err)
	}

	now := time.Now().UTC()
	emp := &domain.Employee{
		Username:     input.Username,
		Name:         input.Name,
		Phone:        input.Phone,
		Sex:          input.Sex,
		IDNumber:     input.IDNumber,
		PasswordHash: hash,
		Status:       domain.StatusEnabled,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    input.OperatorID,
		UpdatedBy:    input.OperatorID,
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("employee_id", created.ID).
		Str("username", created.Username).
		Int64("operator_id", input.OperatorID).
		Msg("employee created")

	s.enqueueAudit(ports.AuditEntryInput{
		Action:     domain.AuditEmployeeCreated,
		EmployeeID: created.ID,
		Username:   created.Username,
		OperatorID: input.OperatorID,
		Timestamp:  now,
	})

	return created, nil
}

// ListEmployees returns a page of employees with an optional name filter.
func (s *EmployeeService) ListEmployees(ctx context.Context, input ports.ListEmployeesInput) (*ports.ListEmployeesResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	size := input.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListEmployeesFilter{
		Name:     input.Name,
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &ports.ListEmployeesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

// SetStatus enables or disables an account. Disabling takes effect on the
// next login attempt; outstanding tokens are not revoked.
func (s *EmployeeService) SetStatus(ctx context.Context, id int64, status domain.EmployeeStatus, operatorID int64) error {
	if !status.Valid() {
		return domain.ErrInvalidArgument
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	emp.Status = status
	emp.UpdatedAt = time.Now().UTC()
	emp.UpdatedBy = operatorID
	if err := s.repo.Update(ctx, emp); err != nil {
		return err
	}

	s.log.Info().
		Int64("employee_id", id).
		Str("status", string(status)).
		Int64("operator_id", operatorID).
		Msg("employee status changed")

	s.enqueueAudit(ports.AuditEntryInput{
		Action:     domain.AuditEmployeeStatusChanged,
		EmployeeID: id,
		Username:   emp.Username,
		OperatorID: operatorID,
		Detail:     string(status),
		Timestamp:  emp.UpdatedAt,
	})

	return nil
}

// GetByID retrieves a single employee. The password hash stays internal; the
// entity's JSON contract already omits it.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateEmployee edits the mutable profile fields. The username is immutable
// after creation and cannot be changed here.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, input ports.UpdateEmployeeInput) error {
	emp, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	emp.Name = input.Name
	emp.Phone = input.Phone
	emp.Sex = input.Sex
	emp.IDNumber = input.IDNumber
	emp.UpdatedAt = time.Now().UTC()
	emp.UpdatedBy = input.OperatorID
	if err := s.repo.Update(ctx, emp); err != nil {
		return err
	}

	s.log.Info().
		Int64("employee_id", input.ID).
		Int64("operator_id", input.OperatorID).
		Msg("employee updated")

	s.enqueueAudit(ports.AuditEntryInput{
		Action:     domain.AuditEmployeeUpdated,
		EmployeeID: input.ID,
		Username:   emp.Username,
		OperatorID: input.OperatorID,
		Timestamp:  emp.UpdatedAt,
	})

	return nil
}

func (s *EmployeeService) enqueueAudit(entry ports.AuditEntryInput) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(entry)
}
