package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickserve/ordering-system/internal/core/domain"
	"github.com/quickserve/ordering-system/internal/core/ports"
)

type recordingSink struct {
	entries []ports.AuditEntryInput
}

func (s *recordingSink) Enqueue(entry ports.AuditEntryInput) {
	s.entries = append(s.entries, entry)
}

func newTestEmployeeService(repo ports.EmployeeRepository, sink ports.AuditSink) *EmployeeService {
	return NewEmployeeService(repo, NewPasswordHasher(bcrypt.MinCost), sink, "123456", zerolog.Nop())
}

func TestEmployeeService_Create_Defaults(t *testing.T) {
	repo := newStubEmployeeRepo()
	sink := &recordingSink{}
	svc := newTestEmployeeService(repo, sink)

	created, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{
		Username:   "alice",
		Name:       "Alice Chen",
		Phone:      "13800000000",
		OperatorID: 7,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
	if created.Status != domain.StatusEnabled {
		t.Fatalf("expected default status enabled, got %s", created.Status)
	}
	if created.CreatedBy != 7 || created.UpdatedBy != 7 {
		t.Fatalf("expected operator stamping, got created_by=%d updated_by=%d", created.CreatedBy, created.UpdatedBy)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}

	// The default password is stored hashed, never in plaintext.
	if created.PasswordHash == "123456" {
		t.Fatalf("default password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("123456")); err != nil {
		t.Fatalf("stored hash does not match default password: %v", err)
	}

	if len(sink.entries) != 1 || sink.entries[0].Action != domain.AuditEmployeeCreated {
		t.Fatalf("expected one employee.created audit entry, got %+v", sink.entries)
	}
	if sink.entries[0].OperatorID != 7 || sink.entries[0].EmployeeID != created.ID {
		t.Fatalf("audit entry mis-stamped: %+v", sink.entries[0])
	}
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	svc := newTestEmployeeService(newStubEmployeeRepo(), nil)

	if _, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{Name: "No Username"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{Username: "nameless"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEmployeeService_Create_DuplicateUsername(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)

	if _, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{Username: "alice", Name: "First", OperatorID: 1}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{Username: "alice", Name: "Second", OperatorID: 1}); !errors.Is(err, domain.ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists, got %v", err)
	}
}

func TestEmployeeService_List_Pagination(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)

	for _, username := range []string{"a", "b", "c", "d", "e"} {
		repo.seed(t, username, "pw", domain.StatusEnabled)
	}

	result, err := svc.ListEmployees(context.Background(), ports.ListEmployeesInput{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 5 || len(result.Items) != 2 {
		t.Fatalf("expected total 5 with 2 items, got total=%d items=%d", result.Total, len(result.Items))
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", result.TotalPages)
	}
}

func TestEmployeeService_List_DefaultsApplied(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)

	result, err := svc.ListEmployees(context.Background(), ports.ListEmployeesInput{Page: 0, PageSize: 0})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page != 1 || result.PageSize != defaultPageSize {
		t.Fatalf("expected page=1 size=%d, got page=%d size=%d", defaultPageSize, result.Page, result.PageSize)
	}

	result, err = svc.ListEmployees(context.Background(), ports.ListEmployeesInput{Page: 1, PageSize: 9999})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.PageSize != maxPageSize {
		t.Fatalf("expected page size capped at %d, got %d", maxPageSize, result.PageSize)
	}
}

func TestEmployeeService_SetStatus(t *testing.T) {
	repo := newStubEmployeeRepo()
	sink := &recordingSink{}
	svc := newTestEmployeeService(repo, sink)
	alice := repo.seed(t, "alice", "pw", domain.StatusEnabled)

	if err := svc.SetStatus(context.Background(), alice.ID, domain.StatusDisabled, 7); err != nil {
		t.Fatalf("set status failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), alice.ID)
	if stored.Status != domain.StatusDisabled {
		t.Fatalf("expected disabled, got %s", stored.Status)
	}
	if stored.UpdatedBy != 7 {
		t.Fatalf("expected updated_by 7, got %d", stored.UpdatedBy)
	}
	if len(sink.entries) != 1 || sink.entries[0].Action != domain.AuditEmployeeStatusChanged {
		t.Fatalf("expected status-change audit entry, got %+v", sink.entries)
	}
}

func TestEmployeeService_SetStatus_NotFound(t *testing.T) {
	svc := newTestEmployeeService(newStubEmployeeRepo(), nil)

	if err := svc.SetStatus(context.Background(), 99, domain.StatusDisabled, 1); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestEmployeeService_SetStatus_InvalidStatus(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)
	alice := repo.seed(t, "alice", "pw", domain.StatusEnabled)

	if err := svc.SetStatus(context.Background(), alice.ID, "archived", 1); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEmployeeService_Update(t *testing.T) {
	repo := newStubEmployeeRepo()
	sink := &recordingSink{}
	svc := newTestEmployeeService(repo, sink)
	alice := repo.seed(t, "alice", "pw", domain.StatusEnabled)

	err := svc.UpdateEmployee(context.Background(), ports.UpdateEmployeeInput{
		ID:         alice.ID,
		Name:       "Alice Updated",
		Phone:      "13900000000",
		OperatorID: 9,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), alice.ID)
	if stored.Name != "Alice Updated" || stored.Phone != "13900000000" {
		t.Fatalf("fields not updated: %+v", stored)
	}
	if stored.Username != "alice" {
		t.Fatalf("username must be immutable, got %q", stored.Username)
	}
	if stored.UpdatedBy != 9 {
		t.Fatalf("expected updated_by 9, got %d", stored.UpdatedBy)
	}
	if len(sink.entries) != 1 || sink.entries[0].Action != domain.AuditEmployeeUpdated {
		t.Fatalf("expected update audit entry, got %+v", sink.entries)
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := newTestEmployeeService(newStubEmployeeRepo(), nil)

	err := svc.UpdateEmployee(context.Background(), ports.UpdateEmployeeInput{ID: 42, Name: "Ghost", OperatorID: 1})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestEmployeeService_GetByID(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)
	alice := repo.seed(t, "alice", "pw", domain.StatusEnabled)

	got, err := svc.GetByID(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected employee: %+v", got)
	}

	if _, err := svc.GetByID(context.Background(), 404); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
