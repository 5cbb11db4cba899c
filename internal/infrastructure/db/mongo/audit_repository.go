package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickserve/ordering-system/internal/core/domain"
	"github.com/quickserve/ordering-system/internal/core/ports"
)

const auditCollection = "employee_audit"

// AuditRepository persists administrative audit records.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{col: db.Collection(auditCollection)}
}

// Insert appends a record to the employee_audit collection.
func (r *AuditRepository) Insert(ctx context.Context, record *domain.AuditRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"action":      record.Action,
		"employee_id": record.EmployeeID,
		"operator_id": record.OperatorID,
		"timestamp":   record.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if record.Detail != "" {
		doc["detail"] = record.Detail
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}
