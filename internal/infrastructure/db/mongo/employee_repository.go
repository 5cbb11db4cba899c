package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickserve/ordering-system/internal/core/domain"
	"github.com/quickserve/ordering-system/internal/core/ports"
)

const (
	employeeCollection = "employees"
	counterCollection  = "counters"
	employeeCounterKey = "employee_id"
)

// EmployeeRepository implements ports.EmployeeRepository on MongoDB.
// Employee ids are system-assigned int64 values drawn from a sequence
// document in the counters collection.
type EmployeeRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{
		col:      db.Collection(employeeCollection),
		counters: db.Collection(counterCollection),
	}
}

type employeeDoc struct {
	ID           int64     `bson:"_id"`
	Username     string    `bson:"username"`
	Name         string    `bson:"name"`
	Phone        string    `bson:"phone,omitempty"`
	Sex          string    `bson:"sex,omitempty"`
	IDNumber     string    `bson:"id_number,omitempty"`
	PasswordHash string    `bson:"password_hash"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
	CreatedBy    int64     `bson:"created_by"`
	UpdatedBy    int64     `bson:"updated_by"`
}

func toDoc(e *domain.Employee) employeeDoc {
	return employeeDoc{
		ID:           e.ID,
		Username:     e.Username,
		Name:         e.Name,
		Phone:        e.Phone,
		Sex:          e.Sex,
		IDNumber:     e.IDNumber,
		PasswordHash: e.PasswordHash,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt.UTC(),
		UpdatedAt:    e.UpdatedAt.UTC(),
		CreatedBy:    e.CreatedBy,
		UpdatedBy:    e.UpdatedBy,
	}
}

func fromDoc(d employeeDoc) *domain.Employee {
	return &domain.Employee{
		ID:           d.ID,
		Username:     d.Username,
		Name:         d.Name,
		Phone:        d.Phone,
		Sex:          d.Sex,
		IDNumber:     d.IDNumber,
		PasswordHash: d.PasswordHash,
		Status:       domain.EmployeeStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		CreatedBy:    d.CreatedBy,
		UpdatedBy:    d.UpdatedBy,
	}
}

// nextID atomically increments and returns the employee id sequence.
func (r *EmployeeRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": employeeCounterKey},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next employee id: %w", err)
	}
	return counter.Seq, nil
}

// Create assigns the next sequence id and inserts the employee. A duplicate
// username is reported as domain.ErrEmployeeExists via the unique index.
func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := toDoc(e)
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmployeeExists
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := fromDoc(doc)
	return created, nil
}

func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc employeeDoc
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find employee by username: %w", err)
	}
	return fromDoc(doc), nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc employeeDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find employee by id: %w", err)
	}
	return fromDoc(doc), nil
}

// Update replaces the stored document for the employee's id.
func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, toDoc(e))
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// List returns a page of employees ordered by creation time (newest first)
// and the total count matching the filter.
func (r *EmployeeRepository) List(ctx context.Context, filter ports.ListEmployeesFilter) ([]*domain.Employee, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Name), "$options": "i"}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.PageSize)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.PageSize))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*domain.Employee
	for cursor.Next(ctx) {
		var doc employeeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode employee: %w", err)
		}
		items = append(items, fromDoc(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}

	return items, total, nil
}

// EnsureIndexes creates the unique username index enforcing username
// uniqueness at store level.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
