package ports

import (
	"context"
	"errors"
	"time"

	"estate-transfer/internal/core/domain"

	"github.com/google/uuid"
)

// ErrTransferNotFound is returned by TransferRepository.Update for an unknown id.
var ErrTransferNotFound = errors.New("transfer not found")

// TransferRepository defines persistence operations for transfers.
type TransferRepository interface {
	// Create stores a new transfer, assigning ID when it is zero.
	Create(ctx context.Context, transfer *domain.Transfer) error
	// GetByID returns nil, nil when the transfer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
	// Update runs fn against the locked current record and persists the
	// result atomically. If fn returns an error nothing is written.
	// Concurrent updates of the same id are serialized.
	Update(ctx context.Context, id uuid.UUID, fn func(t *domain.Transfer) error) (*domain.Transfer, error)
	// List returns transfers matching params, newest UpdatedAt first.
	List(ctx context.Context, params TransferListParams) ([]domain.Transfer, error)
}

// TransferListParams filters transfers by party.
// Empty PartyEmail means no party filter; SurveyorEmail restricts to a bound surveyor.
type TransferListParams struct {
	PartyEmail    string
	Role          *domain.Role
	SurveyorEmail string
	Status        *domain.TransferStatus
}

// CodeStore holds the live one-time code digest per (transfer, role).
type CodeStore interface {
	// Put stores code, replacing any live code for the same key.
	// ttl <= 0 stores without expiry.
	Put(ctx context.Context, code *domain.OneTimeCode, ttl time.Duration) error
	// ConsumeIfMatch deletes the live code and returns true only when its
	// digest equals digest. A mismatch leaves the live code untouched.
	ConsumeIfMatch(ctx context.Context, transferID uuid.UUID, role domain.Role, digest string) (bool, error)
	// Delete removes any live code for the key.
	Delete(ctx context.Context, transferID uuid.UUID, role domain.Role) error
}

// DocumentStore is the query interface over external record collections.
type DocumentStore interface {
	Find(ctx context.Context, q Query) ([]domain.Document, error)
	// Get returns nil, nil when no document has the id.
	Get(ctx context.Context, collection, id string) (domain.Document, error)
	// Put creates or replaces a document.
	Put(ctx context.Context, collection, id string, doc domain.Document) error
}

// Operator is a predicate comparison.
type Operator string

const (
	OpEq       Operator = "eq"
	OpNe       Operator = "ne"
	OpIn       Operator = "in"       // Value is []string
	OpContains Operator = "contains" // field is an array containing Value
)

// Predicate compares one top-level document field.
type Predicate struct {
	Field string
	Op    Operator
	Value any
}

// Query selects documents from one collection. All predicates must hold.
type Query struct {
	Collection string
	Where      []Predicate
	SortBy     string
	Descending bool
	Limit      int // 0 = unlimited
}

// Eq is shorthand for an equality predicate.
func Eq(field string, value any) Predicate {
	return Predicate{Field: field, Op: OpEq, Value: value}
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
