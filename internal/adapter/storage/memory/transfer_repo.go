package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"

	"github.com/google/uuid"
)

// TransferRepo implements ports.TransferRepository in process memory.
// Updates of one transfer are serialized by a per-record mutex.
type TransferRepo struct {
	mu        sync.RWMutex
	transfers map[uuid.UUID]*domain.Transfer
	locks     map[uuid.UUID]*sync.Mutex
}

// NewTransferRepo creates an empty repository.
func NewTransferRepo() *TransferRepo {
	return &TransferRepo{
		transfers: make(map[uuid.UUID]*domain.Transfer),
		locks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

// Create stores a copy of t, assigning an id when it has none.
func (r *TransferRepo) Create(_ context.Context, t *domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if _, exists := r.transfers[t.ID]; exists {
		return fmt.Errorf("transfer %s already exists", t.ID)
	}
	stored := *t
	r.transfers[t.ID] = &stored
	r.locks[t.ID] = &sync.Mutex{}
	return nil
}

// GetByID returns a copy of the transfer, or nil if absent.
func (r *TransferRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transfers[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

// Update runs fn on a copy of the locked record and stores it if fn succeeds.
func (r *TransferRepo) Update(ctx context.Context, id uuid.UUID, fn func(t *domain.Transfer) error) (*domain.Transfer, error) {
	r.mu.RLock()
	lock, ok := r.locks[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ports.ErrTransferNotFound
	}

	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	working := *r.transfers[id]
	r.mu.RUnlock()

	if err := fn(&working); err != nil {
		return nil, err
	}

	r.mu.Lock()
	stored := working
	r.transfers[id] = &stored
	r.mu.Unlock()

	return &working, nil
}

// List returns matching transfers, newest UpdatedAt first.
func (r *TransferRepo) List(_ context.Context, params ports.TransferListParams) ([]domain.Transfer, error) {
	r.mu.RLock()
	var out []domain.Transfer
	for _, t := range r.transfers {
		if matchesParams(t, params) {
			out = append(out, *t)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Transfer) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

func matchesParams(t *domain.Transfer, p ports.TransferListParams) bool {
	if p.Status != nil && t.Status != *p.Status {
		return false
	}
	if p.SurveyorEmail != "" && !t.IsSurveyor(p.SurveyorEmail) {
		return false
	}
	if p.PartyEmail == "" {
		return true
	}
	if p.Role == nil {
		return t.IsSeller(p.PartyEmail) || t.IsBuyer(p.PartyEmail)
	}
	if *p.Role == domain.RoleSeller {
		return t.IsSeller(p.PartyEmail)
	}
	return t.IsBuyer(p.PartyEmail)
}
