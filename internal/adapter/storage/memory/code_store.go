package memory

import (
	"context"
	"sync"
	"time"

	"estate-transfer/internal/core/domain"

	"github.com/google/uuid"
)

type codeKey struct {
	transferID uuid.UUID
	role       domain.Role
}

type codeEntry struct {
	digest    string
	expiresAt time.Time // zero = no expiry
}

// CodeStore implements ports.CodeStore in process memory.
type CodeStore struct {
	mu    sync.Mutex
	codes map[codeKey]codeEntry
	now   func() time.Time
}

// NewCodeStore creates an empty code store.
func NewCodeStore() *CodeStore {
	return &CodeStore{codes: make(map[codeKey]codeEntry), now: time.Now}
}

// Put stores the code digest, replacing any live one.
func (s *CodeStore) Put(_ context.Context, code *domain.OneTimeCode, ttl time.Duration) error {
	e := codeEntry{digest: code.Digest}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.codes[codeKey{code.TransferID, code.Role}] = e
	s.mu.Unlock()
	return nil
}

// ConsumeIfMatch deletes the live code iff its digest matches.
func (s *CodeStore) ConsumeIfMatch(_ context.Context, transferID uuid.UUID, role domain.Role, digest string) (bool, error) {
	k := codeKey{transferID, role}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.codes[k]
	if !ok {
		return false, nil
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.codes, k)
		return false, nil
	}
	if e.digest != digest {
		return false, nil
	}
	delete(s.codes, k)
	return true, nil
}

// Delete removes the live code for the key.
func (s *CodeStore) Delete(_ context.Context, transferID uuid.UUID, role domain.Role) error {
	s.mu.Lock()
	delete(s.codes, codeKey{transferID, role})
	s.mu.Unlock()
	return nil
}
