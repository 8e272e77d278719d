package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

var codeSpace = big.NewInt(1_000_000)

// CodeIssuerService implements ports.CodeIssuer.
// Codes are kept only as keyed BLAKE2b-256 digests.
type CodeIssuerService struct {
	store ports.CodeStore
	key   []byte
	ttl   time.Duration
	now   func() time.Time
}

// NewCodeIssuer creates a code issuer. A secret longer than the BLAKE2b key
// limit is hashed down first; an empty secret yields unkeyed digests.
func NewCodeIssuer(store ports.CodeStore, secret string, ttl time.Duration) *CodeIssuerService {
	key := []byte(secret)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	return &CodeIssuerService{store: store, key: key, ttl: ttl, now: time.Now}
}

// Issue generates a uniformly random 6-digit code and stores its digest,
// superseding any live code for the same transfer and role.
func (s *CodeIssuerService) Issue(ctx context.Context, transferID uuid.UUID, role domain.Role) (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generating code: %w", err)
	}
	code := fmt.Sprintf("%0*d", domain.CodeLength, n.Int64())

	if err := s.put(ctx, transferID, role, code); err != nil {
		return "", err
	}
	return code, nil
}

// Verify consumes the live code when candidate matches it. Malformed
// candidates never reach the store.
func (s *CodeIssuerService) Verify(ctx context.Context, transferID uuid.UUID, role domain.Role, candidate string) (bool, error) {
	if !domain.IsNumericCode(candidate) {
		return false, nil
	}
	ok, err := s.store.ConsumeIfMatch(ctx, transferID, role, s.digest(transferID, role, candidate))
	if err != nil {
		return false, fmt.Errorf("consuming %s code: %w", role, err)
	}
	return ok, nil
}

// Restore puts a consumed code back with a fresh TTL.
func (s *CodeIssuerService) Restore(ctx context.Context, transferID uuid.UUID, role domain.Role, code string) error {
	return s.put(ctx, transferID, role, code)
}

func (s *CodeIssuerService) put(ctx context.Context, transferID uuid.UUID, role domain.Role, code string) error {
	now := s.now()
	c := &domain.OneTimeCode{
		TransferID: transferID,
		Role:       role,
		Digest:     s.digest(transferID, role, code),
		CreatedAt:  now,
	}
	if s.ttl > 0 {
		exp := now.Add(s.ttl)
		c.ExpiresAt = &exp
	}
	if err := s.store.Put(ctx, c, s.ttl); err != nil {
		return fmt.Errorf("storing %s code: %w", role, err)
	}
	return nil
}

// digest binds the code to its transfer and role so a digest cannot be
// replayed under another key.
func (s *CodeIssuerService) digest(transferID uuid.UUID, role domain.Role, code string) string {
	h, _ := blake2b.New256(s.key) // key length is bounded in NewCodeIssuer
	h.Write(transferID[:])
	h.Write([]byte(role))
	h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil))
}
