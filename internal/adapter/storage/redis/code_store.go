package redis

import (
	"context"
	"fmt"
	"time"

	"estate-transfer/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// consumeScript deletes KEYS[1] only if it holds ARGV[1].
var consumeScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CodeStore implements ports.CodeStore. Each (transfer, role) key holds
// the live code digest; expiry is delegated to the key TTL.
type CodeStore struct {
	client *goredis.Client
	prefix string
}

// NewCodeStore creates a Redis-backed code store.
func NewCodeStore(client *goredis.Client) *CodeStore {
	return &CodeStore{
		client: client,
		prefix: "otp:",
	}
}

// Put stores the digest, replacing any live one. ttl <= 0 keeps it until consumed.
func (s *CodeStore) Put(ctx context.Context, code *domain.OneTimeCode, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.key(code.TransferID, code.Role), code.Digest, ttl).Err(); err != nil {
		return fmt.Errorf("redis code set: %w", err)
	}
	return nil
}

// ConsumeIfMatch atomically compares and deletes the live digest.
func (s *CodeStore) ConsumeIfMatch(ctx context.Context, transferID uuid.UUID, role domain.Role, digest string) (bool, error) {
	n, err := consumeScript.Run(ctx, s.client, []string{s.key(transferID, role)}, digest).Int64()
	if err != nil {
		return false, fmt.Errorf("redis code consume: %w", err)
	}
	return n == 1, nil
}

// Delete removes the live code for the key.
func (s *CodeStore) Delete(ctx context.Context, transferID uuid.UUID, role domain.Role) error {
	if err := s.client.Del(ctx, s.key(transferID, role)).Err(); err != nil {
		return fmt.Errorf("redis code delete: %w", err)
	}
	return nil
}

func (s *CodeStore) key(transferID uuid.UUID, role domain.Role) string {
	return s.prefix + transferID.String() + ":" + string(role)
}
