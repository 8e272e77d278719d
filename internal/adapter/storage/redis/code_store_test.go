package redis_test

import (
	"context"
	"testing"
	"time"

	"estate-transfer/internal/adapter/storage/redis"
	"estate-transfer/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCodeStore(t *testing.T) (*miniredis.Miniredis, *redis.CodeStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, redis.NewCodeStore(client)
}

func TestCodeStore_ConsumeIfMatch(t *testing.T) {
	mr, store := setupCodeStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.Put(ctx, &domain.OneTimeCode{TransferID: id, Role: domain.RoleSeller, Digest: "d1"}, 10*time.Minute))
	assert.True(t, mr.Exists("otp:"+id.String()+":seller"))

	ok, err := store.ConsumeIfMatch(ctx, id, domain.RoleSeller, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, mr.Exists("otp:"+id.String()+":seller"), "mismatch keeps the live code")

	ok, err = store.ConsumeIfMatch(ctx, id, domain.RoleSeller, "d1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.ConsumeIfMatch(ctx, id, domain.RoleSeller, "d1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCodeStore_TTL(t *testing.T) {
	mr, store := setupCodeStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.Put(ctx, &domain.OneTimeCode{TransferID: id, Role: domain.RoleBuyer, Digest: "d1"}, 10*time.Minute))
	assert.Equal(t, 10*time.Minute, mr.TTL("otp:"+id.String()+":buyer"))

	mr.FastForward(10 * time.Minute)
	ok, err := store.ConsumeIfMatch(ctx, id, domain.RoleBuyer, "d1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCodeStore_NoExpiry(t *testing.T) {
	mr, store := setupCodeStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.Put(ctx, &domain.OneTimeCode{TransferID: id, Role: domain.RoleBuyer, Digest: "d1"}, 0))
	assert.Equal(t, time.Duration(0), mr.TTL("otp:"+id.String()+":buyer"))
}

func TestCodeStore_PutReplacesAndDelete(t *testing.T) {
	_, store := setupCodeStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.Put(ctx, &domain.OneTimeCode{TransferID: id, Role: domain.RoleSeller, Digest: "old"}, time.Minute))
	require.NoError(t, store.Put(ctx, &domain.OneTimeCode{TransferID: id, Role: domain.RoleSeller, Digest: "new"}, time.Minute))

	ok, err := store.ConsumeIfMatch(ctx, id, domain.RoleSeller, "old")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, id, domain.RoleSeller))
	ok, err = store.ConsumeIfMatch(ctx, id, domain.RoleSeller, "new")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCodeStore_StoreUnavailable(t *testing.T) {
	mr, store := setupCodeStore(t)
	mr.Close()

	_, err := store.ConsumeIfMatch(context.Background(), uuid.New(), domain.RoleSeller, "d1")
	assert.Error(t, err)
}
