package redis

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*redisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &redisRepository{client: client}, mr
}

func TestRedisRepositorySetGet(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "slots:list:doc-1", []string{"09:00", "09:30"}, time.Minute))

	got, err := repo.Get(ctx, "slots:list:doc-1")
	require.NoError(t, err)
	assert.JSONEq(t, `["09:00","09:30"]`, got)

	mr.FastForward(2 * time.Minute)
	got, err = repo.Get(ctx, "slots:list:doc-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisRepositoryGetMissingKey(t *testing.T) {
	repo, _ := newTestRepository(t)
	got, err := repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRedisRepositorySetsAndDelete(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", 1, 0))
	require.NoError(t, repo.Set(ctx, "b", 2, 0))
	require.NoError(t, repo.AddToSet(ctx, "index", "a", "b"))
	require.NoError(t, repo.Expire(ctx, "index", time.Hour))

	members, err := repo.GetSetMembers(ctx, "index")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, members)
	assert.Equal(t, time.Hour, mr.TTL("index"))

	require.NoError(t, repo.Delete(ctx, append(members, "index")...))
	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
	assert.False(t, mr.Exists("index"))

	assert.NoError(t, repo.Delete(ctx))
}

func TestRedisRepositoryTrySetNX(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "lock", "token-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock", "token-2", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	stored, err := repo.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, `"token-1"`, stored)
}

func TestRedisRepositoryServerDown(t *testing.T) {
	repo, mr := newTestRepository(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "key")
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.True(t, strings.HasPrefix(customErr.DevMessage, constvars.ErrDevRedisGetData))
	assert.Error(t, repo.Set(context.Background(), "key", "v", 0))
}

func TestRedisRepositoryCompareAndDelete(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	result, err := repo.CompareAndDelete(ctx, "lock", "token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result)

	_, err = repo.TrySetNX(ctx, "lock", "token-1", time.Minute)
	require.NoError(t, err)

	result, err = repo.CompareAndDelete(ctx, "lock", "token-2")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), result)
	assert.True(t, mr.Exists("lock"))

	result, err = repo.CompareAndDelete(ctx, "lock", "token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result)
	assert.False(t, mr.Exists("lock"))
}

func TestRedisRepositoryCompareAndExpire(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.TrySetNX(ctx, "leader", "token-1", 10*time.Second)
	require.NoError(t, err)

	result, err := repo.CompareAndExpire(ctx, "leader", "token-2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), result)
	assert.Equal(t, 10*time.Second, mr.TTL("leader"))

	result, err = repo.CompareAndExpire(ctx, "leader", "token-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result)
	assert.Equal(t, time.Minute, mr.TTL("leader"))
}
