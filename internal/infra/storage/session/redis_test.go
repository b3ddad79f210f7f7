package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotSent = errors.New("command not sent")

// recordingHook запоминает аргументы команд и не пускает их в сеть
type recordingHook struct {
	args [][]interface{}
}

func (h *recordingHook) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	h.args = append(h.args, cmd.Args())
	return ctx, errNotSent
}

func (h *recordingHook) AfterProcess(context.Context, redis.Cmder) error {
	return nil
}

func (h *recordingHook) BeforeProcessPipeline(ctx context.Context, _ []redis.Cmder) (context.Context, error) {
	return ctx, errNotSent
}

func (h *recordingHook) AfterProcessPipeline(context.Context, []redis.Cmder) error {
	return nil
}

func newRecordingStore(t *testing.T) (*RedisStore, *recordingHook) {
	client := NewRedisClient("127.0.0.1:1", "", 0)
	hook := &recordingHook{}
	client.AddHook(hook)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), hook
}

func TestRedisStore_RevokeNonPositiveTTLSendsNothing(t *testing.T) {
	store, hook := newRecordingStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", 0))
	require.NoError(t, store.Revoke(ctx, "jti-1", -time.Second))

	assert.Empty(t, hook.args)
}

func TestRedisStore_RevokeUsesPrefixedKeyWithTTL(t *testing.T) {
	store, hook := newRecordingStore(t)

	err := store.Revoke(context.Background(), "jti-1", time.Hour)
	assert.ErrorIs(t, err, ErrStore)

	require.Len(t, hook.args, 1)
	args := hook.args[0]
	require.Len(t, args, 5)
	assert.Equal(t, "set", args[0])
	assert.Equal(t, "revoked:jti-1", args[1])
	assert.Equal(t, "ex", args[3])
	assert.EqualValues(t, 3600, args[4])
}

func TestRedisStore_IsRevokedUsesPrefixedKey(t *testing.T) {
	store, hook := newRecordingStore(t)

	revoked, err := store.IsRevoked(context.Background(), "jti-2")
	assert.ErrorIs(t, err, ErrStore)
	assert.False(t, revoked)

	require.Len(t, hook.args, 1)
	assert.Equal(t, []interface{}{"exists", "revoked:jti-2"}, hook.args[0])
}
