package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"StudioCRMGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapKV KV的内存实现，测试用，忽略TTL
type mapKV struct {
	data map[string]string
}

func newMapKV() *mapKV {
	return &mapKV{data: make(map[string]string)}
}

func (m *mapKV) Get(ctx context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *mapKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mapKV) Del(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mapKV) Incr(ctx context.Context, key string) (int64, error) {
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func newTestGate() *PinGate {
	return NewPinGate(newMapKV(), "1234", 30*time.Minute)
}

func TestPinGate_InitiallyDisabled(t *testing.T) {
	gate := newTestGate()

	status, err := gate.Status(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, status.Enabled)
	assert.False(t, status.Unlocked)
}

func TestPinGate_EnableEntersLockedState(t *testing.T) {
	gate := newTestGate()
	ctx := context.Background()

	require.NoError(t, gate.EnableProtection(ctx, "u1"))

	status, err := gate.Status(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.False(t, status.Unlocked)
}

func TestPinGate_UnlockWithCorrectPin(t *testing.T) {
	gate := newTestGate()
	ctx := context.Background()
	require.NoError(t, gate.EnableProtection(ctx, "u1"))

	require.NoError(t, gate.Unlock(ctx, "u1", "1234"))

	status, err := gate.Status(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.True(t, status.Unlocked)
}

func TestPinGate_WrongPinStaysLocked(t *testing.T) {
	gate := newTestGate()
	ctx := context.Background()
	require.NoError(t, gate.EnableProtection(ctx, "u1"))

	err := gate.Unlock(ctx, "u1", "0000")
	assert.ErrorIs(t, err, models.ErrPinMismatch)

	status, err := gate.Status(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.False(t, status.Unlocked)
}

func TestPinGate_LockAfterUnlock(t *testing.T) {
	gate := newTestGate()
	ctx := context.Background()
	require.NoError(t, gate.EnableProtection(ctx, "u1"))
	require.NoError(t, gate.Unlock(ctx, "u1", "1234"))

	require.NoError(t, gate.Lock(ctx, "u1"))

	status, err := gate.Status(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.False(t, status.Unlocked)
}

func TestPinGate_DisableClearsEverything(t *testing.T) {
	gate := newTestGate()
	ctx := context.Background()
	require.NoError(t, gate.EnableProtection(ctx, "u1"))
	require.NoError(t, gate.Unlock(ctx, "u1", "1234"))

	require.NoError(t, gate.DisableProtection(ctx, "u1"))

	status, err := gate.Status(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, status.Enabled)
	assert.False(t, status.Unlocked)

	// 重新启用后回到锁定态，不保留之前的解锁态
	require.NoError(t, gate.EnableProtection(ctx, "u1"))
	status, err = gate.Status(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.False(t, status.Unlocked)
}

func TestPinGate_StateIsPerUser(t *testing.T) {
	gate := newTestGate()
	ctx := context.Background()
	require.NoError(t, gate.EnableProtection(ctx, "u1"))

	status, err := gate.Status(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, status.Enabled)
}
