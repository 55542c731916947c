package services

import (
	"errors"
	"testing"

	"StudioCRMGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(enabled []string) (*VisibilityStore, *[]string) {
	var persisted []string
	store := NewVisibilityStore(
		func() ([]models.ModuleSetting, error) {
			return []models.ModuleSetting{
				{Name: models.ModuleDashboard, IsEnabled: true},
				{Name: models.ModuleFinance, IsEnabled: false},
			}, nil
		},
		func() ([]string, error) {
			return enabled, nil
		},
		func(name string, isEnabled bool) error {
			persisted = append(persisted, name)
			return nil
		},
	)
	return store, &persisted
}

func TestIsEnabled_EmptyCacheTreatsAllAsEnabled(t *testing.T) {
	store, _ := newTestStore(nil)

	// 尚未拉取过，缓存为空，按全部可用处理
	assert.True(t, store.IsEnabled(models.ModuleFinance))
	assert.True(t, store.IsEnabled(models.ModuleDashboard))
}

func TestFetchEnabled_ReplacesSnapshotWholesale(t *testing.T) {
	store, _ := newTestStore([]string{models.ModuleDashboard})

	require.NoError(t, store.FetchEnabled())

	assert.True(t, store.IsEnabled(models.ModuleDashboard))
	assert.False(t, store.IsEnabled(models.ModuleFinance))
}

func TestFetchEnabled_FailureClearsCache(t *testing.T) {
	store, _ := newTestStore([]string{models.ModuleDashboard})
	require.NoError(t, store.FetchEnabled())
	assert.False(t, store.IsEnabled(models.ModuleFinance))

	// 换成会失败的拉取函数
	store.fetchEnabled = func() ([]string, error) {
		return nil, errors.New("connection refused")
	}

	err := store.FetchEnabled()
	assert.Error(t, err)

	// 缓存清空后降级为全部可用，导航不被锁死
	assert.True(t, store.IsEnabled(models.ModuleFinance))
}

func TestToggle_PersistsThenUpdatesCache(t *testing.T) {
	store, persisted := newTestStore([]string{models.ModuleDashboard})
	require.NoError(t, store.FetchEnabled())

	require.NoError(t, store.Toggle(models.ModuleFinance, true))

	assert.Equal(t, []string{models.ModuleFinance}, *persisted)
	assert.True(t, store.IsEnabled(models.ModuleFinance))

	require.NoError(t, store.Toggle(models.ModuleFinance, false))
	assert.False(t, store.IsEnabled(models.ModuleFinance))
}

func TestToggle_PersistFailureLeavesCacheUntouched(t *testing.T) {
	store, _ := newTestStore([]string{models.ModuleDashboard})
	require.NoError(t, store.FetchEnabled())

	store.persist = func(name string, isEnabled bool) error {
		return errors.New("write failed")
	}

	err := store.Toggle(models.ModuleFinance, true)
	assert.Error(t, err)
	assert.False(t, store.IsEnabled(models.ModuleFinance))
}

func TestFetchAll_ReturnsSettings(t *testing.T) {
	store, _ := newTestStore(nil)

	settings, err := store.FetchAll()
	require.NoError(t, err)
	assert.Len(t, settings, 2)
	assert.Equal(t, models.ModuleDashboard, settings[0].Name)
}
