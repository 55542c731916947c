package services

import (
	"sort"
	"sync"

	"StudioCRMGo/models"

	"gorm.io/gorm"
)

// VisibilityStore 模块全局开关的进程级缓存。
// 快照整体替换，不做增量合并；拉取失败时清空缓存，
// 空缓存视为"全部模块可用"，保证导航不因一次查询失败而被锁死。
type VisibilityStore struct {
	mu       sync.RWMutex
	settings []models.ModuleSetting
	enabled  map[string]bool

	fetchAll     func() ([]models.ModuleSetting, error)
	fetchEnabled func() ([]string, error)
	persist      func(name string, isEnabled bool) error
}

// NewVisibilityStore 构造缓存，依赖通过函数注入，便于测试
func NewVisibilityStore(
	fetchAll func() ([]models.ModuleSetting, error),
	fetchEnabled func() ([]string, error),
	persist func(name string, isEnabled bool) error,
) *VisibilityStore {
	return &VisibilityStore{
		enabled:      make(map[string]bool),
		fetchAll:     fetchAll,
		fetchEnabled: fetchEnabled,
		persist:      persist,
	}
}

// NewDBVisibilityStore 生产环境构造函数，数据来源为module_settings表
func NewDBVisibilityStore(db *gorm.DB) *VisibilityStore {
	return NewVisibilityStore(
		func() ([]models.ModuleSetting, error) {
			var settings []models.ModuleSetting
			err := db.Order("name asc").Find(&settings).Error
			return settings, err
		},
		func() ([]string, error) {
			var names []string
			err := db.Model(&models.ModuleSetting{}).
				Where("is_enabled = ?", true).
				Pluck("name", &names).Error
			return names, err
		},
		func(name string, isEnabled bool) error {
			result := db.Model(&models.ModuleSetting{}).
				Where("name = ?", name).
				Update("is_enabled", isEnabled)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return models.ErrNotFound
			}
			return nil
		},
	)
}

// FetchAll 拉取全部模块配置并整体替换缓存（模块管理视图使用）
func (s *VisibilityStore) FetchAll() ([]models.ModuleSetting, error) {
	settings, err := s.fetchAll()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return settings, nil
}

// FetchEnabled 拉取全局启用的模块名集合并整体替换缓存。
// 失败时清空缓存，降级为"全部可用"。
func (s *VisibilityStore) FetchEnabled() error {
	names, err := s.fetchEnabled()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.enabled = make(map[string]bool)
		return err
	}
	enabled := make(map[string]bool, len(names))
	for _, name := range names {
		enabled[name] = true
	}
	s.enabled = enabled
	return nil
}

// IsEnabled 缓存为空时返回true（降级规则），否则按缓存集合判断
func (s *VisibilityStore) IsEnabled(module string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.enabled) == 0 {
		return true
	}
	return s.enabled[module]
}

// Enabled 返回当前缓存的启用模块名列表
func (s *VisibilityStore) Enabled() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.enabled))
	for name := range s.enabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Toggle 先持久化再乐观更新本地缓存；持久化失败时不回滚缓存，
// 由调用方向上层报错并在需要时重新FetchEnabled
func (s *VisibilityStore) Toggle(module string, isEnabled bool) error {
	if err := s.persist(module, isEnabled); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if isEnabled {
		s.enabled[module] = true
	} else {
		delete(s.enabled, module)
	}
	for i := range s.settings {
		if s.settings[i].Name == module {
			s.settings[i].IsEnabled = isEnabled
		}
	}
	return nil
}
