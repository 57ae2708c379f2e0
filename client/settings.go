package client

import (
	"sync"
)

// Settings アラート設定
type Settings struct {
	SoundEnabled         bool `json:"soundEnabled"`
	NotificationsEnabled bool `json:"notificationsEnabled"`
}

// DefaultSettings 初期設定
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, NotificationsEnabled: true}
}

// SettingsStore アラート設定の永続化
type SettingsStore interface {
	// Load 保存済みの設定を読み込みます。未保存の場合はエラーを返して良い
	Load() (Settings, error)
	// Save 設定を保存します
	Save(Settings) error
}

// MemorySettingsStore インメモリのSettingsStore実装
type MemorySettingsStore struct {
	mu       sync.Mutex
	settings *Settings
}

func (s *MemorySettingsStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return DefaultSettings(), nil
	}
	return *s.settings, nil
}

func (s *MemorySettingsStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}
