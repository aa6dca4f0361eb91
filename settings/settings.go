package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the global audio toggles. Only configuration is persisted;
// game progress never is.
type Settings struct {
	MusicEnabled bool `yaml:"musicEnabled"`
	SoundEnabled bool `yaml:"soundEnabled"`
}

func Defaults() Settings {
	return Settings{MusicEnabled: true, SoundEnabled: true}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Manager loads and saves Settings through a gdata store. A nil store
// degrades to in-memory settings; load and save failures are logged and
// never fatal.
type Manager struct {
	store   *gdata.Manager
	current Settings
}

func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, current: Defaults()}
	if err := m.load(); err != nil {
		log.Warn("using default settings", "error", err)
	}
	return m
}

func (m *Manager) load() error {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	m.current = loaded
	return nil
}

// Save writes the current settings to the store.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.current)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (m *Manager) Current() Settings { return m.current }

// ToggleMusic flips the music toggle, persists, and returns the new value.
func (m *Manager) ToggleMusic() bool {
	m.current.MusicEnabled = !m.current.MusicEnabled
	if err := m.Save(); err != nil {
		log.Warn("could not persist settings", "error", err)
	}
	return m.current.MusicEnabled
}

// ToggleSound flips the effects toggle, persists, and returns the new value.
func (m *Manager) ToggleSound() bool {
	m.current.SoundEnabled = !m.current.SoundEnabled
	if err := m.Save(); err != nil {
		log.Warn("could not persist settings", "error", err)
	}
	return m.current.SoundEnabled
}
