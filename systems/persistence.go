package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Volume  float64 `json:"volume"`
	Muted   bool    `json:"muted"`
	Address string  `json:"address"`
	Name    string  `json:"name"`
}

// DefaultSettings is what a first launch starts with
func DefaultSettings() SavedSettings {
	return SavedSettings{
		Volume:  cfg.Audio.DefaultVolume,
		Address: cfg.Net.DefaultAddress,
		Name:    cfg.SettingsMenu.DefaultName,
	}
}

// itemStore is the slice of gdata.Manager that settings persistence uses
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var settingsStore itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.SettingsMenu.SettingsAppKey,
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	settingsStore = m
	return nil
}

// LoadSettings loads settings from disk. Without storage, or before the first
// save, it returns the defaults.
func LoadSettings() (SavedSettings, error) {
	settings := DefaultSettings()
	if settingsStore == nil {
		return settings, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return settings, nil
	}
	if len(data) == 0 {
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return DefaultSettings(), err
	}
	settings.Volume = clamp(settings.Volume, 0, 1)
	if settings.Address == "" {
		settings.Address = cfg.Net.DefaultAddress
	}
	if settings.Name == "" {
		settings.Name = cfg.SettingsMenu.DefaultName
	}
	return settings, nil
}

// SaveSettings saves settings to disk. It is a no-op without storage.
func SaveSettings(s SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}
