package systems

import (
	"testing"

	cfg "github.com/automoto/shapefighter/config"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func useStore(t *testing.T, s itemStore) {
	t.Helper()
	prev := settingsStore
	settingsStore = s
	t.Cleanup(func() { settingsStore = prev })
}

func TestLoadSettingsDefaultsWithoutStore(t *testing.T) {
	useStore(t, nil)

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", got)
	}
	if err := SaveSettings(got); err != nil {
		t.Errorf("save without store: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	useStore(t, memStore{})

	want := SavedSettings{Volume: 0.25, Muted: true, Address: "arena.example:9000", Name: "Player 2"}
	if err := SaveSettings(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestLoadSettingsRepairsBadValues(t *testing.T) {
	useStore(t, memStore{settingsKey: []byte(`{"volume":3,"address":""}`)})

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Volume != 1 || got.Address != cfg.Net.DefaultAddress || got.Name != cfg.SettingsMenu.DefaultName {
		t.Errorf("settings = %+v", got)
	}

	useStore(t, memStore{settingsKey: []byte(`not json`)})
	if _, err := LoadSettings(); err == nil {
		t.Error("corrupt settings loaded without error")
	}
}
