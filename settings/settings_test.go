package settings

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func testStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	store, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("coindash_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Fatalf("gdata.Open failed: %v", err)
	}
	return store
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if !d.MusicEnabled || !d.SoundEnabled {
		t.Fatalf("Defaults() = %+v, want both toggles on", d)
	}
}

func TestManagerNilStore(t *testing.T) {
	m := NewManager(nil)
	if m.Current() != Defaults() {
		t.Fatalf("Current() = %+v, want defaults", m.Current())
	}

	// toggles still work in degraded mode, they just don't persist
	if m.ToggleMusic() {
		t.Fatal("ToggleMusic should flip to false")
	}
	if m.Current().MusicEnabled {
		t.Fatal("music should be off after toggle")
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save with nil store returned error: %v", err)
	}
}

func TestToggleMusicPersists(t *testing.T) {
	store := testStore(t)

	m := NewManager(store)
	if got := m.ToggleMusic(); got {
		t.Fatal("ToggleMusic should flip to false")
	}

	reloaded := NewManager(store)
	if reloaded.Current().MusicEnabled {
		t.Fatal("music toggle did not survive a reload")
	}
	if !reloaded.Current().SoundEnabled {
		t.Fatal("sound toggle should be untouched")
	}
}

func TestToggleSoundPersists(t *testing.T) {
	store := testStore(t)

	m := NewManager(store)
	if got := m.ToggleSound(); got {
		t.Fatal("ToggleSound should flip to false")
	}
	if got := m.ToggleSound(); !got {
		t.Fatal("second ToggleSound should flip back to true")
	}

	reloaded := NewManager(store)
	if !reloaded.Current().SoundEnabled {
		t.Fatalf("Current() = %+v, want sound back on after double toggle", reloaded.Current())
	}
}

func TestManagerSurvivesCorruptData(t *testing.T) {
	store := testStore(t)
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("{not yaml: [")); err != nil {
		t.Fatalf("seeding corrupt data failed: %v", err)
	}

	m := NewManager(store)
	if m.Current() != Defaults() {
		t.Fatalf("Current() = %+v, want defaults after corrupt load", m.Current())
	}
}
