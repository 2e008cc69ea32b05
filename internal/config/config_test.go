package config

import (
	"testing"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

func TestStoreSwapIsVisibleToReaders(t *testing.T) {
	store := NewStore(DefaultSnapshot())

	snap := store.Get()
	snap.Proximity.Delay = 7 * time.Second
	store.Set(snap)

	if got := store.For(episode.KindProximity).Delay; got != 7*time.Second {
		t.Fatalf("expected 7s after swap, got %s", got)
	}
}

func TestSnapshotForUnknownKind(t *testing.T) {
	snap := DefaultSnapshot()
	cfg := snap.For(episode.Kind("bogus"))
	if cfg.Enabled {
		t.Fatal("unknown kind must resolve to a disabled config")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("POCKETGUARD_DARK_ENABLED", "true")
	t.Setenv("POCKETGUARD_DARK_DELAY_SECONDS", "9")
	t.Setenv("POCKETGUARD_DARK_LUX_THRESHOLD", "4.5")

	snap := FromEnv()

	if !snap.AmbientLight.Enabled {
		t.Fatal("expected ambient light enabled")
	}
	if snap.AmbientLight.Delay != 9*time.Second {
		t.Fatalf("expected 9s delay, got %s", snap.AmbientLight.Delay)
	}
	if snap.AmbientLight.Threshold != 4.5 {
		t.Fatalf("expected threshold 4.5, got %f", snap.AmbientLight.Threshold)
	}
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("POCKETGUARD_PROXIMITY_DELAY_SECONDS", "not-a-number")

	snap := FromEnv()

	if snap.Proximity.Delay != DefaultProximityConfig().Delay {
		t.Fatalf("expected default delay, got %s", snap.Proximity.Delay)
	}
}

func TestValidate(t *testing.T) {
	bad := DetectorConfig{Enabled: true, Delay: 0}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero delay on enabled detector")
	}
	ok := DetectorConfig{Enabled: false, Delay: 0}
	if err := ok.Validate(); err != nil {
		t.Fatalf("disabled detector should validate: %v", err)
	}
}
