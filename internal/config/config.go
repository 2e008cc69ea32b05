package config

// #region imports
import (
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

// #endregion imports

// #region detector-config
// DetectorConfig is the externally supplied policy for one detector variant.
// Read, never mutated, by detectors; it may be swapped at any time, including
// mid-countdown.
type DetectorConfig struct {
	Enabled   bool
	Delay     time.Duration
	Threshold float64 // lux cap for ambient light; unused by the other kinds
}

// DefaultProximityConfig returns the stock in-pocket policy.
func DefaultProximityConfig() DetectorConfig {
	return DetectorConfig{Enabled: true, Delay: 3 * time.Second}
}

// DefaultAmbientLightConfig returns the stock in-dark policy.
func DefaultAmbientLightConfig() DetectorConfig {
	return DetectorConfig{Enabled: false, Delay: 5 * time.Second, Threshold: 2.0}
}

// DefaultIdleConfig returns the stock idle-duration policy.
func DefaultIdleConfig() DetectorConfig {
	return DetectorConfig{Enabled: false, Delay: 10 * time.Minute}
}

// #endregion detector-config

// #region snapshot
// Snapshot bundles all three detector configs as read at one instant.
type Snapshot struct {
	Proximity    DetectorConfig
	AmbientLight DetectorConfig
	Idle         DetectorConfig
}

// DefaultSnapshot returns the stock policy set.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Proximity:    DefaultProximityConfig(),
		AmbientLight: DefaultAmbientLightConfig(),
		Idle:         DefaultIdleConfig(),
	}
}

// For returns the config for one detector kind.
func (s Snapshot) For(kind episode.Kind) DetectorConfig {
	switch kind {
	case episode.KindProximity:
		return s.Proximity
	case episode.KindAmbientLight:
		return s.AmbientLight
	case episode.KindIdle:
		return s.Idle
	}
	return DetectorConfig{}
}

// #endregion snapshot

// #region store
// Store holds the live config snapshot. Readers get a consistent snapshot;
// writers swap the whole set atomically so a countdown never sees a half
// updated policy.
type Store struct {
	current atomic.Value // Snapshot
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(initial Snapshot) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Get returns the current snapshot.
func (s *Store) Get() Snapshot {
	return s.current.Load().(Snapshot)
}

// For returns the current config for one detector kind.
func (s *Store) For(kind episode.Kind) DetectorConfig {
	return s.Get().For(kind)
}

// Set replaces the whole snapshot.
func (s *Store) Set(snap Snapshot) {
	s.current.Store(snap)
}

// #endregion store

// #region env
// FromEnv builds a snapshot from environment variables, falling back to the
// defaults for anything unset or unparseable:
//
//	POCKETGUARD_PROXIMITY_ENABLED / _DELAY_SECONDS
//	POCKETGUARD_DARK_ENABLED / _DELAY_SECONDS / _LUX_THRESHOLD
//	POCKETGUARD_IDLE_ENABLED / _DELAY_SECONDS
func FromEnv() Snapshot {
	snap := DefaultSnapshot()

	snap.Proximity.Enabled = envBool("POCKETGUARD_PROXIMITY_ENABLED", snap.Proximity.Enabled)
	snap.Proximity.Delay = envSeconds("POCKETGUARD_PROXIMITY_DELAY_SECONDS", snap.Proximity.Delay)

	snap.AmbientLight.Enabled = envBool("POCKETGUARD_DARK_ENABLED", snap.AmbientLight.Enabled)
	snap.AmbientLight.Delay = envSeconds("POCKETGUARD_DARK_DELAY_SECONDS", snap.AmbientLight.Delay)
	snap.AmbientLight.Threshold = envFloat("POCKETGUARD_DARK_LUX_THRESHOLD", snap.AmbientLight.Threshold)

	snap.Idle.Enabled = envBool("POCKETGUARD_IDLE_ENABLED", snap.Idle.Enabled)
	snap.Idle.Delay = envSeconds("POCKETGUARD_IDLE_DELAY_SECONDS", snap.Idle.Delay)

	return snap
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// #endregion env

// #region validate
// Validate rejects configs that can never fire.
func (c DetectorConfig) Validate() error {
	if c.Enabled && c.Delay <= 0 {
		return fmt.Errorf("enabled detector needs a positive delay, got %s", c.Delay)
	}
	return nil
}

// #endregion validate
