package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/config"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a detector
// policy, a scripted second-by-second event trace, and the outcomes the trace
// is expected to produce.
type Fixture struct {
	Description      string           `json:"description"`
	DurationSeconds  int              `json:"duration_seconds"`
	Config           FixtureConfig    `json:"config"`
	Events           []FixtureEvent   `json:"events"`
	ExpectedOutcomes []FixtureOutcome `json:"expected_outcomes"`
}

// FixtureDetectorConfig mirrors config.DetectorConfig with JSON tags.
type FixtureDetectorConfig struct {
	Enabled      bool    `json:"enabled"`
	DelaySeconds int     `json:"delay_seconds"`
	LuxThreshold float64 `json:"lux_threshold,omitempty"`
}

// FixtureConfig bundles the three detector policies for a replay run.
type FixtureConfig struct {
	Proximity    FixtureDetectorConfig `json:"proximity"`
	AmbientLight FixtureDetectorConfig `json:"ambient_light"`
	Idle         FixtureDetectorConfig `json:"idle"`
}

// FixtureEvent is one scripted input, applied at the start of its second,
// before that second's reconciliation and detector ticks run.
//
// Kinds:
//
//	"display"       — Interactive/Locked set the simulated power state
//	"proximity"     — Distance/MaxRange delivered as a sensor sample
//	"ambient_light" — Lux delivered as a sensor sample
//	"config"        — Config swaps the live policy mid-run
type FixtureEvent struct {
	AtSeconds   int            `json:"at_seconds"`
	Kind        string         `json:"kind"`
	Interactive *bool          `json:"interactive,omitempty"`
	Locked      *bool          `json:"locked,omitempty"`
	Distance    float64        `json:"distance,omitempty"`
	MaxRange    float64        `json:"max_range,omitempty"`
	Lux         float64        `json:"lux,omitempty"`
	Config      *FixtureConfig `json:"config,omitempty"`
}

// FixtureOutcome is one expected entry in the replayed outcome timeline.
type FixtureOutcome struct {
	AtSeconds int    `json:"at_seconds"`
	Event     string `json:"event"` // "episode_start" | "episode_end" | "trigger" | "trigger_rejected" | "suspend" | "restore"
	Kind      string `json:"kind,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

// Validate rejects fixtures the harness cannot run.
func (f *Fixture) Validate() error {
	if f.DurationSeconds <= 0 {
		return fmt.Errorf("duration_seconds must be positive, got %d", f.DurationSeconds)
	}
	for i, ev := range f.Events {
		if ev.AtSeconds < 1 || ev.AtSeconds > f.DurationSeconds {
			return fmt.Errorf("event %d at_seconds %d outside run [1,%d]", i, ev.AtSeconds, f.DurationSeconds)
		}
		switch ev.Kind {
		case "display", "proximity", "ambient_light":
		case "config":
			if ev.Config == nil {
				return fmt.Errorf("event %d: config event without config payload", i)
			}
		default:
			return fmt.Errorf("event %d: unknown kind %q", i, ev.Kind)
		}
	}
	return nil
}

// ToDetectorConfig converts one fixture policy to the domain config.
func (c FixtureDetectorConfig) ToDetectorConfig() config.DetectorConfig {
	return config.DetectorConfig{
		Enabled:   c.Enabled,
		Delay:     time.Duration(c.DelaySeconds) * time.Second,
		Threshold: c.LuxThreshold,
	}
}

// ToSnapshot converts the fixture policy set to a domain snapshot.
func (c FixtureConfig) ToSnapshot() config.Snapshot {
	return config.Snapshot{
		Proximity:    c.Proximity.ToDetectorConfig(),
		AmbientLight: c.AmbientLight.ToDetectorConfig(),
		Idle:         c.Idle.ToDetectorConfig(),
	}
}

// #endregion fixture-loader
