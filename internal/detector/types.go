package detector

// #region imports
import (
	"context"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/config"
	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

// #endregion imports

// #region arbiter-interface
// Arbiter abstracts trigger admission so detectors can be tested without the
// full protocol stack.
type Arbiter interface {
	TryTrigger(ctx context.Context, req episode.TriggerRequest)
}

// #endregion arbiter-interface

// #region probe-interface
// Probe is a point-in-time display state query. No caching.
type Probe interface {
	IsInteractive(ctx context.Context) (bool, error)
}

// #endregion probe-interface

// #region config-source
// ConfigSource yields the live policy for one detector kind. It is consulted
// on every evaluation so config changes apply mid-countdown.
type ConfigSource interface {
	For(kind episode.Kind) config.DetectorConfig
}

// #endregion config-source

// #region detector-interface
// Detector is the closed variant set: Proximity and AmbientLight are
// edge-triggered with a per-second rechecked countdown, Idle is a level
// check with a trivial arm phase.
type Detector interface {
	Kind() episode.Kind
	// Tick advances the detector by one evaluation step at now.
	Tick(ctx context.Context, now time.Time)
	// Cancel abandons any running countdown without invoking the arbiter.
	Cancel()
}

// #endregion detector-interface
