package detector

// #region imports
import (
	"context"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

// #endregion imports

// #region proximity

// Proximity fires when the proximity sensor reports "near" (object closer
// than the sensor's max range, i.e. the device is likely in a pocket or face
// down) continuously for the configured delay.
type Proximity struct {
	core *edgeCore
}

// NewProximity creates the in-pocket detector.
func NewProximity(state *episode.State, probe Probe, arb Arbiter, cfgs ConfigSource) *Proximity {
	return &Proximity{core: newEdgeCore(episode.KindProximity, state, probe, arb, cfgs)}
}

// Kind returns the detector kind.
func (d *Proximity) Kind() episode.Kind { return episode.KindProximity }

// OnSample evaluates one proximity reading. near means the reported distance
// is strictly inside the sensor's max range.
func (d *Proximity) OnSample(ctx context.Context, distance, maxRange float64) {
	d.core.observe(ctx, distance < maxRange)
}

// Tick advances the countdown by one second.
func (d *Proximity) Tick(ctx context.Context, _ time.Time) {
	d.core.tick(ctx)
}

// Cancel abandons any running countdown. Never invokes the arbiter.
func (d *Proximity) Cancel() {
	d.core.cancel()
}

// Counting reports whether a countdown is in flight.
func (d *Proximity) Counting() bool { return d.core.isCounting() }

// #endregion proximity
