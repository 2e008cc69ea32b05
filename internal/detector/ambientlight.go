package detector

// #region imports
import (
	"context"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

// #endregion imports

// #region ambient-light

// AmbientLight fires when the light sensor reports darkness (lux below the
// configured threshold) continuously for the configured delay. Same shape as
// Proximity, keyed on a different physical condition.
type AmbientLight struct {
	core *edgeCore
}

// NewAmbientLight creates the in-dark detector.
func NewAmbientLight(state *episode.State, probe Probe, arb Arbiter, cfgs ConfigSource) *AmbientLight {
	return &AmbientLight{core: newEdgeCore(episode.KindAmbientLight, state, probe, arb, cfgs)}
}

// Kind returns the detector kind.
func (d *AmbientLight) Kind() episode.Kind { return episode.KindAmbientLight }

// OnSample evaluates one illuminance reading against the live threshold.
func (d *AmbientLight) OnSample(ctx context.Context, lux float64) {
	threshold := d.core.cfgs.For(episode.KindAmbientLight).Threshold
	d.core.observe(ctx, lux < threshold)
}

// Tick advances the countdown by one second.
func (d *AmbientLight) Tick(ctx context.Context, _ time.Time) {
	d.core.tick(ctx)
}

// Cancel abandons any running countdown. Never invokes the arbiter.
func (d *AmbientLight) Cancel() {
	d.core.cancel()
}

// Counting reports whether a countdown is in flight.
func (d *AmbientLight) Counting() bool { return d.core.isCounting() }

// #endregion ambient-light
