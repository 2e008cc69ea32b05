package detector

// #region imports
import (
	"context"
	"log"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

// #endregion imports

// #region idle

// Idle fires when the display has been non-interactive for the configured
// duration. Unlike the edge-triggered variants it is a pure level check: the
// baseline is monotonic once fixed, so there is no arm phase and no separate
// confirmation step. The tick keeps running after the episode is handled and
// simply no-ops.
type Idle struct {
	state *episode.State
	probe Probe
	arb   Arbiter
	cfgs  ConfigSource
}

// NewIdle creates the idle-duration detector.
func NewIdle(state *episode.State, probe Probe, arb Arbiter, cfgs ConfigSource) *Idle {
	return &Idle{state: state, probe: probe, arb: arb, cfgs: cfgs}
}

// Kind returns the detector kind.
func (d *Idle) Kind() episode.Kind { return episode.KindIdle }

// Tick performs the once-per-second level check.
func (d *Idle) Tick(ctx context.Context, now time.Time) {
	cfg := d.cfgs.For(episode.KindIdle)
	if !cfg.Enabled || d.state.Handled() {
		return
	}
	interactive, err := d.probe.IsInteractive(ctx)
	if err != nil {
		log.Printf("[DET] idle: probe failed on tick: %v", err)
		return
	}
	if interactive {
		return
	}
	if now.Sub(d.state.IdleBaseline()) < cfg.Delay {
		return
	}
	d.arb.TryTrigger(ctx, episode.TriggerRequest{Kind: episode.KindIdle, Epoch: d.state.Epoch()})
}

// Cancel is a no-op: idle has no countdown to abandon.
func (d *Idle) Cancel() {}

// #endregion idle
