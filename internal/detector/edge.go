package detector

// #region imports
import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

// #endregion imports

// #region edge-core

// edgeCore is the shared state machine behind the two edge-triggered
// variants. A false→true transition of the predicate arms a countdown of the
// configured delay; the countdown is re-checked once per second so it can
// observe the external invalidation conditions (predicate flipped back,
// display interactive, episode handled, epoch changed) at every step rather
// than only at expiry. Completing the countdown with the predicate still
// true issues exactly one trigger request for the epoch it was armed in.
//
// Samples for one detector arrive on a single evaluation goroutine; the
// mutex only guards against the concurrent ticker.
type edgeCore struct {
	kind  episode.Kind
	state *episode.State
	probe Probe
	arb   Arbiter
	cfgs  ConfigSource

	mu         sync.Mutex
	satisfied  bool   // last sample satisfied the predicate
	counting   bool   // countdown in flight
	armedEpoch uint64 // epoch the countdown was armed in
	remaining  int    // whole seconds left on the countdown
}

func newEdgeCore(kind episode.Kind, state *episode.State, probe Probe, arb Arbiter, cfgs ConfigSource) *edgeCore {
	return &edgeCore{kind: kind, state: state, probe: probe, arb: arb, cfgs: cfgs}
}

// #endregion edge-core

// #region observe

// observe feeds one predicate evaluation from a fresh sensor sample.
func (c *edgeCore) observe(ctx context.Context, satisfied bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasSatisfied := c.satisfied
	c.satisfied = satisfied

	if !satisfied {
		// Precondition gone: cancel any running countdown, no trigger.
		c.cancelLocked(false)
		return
	}
	if wasSatisfied || c.counting {
		return // level held, nothing new to arm
	}

	cfg := c.cfgs.For(c.kind)
	if !cfg.Enabled || c.state.Handled() {
		return // silent no-op per detector contract
	}
	if interactive, err := c.probe.IsInteractive(ctx); err != nil || interactive {
		if err != nil {
			log.Printf("[DET] %s: probe failed on sample, not arming: %v", c.kind, err)
		}
		return
	}

	c.counting = true
	c.armedEpoch = c.state.Epoch()
	c.remaining = int(cfg.Delay / time.Second)
	c.state.SetArmed(c.kind, true)
	if c.remaining <= 0 {
		// Zero-delay policy: fire on the next tick rather than inline so a
		// sample burst cannot bypass the per-second recheck.
		c.remaining = 1
	}
}

// #endregion observe

// #region tick

// tick advances a running countdown by one second, re-checking every
// invalidation condition first.
func (c *edgeCore) tick(ctx context.Context) {
	c.mu.Lock()

	if !c.counting {
		c.mu.Unlock()
		return
	}
	if c.armedEpoch != c.state.Epoch() || c.state.Handled() {
		c.cancelLocked(true)
		c.mu.Unlock()
		return
	}
	cfg := c.cfgs.For(c.kind)
	if !cfg.Enabled || !c.satisfied {
		c.cancelLocked(false)
		c.mu.Unlock()
		return
	}
	interactive, err := c.probe.IsInteractive(ctx)
	if err != nil {
		// Fault-isolated tick: keep the countdown, try again next second.
		log.Printf("[DET] %s: probe failed on tick: %v", c.kind, err)
		c.mu.Unlock()
		return
	}
	if interactive {
		c.cancelLocked(false)
		c.mu.Unlock()
		return
	}

	c.remaining--
	if c.remaining > 0 {
		c.mu.Unlock()
		return
	}

	// Countdown complete with the precondition still holding.
	req := episode.TriggerRequest{Kind: c.kind, Epoch: c.armedEpoch}
	c.counting = false
	c.state.SetArmed(c.kind, false)
	c.mu.Unlock()

	c.arb.TryTrigger(ctx, req)
}

// #endregion tick

// #region cancel

// cancel abandons the countdown and the held level. Never calls the arbiter.
func (c *edgeCore) cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked(true)
}

// cancelLocked clears the countdown; dropLevel also forgets the held level so
// the next satisfying sample counts as a fresh transition (used when the
// episode is over and the subscription is being torn down).
func (c *edgeCore) cancelLocked(dropLevel bool) {
	c.counting = false
	c.remaining = 0
	c.state.SetArmed(c.kind, false)
	if dropLevel {
		c.satisfied = false
	}
}

// #endregion cancel

// #region accessors

// isCounting reports whether a countdown is in flight (test hook).
func (c *edgeCore) isCounting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counting
}

// #endregion accessors
