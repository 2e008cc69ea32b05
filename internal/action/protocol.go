package action

// #region imports
import (
	"context"
	"fmt"
	"log"
	"time"
)

// #endregion imports

// #region interfaces

// FeatureToggle flips the always-on display setting. An error means the
// platform declined or failed the change; there are no partial states.
type FeatureToggle interface {
	Disable(ctx context.Context) error
	Enable(ctx context.Context) error
}

// Refresher forces the live display to re-apply the current feature state.
type Refresher interface {
	ForceRefresh(ctx context.Context) error
}

// #endregion interfaces

// #region protocol

// Protocol is the fixed four-step suspend sequence: settle, disable, settle,
// refresh, settle. The feature's enabled setting is deliberately not restored
// here; restoration belongs to the reconciler on the next display-on
// transition, because the corrective intent is "suspended until the user
// re-engages", not "suspended for a fixed duration".
type Protocol struct {
	toggle  FeatureToggle
	refresh Refresher
	settle  time.Duration

	// sleep is injectable for tests; the default honors ctx cancellation.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultSettleDelay lets an in-flight display transition finish before the
// next command is issued.
const DefaultSettleDelay = time.Second

// NewProtocol creates the suspend protocol with the given settle delay.
func NewProtocol(toggle FeatureToggle, refresh Refresher, settle time.Duration) *Protocol {
	return &Protocol{
		toggle:  toggle,
		refresh: refresh,
		settle:  settle,
		sleep:   sleepCtx,
	}
}

// #endregion protocol

// #region run

// Run executes the suspend sequence. A failed disable aborts the remaining
// steps; a failed refresh is logged and tolerated since the feature is
// already off, which is the primary goal.
func (p *Protocol) Run(ctx context.Context) error {
	if err := p.sleep(ctx, p.settle); err != nil {
		return fmt.Errorf("settle before disable: %w", err)
	}
	if err := p.toggle.Disable(ctx); err != nil {
		return fmt.Errorf("disable feature: %w", err)
	}

	if err := p.sleep(ctx, p.settle); err != nil {
		return fmt.Errorf("settle before refresh: %w", err)
	}
	if err := p.refresh.ForceRefresh(ctx); err != nil {
		log.Printf("[ACT] refresh failed (feature already disabled, continuing): %v", err)
	} else {
		log.Printf("[ACT] refresh applied")
	}

	// Final settle so the next reconciliation tick does not race the
	// display flicker the refresh just caused.
	if err := p.sleep(ctx, p.settle); err != nil {
		return fmt.Errorf("settle after refresh: %w", err)
	}
	return nil
}

// #endregion run

// #region sleep

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// #endregion sleep
