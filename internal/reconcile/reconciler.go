package reconcile

// #region imports
import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
)

// #endregion imports

// #region interfaces

// Probe queries display and lock state point-in-time. No caching.
type Probe interface {
	IsInteractive(ctx context.Context) (bool, error)
	IsLocked(ctx context.Context) (bool, error)
}

// SensorRegistry registers and tears down sensor subscriptions. Both calls
// are idempotent.
type SensorRegistry interface {
	RegisterEnabled(ctx context.Context)
	UnsubscribeAll(ctx context.Context)
}

// FeatureRestorer re-enables the suspended feature.
type FeatureRestorer interface {
	Enable(ctx context.Context) error
}

// Canceler abandons a detector countdown without invoking the arbiter.
type Canceler interface {
	Cancel()
}

// Journal records episode boundaries and restore outcomes. May be nil.
type Journal interface {
	RecordEpisodeStart(epoch uint64, now time.Time) error
	RecordEpisodeEnd(epoch uint64, outcome string, now time.Time) error
	RecordAction(entry journal.ActionEntry) error
}

// #endregion interfaces

// #region reconciler-struct

// Reconciler is the sole authority for episode boundaries. Once per second it
// samples display-interactive state, detects the off→on transition (episode
// end: reset, epoch increment, implicit feature restore) and the on→off
// transition (episode start: sensor registration), and keeps detector
// countdowns honest in between. Detectors never decide that an episode has
// ended; they only consult the handled flag and epoch.
type Reconciler struct {
	state     *episode.State
	probe     Probe
	sensors   SensorRegistry
	restorer  FeatureRestorer
	detectors []Canceler
	journal   Journal
	interval  time.Duration

	// single tick goroutine state
	inEpisode bool
	prevKnown bool
	prevOn    bool

	// set by the async restore goroutine, consumed on the next transition
	restorePending atomic.Bool

	// spawn is injectable so tests can run the restore inline.
	spawn func(f func())
}

// NewReconciler creates the reconciliation loop. journal may be nil.
func NewReconciler(state *episode.State, probe Probe, sensors SensorRegistry, restorer FeatureRestorer, detectors []Canceler, jnl Journal, interval time.Duration) *Reconciler {
	return &Reconciler{
		state:     state,
		probe:     probe,
		sensors:   sensors,
		restorer:  restorer,
		detectors: detectors,
		journal:   jnl,
		interval:  interval,
		spawn:     func(f func()) { go f() },
	}
}

// #endregion reconciler-struct

// #region run

// Run ticks until ctx is cancelled. Each tick is independently fault
// isolated: probe or journal failures are logged and the next tick proceeds.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.Tick(ctx, now)
		}
	}
}

// #endregion run

// #region tick

// Tick performs one reconciliation pass at now.
func (r *Reconciler) Tick(ctx context.Context, now time.Time) {
	// Full-stop gate: stay blind to the display flicker the protocol causes.
	if r.state.Executing() {
		return
	}

	interactive, err := r.probe.IsInteractive(ctx)
	if err != nil {
		log.Printf("[RECON] interactive probe failed, skipping tick: %v", err)
		return
	}

	transition := !r.prevKnown || r.prevOn != interactive
	r.prevKnown = true
	r.prevOn = interactive

	if interactive {
		r.onInteractive(ctx, now, transition)
	} else {
		r.onNonInteractive(ctx, now)
	}
}

// #endregion tick

// #region interactive

func (r *Reconciler) onInteractive(ctx context.Context, now time.Time, transition bool) {
	r.state.TouchIdleBaseline(now)
	// No need to sense while lit.
	r.sensors.UnsubscribeAll(ctx)

	if r.state.Handled() {
		// Display-on after a suspension: end the episode and restore.
		endedEpoch := r.state.Epoch()
		r.cancelCountdowns()
		newEpoch := r.state.Reset(now)
		r.recordEpisodeEnd(endedEpoch, "suspended", now)
		log.Printf("[RECON] episode epoch %d ended suspended, new epoch %d", endedEpoch, newEpoch)
		r.inEpisode = false
		r.restoreAsync(ctx, endedEpoch)
		return
	}

	if r.state.AnyArmed() {
		// User re-engaged before any action fired.
		r.cancelCountdowns()
		log.Printf("[RECON] countdown cancelled, user re-engaged")
	}
	if r.inEpisode {
		r.recordEpisodeEnd(r.state.Epoch(), "untriggered", now)
		r.inEpisode = false
	}
	if transition && r.restorePending.Load() {
		// A previous restore failed; retry on this transition only.
		r.restoreAsync(ctx, r.state.Epoch())
	}
}

// #endregion interactive

// #region non-interactive

func (r *Reconciler) onNonInteractive(ctx context.Context, now time.Time) {
	if !r.inEpisode {
		r.inEpisode = true
		if r.journal != nil {
			if err := r.journal.RecordEpisodeStart(r.state.Epoch(), now); err != nil {
				log.Printf("[RECON] journal episode start: %v", err)
			}
		}
		log.Printf("[RECON] screen-off episode started, epoch %d", r.state.Epoch())
	}
	if r.state.Handled() {
		return
	}

	// Only a locked, dark device is an eligible episode; an unlocked dark
	// display (e.g. media playback end) keeps its always-on surface.
	locked, err := r.probe.IsLocked(ctx)
	if err != nil {
		log.Printf("[RECON] lock probe failed, skipping registration: %v", err)
		return
	}
	if !locked {
		return
	}
	// Idempotent: a no-op for already-registered sensors.
	r.sensors.RegisterEnabled(ctx)
}

// #endregion non-interactive

// #region restore

// restoreAsync re-enables the feature off the tick path. A failure marks the
// restore pending; it is retried on the next display-on transition, never in
// a tight loop.
func (r *Reconciler) restoreAsync(ctx context.Context, epoch uint64) {
	r.restorePending.Store(false)
	r.spawn(func() {
		err := r.restorer.Enable(ctx)
		entry := journal.ActionEntry{Epoch: epoch, Step: "restore", OK: err == nil}
		if err != nil {
			entry.Detail = err.Error()
			r.restorePending.Store(true)
			log.Printf("[RECON] feature restore failed, will retry next transition: %v", err)
		} else {
			log.Printf("[RECON] feature restored")
		}
		if r.journal != nil {
			if jerr := r.journal.RecordAction(entry); jerr != nil {
				log.Printf("[RECON] journal restore: %v", jerr)
			}
		}
	})
}

// RestorePending reports whether a failed restore is awaiting retry.
func (r *Reconciler) RestorePending() bool {
	return r.restorePending.Load()
}

// SetSpawn replaces the goroutine launcher used for restores. Deterministic
// harnesses pass an inline runner so ticks observe restore outcomes
// synchronously. Must be called before Run.
func (r *Reconciler) SetSpawn(spawn func(f func())) {
	r.spawn = spawn
}

// #endregion restore

// #region helpers

func (r *Reconciler) cancelCountdowns() {
	for _, d := range r.detectors {
		d.Cancel()
	}
}

func (r *Reconciler) recordEpisodeEnd(epoch uint64, outcome string, now time.Time) {
	if r.journal == nil {
		return
	}
	if err := r.journal.RecordEpisodeEnd(epoch, outcome, now); err != nil {
		log.Printf("[RECON] journal episode end: %v", err)
	}
}

// #endregion helpers
