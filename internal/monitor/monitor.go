package monitor

// #region imports
import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/action"
	"github.com/kbdware/pocket-guard/go-monitor/internal/arbiter"
	"github.com/kbdware/pocket-guard/go-monitor/internal/config"
	"github.com/kbdware/pocket-guard/go-monitor/internal/detector"
	"github.com/kbdware/pocket-guard/go-monitor/internal/deviceshell"
	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
	"github.com/kbdware/pocket-guard/go-monitor/internal/reconcile"
)

// #endregion imports

// #region shell-interface

// Shell is the slice of the device-shell client the session consumes.
type Shell interface {
	Subscribe(ctx context.Context, kind episode.Kind, handler func(deviceshell.Sample)) error
	Unsubscribe(kind episode.Kind)
	IsInteractive(ctx context.Context) (bool, error)
	IsLocked(ctx context.Context) (bool, error)
	Disable(ctx context.Context) error
	Enable(ctx context.Context) error
	ForceRefresh(ctx context.Context) error
	SetSuppressed(ctx context.Context, on bool) error
	SensorCaps(ctx context.Context) (deviceshell.Caps, error)
}

// #endregion shell-interface

// #region options

// Options tunes the session loops.
type Options struct {
	Interval time.Duration // reconciliation and detector tick cadence
	Settle   time.Duration // protocol settle delay
}

// DefaultOptions returns the production cadence.
func DefaultOptions() Options {
	return Options{Interval: time.Second, Settle: action.DefaultSettleDelay}
}

// #endregion options

// #region session

// Session owns one monitoring run: the shared episode state, the three
// detectors, the arbiter, and the reconciliation loop.
type Session struct {
	shell    Shell
	cfgs     *config.Store
	state    *episode.State
	interval time.Duration

	prox  *detector.Proximity
	light *detector.AmbientLight
	idle  *detector.Idle
	recon *reconcile.Reconciler
}

// NewSession wires a session against the given shell. caps are read once: a
// sensor the device lacks permanently disables its detector for the process
// lifetime. jnl may be nil (replayed or test sessions).
func NewSession(ctx context.Context, shell Shell, cfgs *config.Store, jnl *journal.Store, opts Options) (*Session, error) {
	caps, err := shell.SensorCaps(ctx)
	if err != nil {
		return nil, err
	}
	if !caps.HasProximity {
		log.Printf("[MON] no proximity sensor, in-pocket detection disabled")
	}
	if !caps.HasLight {
		log.Printf("[MON] no light sensor, in-dark detection disabled")
	}

	s := &Session{
		shell:    shell,
		cfgs:     cfgs,
		state:    episode.NewState(time.Now()),
		interval: opts.Interval,
	}

	var arbJournal arbiter.Journal
	var reconJournal reconcile.Journal
	if jnl != nil {
		arbJournal = jnl
		reconJournal = jnl
	}

	hub := &sensorHub{shell: shell, cfgs: cfgs, caps: caps}
	protocol := action.NewProtocol(shell, shell, opts.Settle)
	arb := arbiter.NewArbiter(s.state, hub, protocol, shell, arbJournal)
	sink := triggerSink{arb: arb}

	s.prox = detector.NewProximity(s.state, shell, sink, cfgs)
	s.light = detector.NewAmbientLight(s.state, shell, sink, cfgs)
	s.idle = detector.NewIdle(s.state, shell, sink, cfgs)
	hub.prox = s.prox
	hub.light = s.light

	s.recon = reconcile.NewReconciler(
		s.state, shell, hub, shell,
		[]reconcile.Canceler{s.prox, s.light},
		reconJournal, opts.Interval,
	)
	return s, nil
}

// State exposes the shared episode state (inspection and tests).
func (s *Session) State() *episode.State {
	return s.state
}

// Run drives the reconciliation and detector tick loops until ctx is
// cancelled.
func (s *Session) Run(ctx context.Context) error {
	log.Printf("[MON] session running, tick %s", s.interval)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.recon.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		s.tickDetectors(ctx)
	}()
	wg.Wait()
	s.shell.Unsubscribe(episode.KindProximity)
	s.shell.Unsubscribe(episode.KindAmbientLight)
	return ctx.Err()
}

func (s *Session) tickDetectors(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.prox.Tick(ctx, now)
			s.light.Tick(ctx, now)
			s.idle.Tick(ctx, now)
		}
	}
}

// #endregion session

// #region trigger-sink

// triggerSink adapts the arbiter to the void detector-side interface; the
// decision itself lands in the journal.
type triggerSink struct {
	arb *arbiter.Arbiter
}

func (t triggerSink) TryTrigger(ctx context.Context, req episode.TriggerRequest) {
	t.arb.TryTrigger(ctx, req)
}

// #endregion trigger-sink

// #region sensor-hub

// sensorHub owns the live sensor subscriptions and feeds samples into the
// edge-triggered detectors. Registration and teardown are idempotent, so the
// reconciler may call them every tick.
type sensorHub struct {
	shell Shell
	cfgs  *config.Store
	caps  deviceshell.Caps
	prox  *detector.Proximity
	light *detector.AmbientLight
}

// RegisterEnabled subscribes every currently enabled, present sensor.
func (h *sensorHub) RegisterEnabled(ctx context.Context) {
	snap := h.cfgs.Get()
	if h.caps.HasProximity && snap.Proximity.Enabled {
		err := h.shell.Subscribe(ctx, episode.KindProximity, func(s deviceshell.Sample) {
			h.prox.OnSample(ctx, s.ProximityDistance, s.ProximityMaxRange)
		})
		if err != nil {
			log.Printf("[MON] subscribe proximity: %v", err)
		}
	}
	if h.caps.HasLight && snap.AmbientLight.Enabled {
		err := h.shell.Subscribe(ctx, episode.KindAmbientLight, func(s deviceshell.Sample) {
			h.light.OnSample(ctx, s.Lux)
		})
		if err != nil {
			log.Printf("[MON] subscribe ambient light: %v", err)
		}
	}
}

// UnsubscribeAll tears down both sample streams.
func (h *sensorHub) UnsubscribeAll(_ context.Context) {
	h.shell.Unsubscribe(episode.KindProximity)
	h.shell.Unsubscribe(episode.KindAmbientLight)
}

// #endregion sensor-hub
