package replay

// #region imports
import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/action"
	"github.com/kbdware/pocket-guard/go-monitor/internal/arbiter"
	"github.com/kbdware/pocket-guard/go-monitor/internal/config"
	"github.com/kbdware/pocket-guard/go-monitor/internal/detector"
	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
	"github.com/kbdware/pocket-guard/go-monitor/internal/reconcile"
)

// #endregion imports

// #region types

// Outcome is one entry in the replayed timeline.
type Outcome struct {
	AtSeconds int
	Event     string // "episode_start" | "episode_end" | "trigger" | "trigger_rejected" | "suspend" | "restore"
	Kind      string // detector kind for trigger events, empty otherwise
	Detail    string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Seconds          int
	Triggers         int
	RejectedTriggers int
	Suspends         int
	Restores         int
	FinalEpoch       uint64
	FinalHandled     bool
}

// #endregion types

// #region shell-sim

// shellSim is the in-memory stand-in for the device shell: scripted power
// state, always-successful feature and suppression calls.
type shellSim struct {
	interactive bool
	locked      bool
	featureOn   bool
	suppressed  bool
}

func newShellSim() *shellSim {
	return &shellSim{interactive: true, featureOn: true}
}

func (s *shellSim) IsInteractive(context.Context) (bool, error) { return s.interactive, nil }
func (s *shellSim) IsLocked(context.Context) (bool, error)      { return s.locked, nil }

func (s *shellSim) Disable(context.Context) error {
	s.featureOn = false
	return nil
}

func (s *shellSim) Enable(context.Context) error {
	s.featureOn = true
	return nil
}

func (s *shellSim) ForceRefresh(context.Context) error { return nil }

func (s *shellSim) SetSuppressed(_ context.Context, on bool) error {
	s.suppressed = on
	return nil
}

// sensorRegistry tracks which sensor kinds are registered, mirroring the
// idempotent register/teardown contract of the live client.
type sensorRegistry struct {
	cfgs       *config.Store
	registered map[episode.Kind]bool
}

func newSensorRegistry(cfgs *config.Store) *sensorRegistry {
	return &sensorRegistry{cfgs: cfgs, registered: make(map[episode.Kind]bool)}
}

func (r *sensorRegistry) RegisterEnabled(context.Context) {
	snap := r.cfgs.Get()
	if snap.Proximity.Enabled {
		r.registered[episode.KindProximity] = true
	}
	if snap.AmbientLight.Enabled {
		r.registered[episode.KindAmbientLight] = true
	}
}

func (r *sensorRegistry) UnsubscribeAll(context.Context) {
	r.registered = make(map[episode.Kind]bool)
}

func (r *sensorRegistry) has(kind episode.Kind) bool {
	return r.registered[kind]
}

// #endregion shell-sim

// #region recorder

// recorder turns journal writes into timeline outcomes stamped with the
// replay second.
type recorder struct {
	now      int
	outcomes []Outcome
}

func (r *recorder) RecordTrigger(entry journal.TriggerEntry) error {
	event := "trigger"
	if entry.Decision != string(episode.Admitted) {
		event = "trigger_rejected"
	}
	r.outcomes = append(r.outcomes, Outcome{AtSeconds: r.now, Event: event, Kind: entry.Kind, Detail: entry.Reason})
	return nil
}

func (r *recorder) RecordAction(entry journal.ActionEntry) error {
	r.outcomes = append(r.outcomes, Outcome{AtSeconds: r.now, Event: entry.Step, Detail: entry.Detail})
	return nil
}

func (r *recorder) RecordEpisodeStart(epoch uint64, _ time.Time) error {
	r.outcomes = append(r.outcomes, Outcome{AtSeconds: r.now, Event: "episode_start", Detail: fmt.Sprintf("epoch %d", epoch)})
	return nil
}

func (r *recorder) RecordEpisodeEnd(epoch uint64, outcome string, _ time.Time) error {
	r.outcomes = append(r.outcomes, Outcome{AtSeconds: r.now, Event: "episode_end", Detail: outcome})
	return nil
}

// #endregion recorder

// #region trigger-sink

type triggerSink struct {
	arb *arbiter.Arbiter
}

func (t triggerSink) TryTrigger(ctx context.Context, req episode.TriggerRequest) {
	t.arb.TryTrigger(ctx, req)
}

// #endregion trigger-sink

// #region run

// Run replays a fixture through the full pipeline (reconciler, detectors,
// arbiter, action protocol) one simulated second at a time, entirely
// in-memory. Events land at the start of their second, before that second's
// ticks.
func Run(fix *Fixture) ([]Outcome, Summary) {
	ctx := context.Background()
	base := time.Unix(0, 0)

	st := episode.NewState(base)
	cfgs := config.NewStore(fix.Config.ToSnapshot())
	sim := newShellSim()
	registry := newSensorRegistry(cfgs)
	rec := &recorder{}

	protocol := action.NewProtocol(sim, sim, 0)
	arb := arbiter.NewArbiter(st, registry, protocol, sim, rec)
	sink := triggerSink{arb: arb}

	prox := detector.NewProximity(st, sim, sink, cfgs)
	light := detector.NewAmbientLight(st, sim, sink, cfgs)
	idle := detector.NewIdle(st, sim, sink, cfgs)

	recon := reconcile.NewReconciler(
		st, sim, registry, sim,
		[]reconcile.Canceler{prox, light},
		rec, time.Second,
	)
	recon.SetSpawn(func(f func()) { f() })

	events := make([]FixtureEvent, len(fix.Events))
	copy(events, fix.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].AtSeconds < events[j].AtSeconds })

	next := 0
	for sec := 1; sec <= fix.DurationSeconds; sec++ {
		rec.now = sec
		for next < len(events) && events[next].AtSeconds == sec {
			applyEvent(ctx, events[next], sim, registry, cfgs, prox, light)
			next++
		}

		now := base.Add(time.Duration(sec) * time.Second)
		recon.Tick(ctx, now)
		prox.Tick(ctx, now)
		light.Tick(ctx, now)
		idle.Tick(ctx, now)
	}

	return rec.outcomes, summarize(rec.outcomes, fix.DurationSeconds, st)
}

func applyEvent(ctx context.Context, ev FixtureEvent, sim *shellSim, registry *sensorRegistry, cfgs *config.Store, prox *detector.Proximity, light *detector.AmbientLight) {
	switch ev.Kind {
	case "display":
		if ev.Interactive != nil {
			sim.interactive = *ev.Interactive
		}
		if ev.Locked != nil {
			sim.locked = *ev.Locked
		}
	case "proximity":
		// Samples only flow while the sensor is registered, as in production.
		if registry.has(episode.KindProximity) {
			prox.OnSample(ctx, ev.Distance, ev.MaxRange)
		}
	case "ambient_light":
		if registry.has(episode.KindAmbientLight) {
			light.OnSample(ctx, ev.Lux)
		}
	case "config":
		cfgs.Set(ev.Config.ToSnapshot())
	}
}

func summarize(outcomes []Outcome, seconds int, st *episode.State) Summary {
	s := Summary{Seconds: seconds, FinalEpoch: st.Epoch(), FinalHandled: st.Handled()}
	for _, o := range outcomes {
		switch o.Event {
		case "trigger":
			s.Triggers++
		case "trigger_rejected":
			s.RejectedTriggers++
		case "suspend":
			s.Suspends++
		case "restore":
			s.Restores++
		}
	}
	return s
}

// #endregion run

// #region verify

// Verify checks that the expected outcomes appear in the replayed timeline,
// in order, at the expected seconds. Extra recorded outcomes are allowed;
// fixtures assert the landmarks, not the full log.
func Verify(fix *Fixture, outcomes []Outcome) error {
	pos := 0
	for _, want := range fix.ExpectedOutcomes {
		found := false
		for ; pos < len(outcomes); pos++ {
			got := outcomes[pos]
			if got.AtSeconds == want.AtSeconds && got.Event == want.Event && (want.Kind == "" || got.Kind == want.Kind) {
				pos++
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("expected outcome not found: %s %s at second %d", want.Event, want.Kind, want.AtSeconds)
		}
	}
	return nil
}

// #endregion verify
