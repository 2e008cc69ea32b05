package arbiter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
)

// #region fakes

type fakeSensors struct {
	mu               sync.Mutex
	unsubscribeCalls int
}

func (f *fakeSensors) UnsubscribeAll(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribeCalls++
}

func (f *fakeSensors) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unsubscribeCalls
}

type fakeProtocol struct {
	mu      sync.Mutex
	runs    int
	err     error
	sawExec bool // executing flag observed true during Run
	state   *episode.State
}

func (f *fakeProtocol) Run(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++
	if f.state != nil {
		f.sawExec = f.state.Executing()
	}
	return f.err
}

func (f *fakeProtocol) runCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs
}

type fakeSuppressor struct {
	mu      sync.Mutex
	history []bool
	err     error
}

func (f *fakeSuppressor) SetSuppressed(_ context.Context, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = append(f.history, on)
	return f.err
}

type memJournal struct {
	mu       sync.Mutex
	triggers []journal.TriggerEntry
	actions  []journal.ActionEntry
}

func (m *memJournal) RecordTrigger(e journal.TriggerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.triggers = append(m.triggers, e)
	return nil
}

func (m *memJournal) RecordAction(e journal.ActionEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, e)
	return nil
}

type fixture struct {
	state    *episode.State
	sensors  *fakeSensors
	protocol *fakeProtocol
	suppress *fakeSuppressor
	journal  *memJournal
	arb      *Arbiter
}

func newFixture() *fixture {
	st := episode.NewState(time.Unix(0, 0))
	f := &fixture{
		state:    st,
		sensors:  &fakeSensors{},
		protocol: &fakeProtocol{state: st},
		suppress: &fakeSuppressor{},
		journal:  &memJournal{},
	}
	f.arb = NewArbiter(st, f.sensors, f.protocol, f.suppress, f.journal)
	return f
}

// #endregion fakes

func TestTryTriggerAdmitsAndRunsProtocol(t *testing.T) {
	f := newFixture()

	d := f.arb.TryTrigger(context.Background(), episode.TriggerRequest{Kind: episode.KindProximity, Epoch: 0})

	if d.Action != episode.Admitted {
		t.Fatalf("expected admitted, got %s", d.Action)
	}
	if f.protocol.runCount() != 1 {
		t.Fatalf("expected 1 protocol run, got %d", f.protocol.runCount())
	}
	if !f.protocol.sawExec {
		t.Fatal("executing flag must be true while the protocol runs")
	}
	if f.state.Executing() {
		t.Fatal("executing flag must be cleared after the run")
	}
	if f.sensors.calls() != 1 {
		t.Fatalf("expected sensors deregistered once, got %d", f.sensors.calls())
	}
	if !f.state.Handled() {
		t.Fatal("expected handled=true")
	}
	wantSuppress := []bool{true, false}
	if len(f.suppress.history) != 2 || f.suppress.history[0] != wantSuppress[0] || f.suppress.history[1] != wantSuppress[1] {
		t.Fatalf("expected suppression window [true false], got %v", f.suppress.history)
	}
}

func TestTryTriggerRejectsStaleEpoch(t *testing.T) {
	f := newFixture()
	f.state.Reset(time.Unix(10, 0)) // epoch now 1

	d := f.arb.TryTrigger(context.Background(), episode.TriggerRequest{Kind: episode.KindIdle, Epoch: 0})

	if d.Action != episode.StaleEpoch {
		t.Fatalf("expected stale_epoch, got %s", d.Action)
	}
	if f.protocol.runCount() != 0 {
		t.Fatal("stale request must not run the protocol")
	}
	if f.state.Handled() {
		t.Fatal("stale request must not mark the new episode handled")
	}
}

func TestTryTriggerRejectsSecondDetector(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first := f.arb.TryTrigger(ctx, episode.TriggerRequest{Kind: episode.KindIdle, Epoch: 0})
	second := f.arb.TryTrigger(ctx, episode.TriggerRequest{Kind: episode.KindProximity, Epoch: 0})

	if first.Action != episode.Admitted {
		t.Fatalf("expected first admitted, got %s", first.Action)
	}
	if second.Action != episode.AlreadyHandled {
		t.Fatalf("expected second rejected, got %s", second.Action)
	}
	if f.protocol.runCount() != 1 {
		t.Fatalf("expected 1 protocol run, got %d", f.protocol.runCount())
	}
}

// Exclusivity under concurrent fire from all three detectors.
func TestTryTriggerConcurrentExclusivity(t *testing.T) {
	for round := 0; round < 30; round++ {
		f := newFixture()
		kinds := []episode.Kind{episode.KindProximity, episode.KindAmbientLight, episode.KindIdle}

		var wg sync.WaitGroup
		decisions := make([]Decision, len(kinds))
		start := make(chan struct{})
		for i, k := range kinds {
			wg.Add(1)
			go func(i int, k episode.Kind) {
				defer wg.Done()
				<-start
				decisions[i] = f.arb.TryTrigger(context.Background(), episode.TriggerRequest{Kind: k, Epoch: 0})
			}(i, k)
		}
		close(start)
		wg.Wait()

		admitted := 0
		for _, d := range decisions {
			if d.Action == episode.Admitted {
				admitted++
			}
		}
		if admitted != 1 {
			t.Fatalf("round %d: expected exactly 1 admission, got %d", round, admitted)
		}
		if f.protocol.runCount() != 1 {
			t.Fatalf("round %d: expected 1 protocol run, got %d", round, f.protocol.runCount())
		}
	}
}

// Spec scenario: disable fails → executing returns to false, handled stays
// true, no second attempt this episode.
func TestTryTriggerProtocolFailure(t *testing.T) {
	f := newFixture()
	f.protocol.err = errors.New("disable feature: settings locked")
	ctx := context.Background()

	d := f.arb.TryTrigger(ctx, episode.TriggerRequest{Kind: episode.KindProximity, Epoch: 0})

	if d.Action != episode.Admitted {
		t.Fatalf("admission stands even when the protocol fails, got %s", d.Action)
	}
	if f.state.Executing() {
		t.Fatal("executing must be cleared on the failure path")
	}
	if !f.state.Handled() {
		t.Fatal("handled must remain true after a failed protocol")
	}

	retry := f.arb.TryTrigger(ctx, episode.TriggerRequest{Kind: episode.KindIdle, Epoch: 0})
	if retry.Action != episode.AlreadyHandled {
		t.Fatalf("expected no retry this episode, got %s", retry.Action)
	}
	if f.protocol.runCount() != 1 {
		t.Fatalf("expected 1 protocol run total, got %d", f.protocol.runCount())
	}
}

func TestTryTriggerSuppressionClearedOnFailure(t *testing.T) {
	f := newFixture()
	f.protocol.err = errors.New("boom")

	f.arb.TryTrigger(context.Background(), episode.TriggerRequest{Kind: episode.KindIdle, Epoch: 0})

	last := f.suppress.history[len(f.suppress.history)-1]
	if last {
		t.Fatal("suppression must end false after a failed protocol")
	}
}

func TestTryTriggerJournalsDecisions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.arb.TryTrigger(ctx, episode.TriggerRequest{Kind: episode.KindIdle, Epoch: 0})
	f.arb.TryTrigger(ctx, episode.TriggerRequest{Kind: episode.KindProximity, Epoch: 0})

	if len(f.journal.triggers) != 2 {
		t.Fatalf("expected 2 trigger rows, got %d", len(f.journal.triggers))
	}
	if f.journal.triggers[0].Decision != "admitted" || f.journal.triggers[1].Decision != "already_handled" {
		t.Fatalf("unexpected decisions %+v", f.journal.triggers)
	}
	if len(f.journal.actions) != 1 || f.journal.actions[0].Step != "suspend" || !f.journal.actions[0].OK {
		t.Fatalf("unexpected action rows %+v", f.journal.actions)
	}
}

func TestTryTriggerNilJournal(t *testing.T) {
	st := episode.NewState(time.Unix(0, 0))
	arb := NewArbiter(st, &fakeSensors{}, &fakeProtocol{}, &fakeSuppressor{}, nil)

	d := arb.TryTrigger(context.Background(), episode.TriggerRequest{Kind: episode.KindIdle, Epoch: 0})
	if d.Action != episode.Admitted {
		t.Fatalf("expected admitted with nil journal, got %s", d.Action)
	}
}
