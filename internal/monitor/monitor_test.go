package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/config"
	"github.com/kbdware/pocket-guard/go-monitor/internal/deviceshell"
	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

// #region fake-shell

type fakeShell struct {
	mu          sync.Mutex
	interactive bool
	locked      bool
	caps        deviceshell.Caps

	handlers     map[episode.Kind]func(deviceshell.Sample)
	subscribeErr error

	disables  int
	enables   int
	refreshes int
	enableErr error
	suppress  []bool
}

func newFakeShell() *fakeShell {
	return &fakeShell{
		caps:     deviceshell.Caps{HasProximity: true, HasLight: true},
		handlers: make(map[episode.Kind]func(deviceshell.Sample)),
	}
}

func (f *fakeShell) Subscribe(_ context.Context, kind episode.Kind, handler func(deviceshell.Sample)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribeErr != nil {
		return f.subscribeErr
	}
	if _, ok := f.handlers[kind]; ok {
		return nil
	}
	f.handlers[kind] = handler
	return nil
}

func (f *fakeShell) Unsubscribe(kind episode.Kind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.handlers, kind)
}

func (f *fakeShell) deliver(s deviceshell.Sample) bool {
	f.mu.Lock()
	h, ok := f.handlers[s.Kind]
	f.mu.Unlock()
	if ok {
		h(s)
	}
	return ok
}

func (f *fakeShell) subscribed(kind episode.Kind) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.handlers[kind]
	return ok
}

func (f *fakeShell) setInteractive(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interactive = on
}

func (f *fakeShell) IsInteractive(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interactive, nil
}

func (f *fakeShell) IsLocked(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locked, nil
}

func (f *fakeShell) Disable(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disables++
	return nil
}

func (f *fakeShell) Enable(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enables++
	return f.enableErr
}

func (f *fakeShell) ForceRefresh(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return nil
}

func (f *fakeShell) SetSuppressed(_ context.Context, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suppress = append(f.suppress, on)
	return nil
}

func (f *fakeShell) SensorCaps(context.Context) (deviceshell.Caps, error) {
	return f.caps, nil
}

// #endregion fake-shell

// #region fixture

type fixture struct {
	shell   *fakeShell
	session *Session
	now     time.Time
}

func newFixture(t *testing.T, snap config.Snapshot) *fixture {
	t.Helper()
	shell := newFakeShell()
	session, err := NewSession(context.Background(), shell, config.NewStore(snap), nil, Options{Interval: time.Second, Settle: 0})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	// Run restores inline so assertions never race a goroutine.
	session.recon.SetSpawn(func(f func()) { f() })
	return &fixture{shell: shell, session: session, now: time.Unix(1000, 0)}
}

func (f *fixture) step(ctx context.Context) {
	f.now = f.now.Add(time.Second)
	f.session.recon.Tick(ctx, f.now)
	f.session.prox.Tick(ctx, f.now)
	f.session.light.Tick(ctx, f.now)
	f.session.idle.Tick(ctx, f.now)
}

func pocketSnapshot() config.Snapshot {
	snap := config.DefaultSnapshot()
	snap.Proximity = config.DetectorConfig{Enabled: true, Delay: 2 * time.Second}
	snap.AmbientLight = config.DetectorConfig{Enabled: true, Delay: 3 * time.Second, Threshold: 2.0}
	snap.Idle = config.DetectorConfig{Enabled: false, Delay: 10 * time.Minute}
	return snap
}

// #endregion fixture

// #region session-tests

func TestPocketEpisodeEndToEnd(t *testing.T) {
	f := newFixture(t, pocketSnapshot())
	ctx := context.Background()

	// Screen goes dark on a locked device.
	f.shell.setInteractive(false)
	f.shell.locked = true
	f.step(ctx)
	if !f.shell.subscribed(episode.KindProximity) {
		t.Fatal("proximity sensor not registered")
	}

	// Phone slides into a pocket.
	if !f.shell.deliver(deviceshell.Sample{Kind: episode.KindProximity, ProximityDistance: 0, ProximityMaxRange: 5, At: f.now}) {
		t.Fatal("no proximity handler")
	}
	f.step(ctx)
	f.step(ctx)

	st := f.session.State()
	if !st.Handled() {
		t.Fatal("episode not handled after countdown elapsed")
	}
	if f.shell.disables != 1 {
		t.Fatalf("disables = %d, want 1", f.shell.disables)
	}
	if f.shell.refreshes != 1 {
		t.Fatalf("refreshes = %d, want 1", f.shell.refreshes)
	}
	if len(f.shell.suppress) != 2 || !f.shell.suppress[0] || f.shell.suppress[1] {
		t.Fatalf("suppression window = %v, want [true false]", f.shell.suppress)
	}
	if f.shell.subscribed(episode.KindProximity) {
		t.Fatal("sensors must be torn down after handling")
	}

	// User wakes the screen: episode ends, feature comes back.
	f.shell.setInteractive(true)
	f.step(ctx)
	if st.Handled() {
		t.Fatal("handled flag must clear on display-on")
	}
	if st.Epoch() != 1 {
		t.Fatalf("epoch = %d, want 1", st.Epoch())
	}
	if f.shell.enables != 1 {
		t.Fatalf("enables = %d, want 1", f.shell.enables)
	}
}

func TestSecondDetectorRejectedWithinEpisode(t *testing.T) {
	f := newFixture(t, pocketSnapshot())
	ctx := context.Background()

	f.shell.setInteractive(false)
	f.shell.locked = true
	f.step(ctx)

	f.shell.deliver(deviceshell.Sample{Kind: episode.KindProximity, ProximityDistance: 0, ProximityMaxRange: 5, At: f.now})
	f.step(ctx)
	f.step(ctx)
	if f.shell.disables != 1 {
		t.Fatalf("disables = %d, want 1", f.shell.disables)
	}

	// Dark sample after the win: sensors are gone, and even a direct tick
	// with the handled flag set must not act again.
	f.session.light.OnSample(ctx, 0.5)
	f.step(ctx)
	if f.shell.disables != 1 {
		t.Fatalf("second action fired, disables = %d", f.shell.disables)
	}
}

func TestUnlockedDeviceNeverRegistersSensors(t *testing.T) {
	f := newFixture(t, pocketSnapshot())
	ctx := context.Background()

	f.shell.setInteractive(false)
	f.shell.locked = false
	f.step(ctx)
	f.step(ctx)
	if f.shell.subscribed(episode.KindProximity) || f.shell.subscribed(episode.KindAmbientLight) {
		t.Fatal("unlocked dark display must keep sensors unregistered")
	}
}

func TestMissingSensorCapDisablesDetector(t *testing.T) {
	shell := newFakeShell()
	shell.caps = deviceshell.Caps{HasProximity: false, HasLight: true}
	session, err := NewSession(context.Background(), shell, config.NewStore(pocketSnapshot()), nil, Options{Interval: time.Second, Settle: 0})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	ctx := context.Background()

	shell.setInteractive(false)
	shell.locked = true
	session.recon.Tick(ctx, time.Unix(1000, 0))
	if shell.subscribed(episode.KindProximity) {
		t.Fatal("absent proximity sensor must not be subscribed")
	}
	if !shell.subscribed(episode.KindAmbientLight) {
		t.Fatal("present light sensor should be subscribed")
	}
}

func TestDisabledDetectorNotRegistered(t *testing.T) {
	snap := pocketSnapshot()
	snap.AmbientLight.Enabled = false
	f := newFixture(t, snap)
	ctx := context.Background()

	f.shell.setInteractive(false)
	f.shell.locked = true
	f.step(ctx)
	if f.shell.subscribed(episode.KindAmbientLight) {
		t.Fatal("disabled detector must not be subscribed")
	}
	if !f.shell.subscribed(episode.KindProximity) {
		t.Fatal("enabled detector should be subscribed")
	}
}

func TestSensorCapsErrorFailsConstruction(t *testing.T) {
	shell := newFakeShell()
	boom := errors.New("shell down")
	failing := &capsFailShell{fakeShell: shell, err: boom}
	_, err := NewSession(context.Background(), failing, config.NewStore(config.DefaultSnapshot()), nil, DefaultOptions())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

type capsFailShell struct {
	*fakeShell
	err error
}

func (c *capsFailShell) SensorCaps(context.Context) (deviceshell.Caps, error) {
	return deviceshell.Caps{}, c.err
}

// #endregion session-tests
