package action

import (
	"context"
	"errors"
	"testing"
	"time"
)

// #region fakes

type fakeToggle struct {
	disableCalls int
	enableCalls  int
	disableErr   error
}

func (f *fakeToggle) Disable(context.Context) error {
	f.disableCalls++
	return f.disableErr
}

func (f *fakeToggle) Enable(context.Context) error {
	f.enableCalls++
	return nil
}

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) ForceRefresh(context.Context) error {
	f.calls++
	return f.err
}

func testProtocol(toggle *fakeToggle, refresh *fakeRefresher) (*Protocol, *int) {
	p := NewProtocol(toggle, refresh, time.Second)
	sleeps := 0
	p.sleep = func(context.Context, time.Duration) error {
		sleeps++
		return nil
	}
	return p, &sleeps
}

// #endregion fakes

func TestRunHappyPath(t *testing.T) {
	toggle := &fakeToggle{}
	refresh := &fakeRefresher{}
	p, sleeps := testProtocol(toggle, refresh)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if toggle.disableCalls != 1 {
		t.Fatalf("expected 1 disable, got %d", toggle.disableCalls)
	}
	if refresh.calls != 1 {
		t.Fatalf("expected 1 refresh, got %d", refresh.calls)
	}
	if *sleeps != 3 {
		t.Fatalf("expected 3 settle waits, got %d", *sleeps)
	}
	if toggle.enableCalls != 0 {
		t.Fatal("protocol must never re-enable the feature")
	}
}

// Spec scenario: disable fails → remaining steps aborted.
func TestRunDisableFailureAborts(t *testing.T) {
	toggle := &fakeToggle{disableErr: errors.New("settings write denied")}
	refresh := &fakeRefresher{}
	p, _ := testProtocol(toggle, refresh)

	err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error from failed disable")
	}
	if refresh.calls != 0 {
		t.Fatal("refresh must not run after failed disable")
	}
}

func TestRunRefreshFailureIsTolerated(t *testing.T) {
	toggle := &fakeToggle{}
	refresh := &fakeRefresher{err: errors.New("window manager busy")}
	p, sleeps := testProtocol(toggle, refresh)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("refresh failure must not fail the run: %v", err)
	}
	if *sleeps != 3 {
		t.Fatalf("expected the final settle to still run, got %d sleeps", *sleeps)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	toggle := &fakeToggle{}
	refresh := &fakeRefresher{}
	p := NewProtocol(toggle, refresh, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Run(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if toggle.disableCalls != 0 {
		t.Fatal("disable must not run after cancellation")
	}
}
