package replay

import (
	"os"
	"path/filepath"
	"testing"
)

// #region fixture-tests

// TestFixture_PocketSession replays the canonical in-pocket trace and checks
// the outcome landmarks. This is the primary regression test — if countdown
// or reset semantics drift, this catches it.
func TestFixture_PocketSession(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "pocket_session.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	outcomes, summary := Run(f)
	if err := Verify(f, outcomes); err != nil {
		t.Fatalf("Verify: %v\noutcomes: %+v", err, outcomes)
	}

	if summary.Triggers != 1 || summary.Suspends != 1 || summary.Restores != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.FinalEpoch != 1 || summary.FinalHandled {
		t.Fatalf("final state not reset: %+v", summary)
	}
}

// TestFixture_IdleRace replays the race between an elapsed idle duration and
// a still-running proximity countdown: idle wins, the countdown is abandoned
// without a second action.
func TestFixture_IdleRace(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "idle_race.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	outcomes, summary := Run(f)
	if err := Verify(f, outcomes); err != nil {
		t.Fatalf("Verify: %v\noutcomes: %+v", err, outcomes)
	}

	if summary.Triggers != 1 {
		t.Fatalf("exactly one trigger must win, got %d", summary.Triggers)
	}
	if summary.Suspends != 1 {
		t.Fatalf("exactly one suspend per episode, got %d", summary.Suspends)
	}
	for _, o := range outcomes {
		if o.Event == "trigger" && o.Kind != "idle" {
			t.Fatalf("wrong winner: %+v", o)
		}
	}
}

// TestFixture_UntriggeredCancel replays a user re-engaging mid-countdown.
func TestFixture_UntriggeredCancel(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "untriggered_cancel.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	outcomes, summary := Run(f)
	if err := Verify(f, outcomes); err != nil {
		t.Fatalf("Verify: %v\noutcomes: %+v", err, outcomes)
	}

	if summary.Triggers != 0 || summary.Suspends != 0 || summary.Restores != 0 {
		t.Fatalf("untriggered episode must not act: %+v", summary)
	}
	if summary.FinalEpoch != 0 {
		t.Fatalf("untriggered episode must not advance the epoch, got %d", summary.FinalEpoch)
	}
}

// TestLoadFixture_NotFound verifies error on missing file.
func TestLoadFixture_NotFound(t *testing.T) {
	if _, err := LoadFixture("testdata/nonexistent.json"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

// TestLoadFixture_Malformed verifies error on invalid JSON.
func TestLoadFixture_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not valid json}"), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestFixtureValidate(t *testing.T) {
	f := &Fixture{DurationSeconds: 0}
	if err := f.Validate(); err == nil {
		t.Fatal("zero duration must be rejected")
	}

	f = &Fixture{
		DurationSeconds: 5,
		Events:          []FixtureEvent{{AtSeconds: 9, Kind: "display"}},
	}
	if err := f.Validate(); err == nil {
		t.Fatal("event outside the run must be rejected")
	}

	f = &Fixture{
		DurationSeconds: 5,
		Events:          []FixtureEvent{{AtSeconds: 2, Kind: "barometer"}},
	}
	if err := f.Validate(); err == nil {
		t.Fatal("unknown event kind must be rejected")
	}

	f = &Fixture{
		DurationSeconds: 5,
		Events:          []FixtureEvent{{AtSeconds: 2, Kind: "config"}},
	}
	if err := f.Validate(); err == nil {
		t.Fatal("config event without payload must be rejected")
	}
}

// #endregion fixture-tests
