package journal

import (
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if _, err := s.StartSession(time.Now()); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return s
}

func TestEpisodeLifecycle(t *testing.T) {
	s := tempStore(t)
	t0 := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	if err := s.RecordEpisodeStart(0, t0); err != nil {
		t.Fatalf("RecordEpisodeStart: %v", err)
	}
	if err := s.RecordEpisodeEnd(0, "suspended", t0.Add(42*time.Second)); err != nil {
		t.Fatalf("RecordEpisodeEnd: %v", err)
	}

	episodes, err := s.ListEpisodes(10)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(episodes) != 1 {
		t.Fatalf("expected 1 episode, got %d", len(episodes))
	}
	ep := episodes[0]
	if ep.Epoch != 0 || ep.Outcome != "suspended" {
		t.Fatalf("unexpected episode row %+v", ep)
	}
	if ep.EndedAt.Sub(ep.StartedAt) != 42*time.Second {
		t.Fatalf("unexpected duration %s", ep.EndedAt.Sub(ep.StartedAt))
	}
}

func TestEpisodeEndOnlyClosesOpenRow(t *testing.T) {
	s := tempStore(t)
	t0 := time.Now()

	if err := s.RecordEpisodeStart(3, t0); err != nil {
		t.Fatalf("RecordEpisodeStart: %v", err)
	}
	if err := s.RecordEpisodeEnd(3, "untriggered", t0.Add(time.Second)); err != nil {
		t.Fatalf("first RecordEpisodeEnd: %v", err)
	}
	// A second close for the same epoch must not resurrect the row.
	if err := s.RecordEpisodeEnd(3, "suspended", t0.Add(2*time.Second)); err != nil {
		t.Fatalf("second RecordEpisodeEnd: %v", err)
	}

	episodes, err := s.ListEpisodes(10)
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if episodes[0].Outcome != "untriggered" {
		t.Fatalf("expected first close to win, got %s", episodes[0].Outcome)
	}
}

func TestTriggerLogRoundTrip(t *testing.T) {
	s := tempStore(t)

	entries := []TriggerEntry{
		{Epoch: 0, Kind: "idle", Decision: "admitted"},
		{Epoch: 0, Kind: "proximity", Decision: "already_handled", Reason: "idle won"},
		{Epoch: 0, Kind: "proximity", Decision: "stale_epoch"},
	}
	for _, e := range entries {
		if err := s.RecordTrigger(e); err != nil {
			t.Fatalf("RecordTrigger: %v", err)
		}
	}

	got, err := s.ListTriggers(10)
	if err != nil {
		t.Fatalf("ListTriggers: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	// ListTriggers returns newest first.
	if got[0].Decision != "stale_epoch" {
		t.Fatalf("expected newest first, got %s", got[0].Decision)
	}
	if got[1].Reason != "idle won" {
		t.Fatalf("expected reason preserved, got %q", got[1].Reason)
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt backfilled")
	}
}

func TestActionLogRoundTrip(t *testing.T) {
	s := tempStore(t)

	if err := s.RecordAction(ActionEntry{Epoch: 1, Step: "suspend", OK: true}); err != nil {
		t.Fatalf("RecordAction: %v", err)
	}
	if err := s.RecordAction(ActionEntry{Epoch: 1, Step: "restore", OK: false, Detail: "shell declined"}); err != nil {
		t.Fatalf("RecordAction: %v", err)
	}

	got, err := s.ListActions(10)
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].OK || got[0].Detail != "shell declined" {
		t.Fatalf("unexpected newest row %+v", got[0])
	}
	if !got[1].OK {
		t.Fatal("expected suspend row ok")
	}
}
