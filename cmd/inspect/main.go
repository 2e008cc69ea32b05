package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to pocket_guard.db")
	last := flag.Int("last", 20, "show N most recent rows")
	mode := flag.String("show", "episodes", "what to show: episodes | triggers | actions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/pocket_guard.db [--show episodes|triggers|actions] [--last N] [--json]")
		os.Exit(2)
	}

	store, err := journal.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch *mode {
	case "episodes":
		err = showEpisodes(store, *last, *jsonOut)
	case "triggers":
		err = showTriggers(store, *last, *jsonOut)
	case "actions":
		err = showActions(store, *last, *jsonOut)
	default:
		fmt.Fprintf(os.Stderr, "unknown --show mode %q\n", *mode)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region episodes

type episodeOut struct {
	SessionID string `json:"session_id"`
	Epoch     uint64 `json:"epoch"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
}

func showEpisodes(store *journal.Store, last int, jsonOut bool) error {
	rows, err := store.ListEpisodes(last)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no episodes found")
		return nil
	}

	out := make([]episodeOut, len(rows))
	for i, r := range rows {
		e := episodeOut{
			SessionID: r.SessionID,
			Epoch:     r.Epoch,
			StartedAt: formatTime(r.StartedAt),
			Outcome:   r.Outcome,
		}
		if !r.EndedAt.IsZero() {
			e.EndedAt = formatTime(r.EndedAt)
			e.Duration = r.EndedAt.Sub(r.StartedAt).Round(time.Second).String()
		} else {
			e.Outcome = "open"
		}
		out[i] = e
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("%-10s  %-6s  %-20s  %-9s  %s\n", "Session", "Epoch", "Started", "Duration", "Outcome")
	fmt.Printf("%-10s  %-6s  %-20s  %-9s  %s\n", "----------", "------", "--------------------", "---------", "-----------")
	for _, e := range out {
		dur := "—"
		if e.Duration != "" {
			dur = e.Duration
		}
		fmt.Printf("%-10s  %-6d  %-20s  %-9s  %s\n", shortID(e.SessionID), e.Epoch, e.StartedAt, dur, e.Outcome)
	}
	return nil
}

// #endregion episodes

// #region triggers

type triggerOut struct {
	Epoch     uint64 `json:"epoch"`
	Kind      string `json:"kind"`
	Decision  string `json:"decision"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
}

func showTriggers(store *journal.Store, last int, jsonOut bool) error {
	rows, err := store.ListTriggers(last)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no triggers found")
		return nil
	}

	out := make([]triggerOut, len(rows))
	for i, r := range rows {
		out[i] = triggerOut{
			Epoch:     r.Epoch,
			Kind:      r.Kind,
			Decision:  r.Decision,
			Reason:    r.Reason,
			CreatedAt: formatTime(r.CreatedAt),
		}
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("%-6s  %-14s  %-16s  %-20s  %s\n", "Epoch", "Kind", "Decision", "Created", "Reason")
	fmt.Printf("%-6s  %-14s  %-16s  %-20s  %s\n", "------", "--------------", "----------------", "--------------------", "-----------")
	for _, t := range out {
		fmt.Printf("%-6d  %-14s  %-16s  %-20s  %s\n", t.Epoch, t.Kind, t.Decision, t.CreatedAt, t.Reason)
	}
	return nil
}

// #endregion triggers

// #region actions

type actionOut struct {
	Epoch     uint64 `json:"epoch"`
	Step      string `json:"step"`
	OK        bool   `json:"ok"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

func showActions(store *journal.Store, last int, jsonOut bool) error {
	rows, err := store.ListActions(last)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no actions found")
		return nil
	}

	out := make([]actionOut, len(rows))
	for i, r := range rows {
		out[i] = actionOut{
			Epoch:     r.Epoch,
			Step:      r.Step,
			OK:        r.OK,
			Detail:    r.Detail,
			CreatedAt: formatTime(r.CreatedAt),
		}
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("%-6s  %-9s  %-5s  %-20s  %s\n", "Epoch", "Step", "OK", "Created", "Detail")
	fmt.Printf("%-6s  %-9s  %-5s  %-20s  %s\n", "------", "---------", "-----", "--------------------", "-----------")
	for _, a := range out {
		ok := "no"
		if a.OK {
			ok = "yes"
		}
		fmt.Printf("%-6d  %-9s  %-5s  %-20s  %s\n", a.Epoch, a.Step, ok, a.CreatedAt, a.Detail)
	}
	return nil
}

// #endregion actions

// #region output

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
