package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
	"github.com/kbdware/pocket-guard/go-monitor/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to pocket_guard.db (journal audit mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/pocket_guard.db")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	outcomes, summary := replay.Run(f)

	if f.Description != "" {
		fmt.Println(f.Description)
		fmt.Println()
	}
	fmt.Printf("%-8s| %-18s| %-14s| %s\n", "Second", "Event", "Kind", "Detail")
	fmt.Printf("%-8s+%-19s+%-15s+%s\n", "--------", "-------------------", "---------------", "----------")
	for _, o := range outcomes {
		fmt.Printf("%-8d| %-18s| %-14s| %s\n", o.AtSeconds, o.Event, o.Kind, o.Detail)
	}
	fmt.Printf("\nSummary: %d s, %d trigger(s), %d rejected, %d suspend(s), %d restore(s), final epoch %d\n",
		summary.Seconds, summary.Triggers, summary.RejectedTriggers,
		summary.Suspends, summary.Restores, summary.FinalEpoch)

	if err := replay.Verify(f, outcomes); err != nil {
		fmt.Fprintf(os.Stderr, "DIVERGED: %v\n", err)
		return 1
	}
	fmt.Println("all expected outcomes matched")
	return 0
}

// #endregion fixture-mode

// #region db-mode

// episodeAudit is one (session, epoch) pair as reconstructed from the journal.
type episodeAudit struct {
	sessionID string
	epoch     uint64
	outcome   string
	admitted  int
	suspends  int
	restores  int
}

// runDBMode audits a recorded journal against the per-episode invariants: at
// most one admitted trigger per epoch, a suspend step for every admitted
// trigger, and a restore step for every suspended episode.
func runDBMode(dbPath string) int {
	store, err := journal.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	audits, err := loadAudits(store.DB())
	if err != nil {
		fmt.Fprintf(os.Stderr, "load journal: %v\n", err)
		return 2
	}
	if len(audits) == 0 {
		fmt.Fprintln(os.Stderr, "no episodes found in journal")
		return 2
	}

	fmt.Printf("%-38s| %-6s| %-12s| %s\n", "Session", "Epoch", "Outcome", "Check")
	fmt.Printf("%-38s+%-7s+%-13s+%s\n", "--------------------------------------", "-------", "-------------", "------")

	violations := 0
	for _, a := range audits {
		check := auditCheck(a)
		if check != "OK" {
			violations++
		}
		fmt.Printf("%-38s| %-6d| %-12s| %s\n", a.sessionID, a.epoch, a.outcome, check)
	}

	fmt.Printf("\nSummary: %d episode(s), %d violation(s)\n", len(audits), violations)
	if violations > 0 {
		return 1
	}
	return 0
}

func auditCheck(a episodeAudit) string {
	switch {
	case a.admitted > 1:
		return fmt.Sprintf("VIOLATION: %d admitted triggers in one epoch", a.admitted)
	case a.admitted == 1 && a.suspends == 0:
		return "VIOLATION: admitted trigger without a suspend step"
	case a.admitted == 0 && a.suspends > 0:
		return "VIOLATION: suspend step without an admitted trigger"
	case a.outcome == "suspended" && a.restores == 0:
		return "VIOLATION: suspended episode never restored"
	}
	return "OK"
}

func loadAudits(db *sql.DB) ([]episodeAudit, error) {
	rows, err := db.Query(`
		SELECT e.session_id, e.epoch, COALESCE(e.outcome, ''),
		       (SELECT COUNT(*) FROM trigger_log t
		        WHERE t.session_id = e.session_id AND t.epoch = e.epoch AND t.decision = 'admitted'),
		       (SELECT COUNT(*) FROM action_log a
		        WHERE a.session_id = e.session_id AND a.epoch = e.epoch AND a.step = 'suspend' AND a.ok = 1),
		       (SELECT COUNT(*) FROM action_log a
		        WHERE a.session_id = e.session_id AND a.epoch = e.epoch AND a.step = 'restore' AND a.ok = 1)
		FROM episodes e ORDER BY e.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query episodes: %w", err)
	}
	defer rows.Close()

	var audits []episodeAudit
	for rows.Next() {
		var a episodeAudit
		if err := rows.Scan(&a.sessionID, &a.epoch, &a.outcome, &a.admitted, &a.suspends, &a.restores); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		audits = append(audits, a)
	}
	return audits, rows.Err()
}

// #endregion db-mode
