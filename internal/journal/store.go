package journal

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion imports

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS episodes (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	epoch       INTEGER NOT NULL,
	started_at  TEXT NOT NULL,
	ended_at    TEXT,
	outcome     TEXT,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE TABLE IF NOT EXISTS trigger_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	epoch         INTEGER NOT NULL,
	detector_kind TEXT NOT NULL,
	decision      TEXT NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE TABLE IF NOT EXISTS action_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	epoch       INTEGER NOT NULL,
	step        TEXT NOT NULL,
	ok          INTEGER NOT NULL,
	detail      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
`

// #endregion schema

// #region store-struct
// Store journals episodes, arbitration decisions, and action outcomes in
// SQLite. The live episode state itself is never persisted; the journal is
// an append-only record for inspection and replay.
type Store struct {
	db        *sql.DB
	sessionID string
}

// #endregion store-struct

// #region constructor
// NewStore opens the journal database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by the inspect tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SessionID returns the current monitoring session id ("" before StartSession).
func (s *Store) SessionID() string {
	return s.sessionID
}

// #endregion close

// #region session
// StartSession registers a new monitoring session and scopes all subsequent
// rows to it.
func (s *Store) StartSession(now time.Time) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, started_at) VALUES (?, ?)`,
		id, now.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	s.sessionID = id
	return id, nil
}

// #endregion session

// #region episodes
// RecordEpisodeStart opens an episode row for the given epoch.
func (s *Store) RecordEpisodeStart(epoch uint64, now time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO episodes (session_id, epoch, started_at) VALUES (?, ?, ?)`,
		s.sessionID, epoch, now.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record episode start: %w", err)
	}
	return nil
}

// RecordEpisodeEnd closes the open episode row for the given epoch.
func (s *Store) RecordEpisodeEnd(epoch uint64, outcome string, now time.Time) error {
	_, err := s.db.Exec(
		`UPDATE episodes SET ended_at = ?, outcome = ?
		 WHERE session_id = ? AND epoch = ? AND ended_at IS NULL`,
		now.UTC().Format(time.RFC3339Nano), outcome, s.sessionID, epoch,
	)
	if err != nil {
		return fmt.Errorf("record episode end: %w", err)
	}
	return nil
}

// #endregion episodes

// #region trigger-log
// RecordTrigger appends one arbitration decision.
func (s *Store) RecordTrigger(entry TriggerEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO trigger_log (session_id, epoch, detector_kind, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.sessionID, entry.Epoch, entry.Kind, entry.Decision,
		nullIfEmpty(entry.Reason), entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record trigger: %w", err)
	}
	return nil
}

// #endregion trigger-log

// #region action-log
// RecordAction appends one protocol or restore step outcome.
func (s *Store) RecordAction(entry ActionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	ok := 0
	if entry.OK {
		ok = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO action_log (session_id, epoch, step, ok, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.sessionID, entry.Epoch, entry.Step, ok,
		nullIfEmpty(entry.Detail), entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record action: %w", err)
	}
	return nil
}

// #endregion action-log

// #region list-episodes
// ListEpisodes returns the most recent episodes across all sessions.
func (s *Store) ListEpisodes(limit int) ([]EpisodeRow, error) {
	rows, err := s.db.Query(
		`SELECT session_id, epoch, started_at, ended_at, outcome
		 FROM episodes ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var result []EpisodeRow
	for rows.Next() {
		var row EpisodeRow
		var startedStr string
		var endedStr, outcome sql.NullString
		if err := rows.Scan(&row.SessionID, &row.Epoch, &startedStr, &endedStr, &outcome); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		row.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		if endedStr.Valid {
			row.EndedAt, _ = time.Parse(time.RFC3339Nano, endedStr.String)
		}
		if outcome.Valid {
			row.Outcome = outcome.String
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// #endregion list-episodes

// #region list-triggers
// ListTriggers returns the most recent arbitration decisions.
func (s *Store) ListTriggers(limit int) ([]TriggerEntry, error) {
	rows, err := s.db.Query(
		`SELECT epoch, detector_kind, decision, reason, created_at
		 FROM trigger_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list triggers: %w", err)
	}
	defer rows.Close()

	var result []TriggerEntry
	for rows.Next() {
		var e TriggerEntry
		var reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.Epoch, &e.Kind, &e.Decision, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan trigger: %w", err)
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		result = append(result, e)
	}
	return result, rows.Err()
}

// #endregion list-triggers

// #region list-actions
// ListActions returns the most recent action outcomes.
func (s *Store) ListActions(limit int) ([]ActionEntry, error) {
	rows, err := s.db.Query(
		`SELECT epoch, step, ok, detail, created_at
		 FROM action_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()

	var result []ActionEntry
	for rows.Next() {
		var e ActionEntry
		var ok int
		var detail sql.NullString
		var createdStr string
		if err := rows.Scan(&e.Epoch, &e.Step, &ok, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		e.OK = ok == 1
		if detail.Valid {
			e.Detail = detail.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		result = append(result, e)
	}
	return result, rows.Err()
}

// #endregion list-actions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
