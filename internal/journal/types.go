package journal

import "time"

// #region trigger-entry
// TriggerEntry is one arbitration decision row.
type TriggerEntry struct {
	Epoch     uint64
	Kind      string
	Decision  string // "admitted" | "stale_epoch" | "already_handled"
	Reason    string
	CreatedAt time.Time
}

// #endregion trigger-entry

// #region action-entry
// ActionEntry is one protocol or restore step outcome row.
type ActionEntry struct {
	Epoch     uint64
	Step      string // "suspend" | "restore"
	OK        bool
	Detail    string
	CreatedAt time.Time
}

// #endregion action-entry

// #region episode-row
// EpisodeRow is one screen-off episode as reconstructed from the journal.
type EpisodeRow struct {
	SessionID string
	Epoch     uint64
	StartedAt time.Time
	EndedAt   time.Time // zero while the episode is open
	Outcome   string    // "suspended" | "untriggered" | "" while open
}

// #endregion episode-row
