package arbiter

// #region imports
import (
	"context"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
)

// #endregion imports

// #region decision
// Decision is the outcome of one trigger request.
type Decision struct {
	Action episode.AdmitResult
	Reason string
}

// #endregion decision

// #region protocol-interface
// Protocol is the exclusive corrective action run on admission.
type Protocol interface {
	Run(ctx context.Context) error
}

// #endregion protocol-interface

// #region sensor-registry
// SensorRegistry tears down live sensor subscriptions. Deregistration is
// idempotent: unsubscribing an already-unregistered sensor is a no-op.
type SensorRegistry interface {
	UnsubscribeAll(ctx context.Context)
}

// #endregion sensor-registry

// #region suppressor
// Suppressor tells the external display/lock event observer to ignore events
// while the protocol perturbs the very signals it listens for.
type Suppressor interface {
	SetSuppressed(ctx context.Context, on bool) error
}

// #endregion suppressor

// #region journal-interface
// Journal records arbitration decisions and action outcomes. May be nil.
type Journal interface {
	RecordTrigger(entry journal.TriggerEntry) error
	RecordAction(entry journal.ActionEntry) error
}

// #endregion journal-interface
