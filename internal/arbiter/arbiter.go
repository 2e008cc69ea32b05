package arbiter

// #region imports
import (
	"context"
	"log"

	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
	"github.com/kbdware/pocket-guard/go-monitor/internal/journal"
)

// #endregion imports

// #region arbiter-struct

// Arbiter admits at most one trigger request per episode epoch and drives the
// exclusive corrective action. Admission is a single atomic check-and-set on
// the episode's handled flag; losing detectors simply abandon their
// countdowns, there is no queue.
type Arbiter struct {
	state    *episode.State
	sensors  SensorRegistry
	protocol Protocol
	suppress Suppressor
	journal  Journal
}

// NewArbiter creates a fully wired arbiter. journal may be nil.
func NewArbiter(state *episode.State, sensors SensorRegistry, protocol Protocol, suppress Suppressor, journal Journal) *Arbiter {
	return &Arbiter{
		state:    state,
		sensors:  sensors,
		protocol: protocol,
		suppress: suppress,
		journal:  journal,
	}
}

// #endregion arbiter-struct

// #region try-trigger

// TryTrigger arbitrates one request. Stale-epoch and already-handled requests
// are silently discarded; exactly one concurrent caller per epoch proceeds to
// the protocol. Protocol failures are swallowed here: handled stays true for
// the rest of the episode, so a failed attempt is not retried until the next
// display-on/off cycle.
func (a *Arbiter) TryTrigger(ctx context.Context, req episode.TriggerRequest) Decision {
	result := a.state.TryHandle(req.Epoch)
	decision := Decision{Action: result}

	switch result {
	case episode.StaleEpoch:
		decision.Reason = "request epoch no longer current"
		a.recordTrigger(req, decision)
		return decision
	case episode.AlreadyHandled:
		decision.Reason = "another detector already won this episode"
		a.recordTrigger(req, decision)
		return decision
	}

	decision.Reason = "first trigger of the episode"
	a.recordTrigger(req, decision)
	log.Printf("[ARB] admitted %s trigger for epoch %d", req.Kind, req.Epoch)

	// No further samples are needed this episode.
	a.sensors.UnsubscribeAll(ctx)

	a.runProtocol(ctx, req)
	return decision
}

// #endregion try-trigger

// #region run-protocol

// runProtocol executes the suspend sequence inside the self-suppression
// window. The executing flag and the observer suppression are cleared on
// every exit path, including failure, so the reconciler can never deadlock
// behind a crashed protocol run.
func (a *Arbiter) runProtocol(ctx context.Context, req episode.TriggerRequest) {
	a.state.SetExecuting(true)
	if err := a.suppress.SetSuppressed(ctx, true); err != nil {
		log.Printf("[ARB] set suppression: %v", err)
	}
	defer func() {
		if err := a.suppress.SetSuppressed(ctx, false); err != nil {
			log.Printf("[ARB] clear suppression: %v", err)
		}
		a.state.SetExecuting(false)
	}()

	err := a.protocol.Run(ctx)
	entry := journal.ActionEntry{Epoch: req.Epoch, Step: "suspend", OK: err == nil}
	if err != nil {
		entry.Detail = err.Error()
		log.Printf("[ARB] protocol failed, no retry this episode: %v", err)
	} else {
		log.Printf("[ARB] feature suspended for epoch %d", req.Epoch)
	}
	a.recordAction(entry)
}

// #endregion run-protocol

// #region journal-helpers

func (a *Arbiter) recordTrigger(req episode.TriggerRequest, d Decision) {
	if a.journal == nil {
		return
	}
	err := a.journal.RecordTrigger(journal.TriggerEntry{
		Epoch:    req.Epoch,
		Kind:     string(req.Kind),
		Decision: string(d.Action),
		Reason:   d.Reason,
	})
	if err != nil {
		log.Printf("[ARB] journal trigger: %v", err)
	}
}

func (a *Arbiter) recordAction(entry journal.ActionEntry) {
	if a.journal == nil {
		return
	}
	if err := a.journal.RecordAction(entry); err != nil {
		log.Printf("[ARB] journal action: %v", err)
	}
}

// #endregion journal-helpers
