package episode

// #region kind
// Kind identifies a detector variant.
type Kind string

const (
	KindProximity    Kind = "proximity"
	KindAmbientLight Kind = "ambient_light"
	KindIdle         Kind = "idle"
)

// #endregion kind

// #region trigger-request
// TriggerRequest asks the arbiter to run the corrective action. Epoch binds
// the request to the episode it was armed in; the arbiter rejects any request
// whose epoch no longer matches.
type TriggerRequest struct {
	Kind  Kind
	Epoch uint64
}

// #endregion trigger-request

// #region admit-result
// AdmitResult is the outcome of the handled check-and-set.
type AdmitResult string

const (
	Admitted       AdmitResult = "admitted"
	StaleEpoch     AdmitResult = "stale_epoch"
	AlreadyHandled AdmitResult = "already_handled"
)

// #endregion admit-result
