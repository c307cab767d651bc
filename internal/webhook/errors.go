package webhook

import "errors"

// Error taxonomy for the notification path. Handlers map these onto HTTP
// status codes: signature and payload failures are terminal 400s the sender
// must not retry, everything else that could leave a financial side effect
// unaccounted for surfaces as a 500 so the sender redelivers.
var (
	ErrSignatureInvalid = errors.New("webhook: signature invalid")
	ErrPayloadInvalid   = errors.New("webhook: payload invalid")
	ErrConfigMissing    = errors.New("webhook: signing secret not configured")

	// ErrAlreadyRecorded is returned by EventLedger.Record when a
	// concurrent delivery won the insert race. The dispatcher treats it
	// as success.
	ErrAlreadyRecorded = errors.New("webhook: event already recorded")
)
