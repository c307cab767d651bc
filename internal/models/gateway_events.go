package models

import "encoding/json"

// Gateway event types this core settles on.
const (
	EventCheckoutCompleted = "checkout.completed"
	EventTransferUpdated   = "transfer.updated"
)

// GatewayEvent is an asynchronous notification from the payment gateway,
// parsed from the raw webhook body after signature verification. Immutable
// once received; its ID is persisted forever as an idempotency tombstone.
type GatewayEvent struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// CheckoutCompletedData is the payload of a checkout.completed event.
type CheckoutCompletedData struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
	Currency    string `json:"currency"`
}

// TransferUpdatedData is the payload of a transfer.updated event, carrying
// whichever payout transfers the gateway completed on this attempt.
type TransferUpdatedData struct {
	OrderID   string            `json:"order_id"`
	Transfers map[string]string `json:"transfers"`
}
