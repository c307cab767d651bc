package models

import "time"

const (
	PaymentsAuditTopic = "payments.audit"
	PaymentsDLQTopic   = "payments.dlq"
)

// Audit actions published to payments.audit. Best effort only; a failed
// publish never fails the request that produced it.
const (
	AuditOrderPaid        = "order.paid"
	AuditDuplicateSkipped = "event.duplicate_skipped"
	AuditAlreadyPaid      = "order.already_paid_skipped"
	AuditTransfersMerged  = "order.transfers_merged"
)

type AuditEvent struct {
	Action  string    `json:"action"`
	OrderID string    `json:"order_id,omitempty"`
	EventID string    `json:"event_id,omitempty"`
	Detail  string    `json:"detail,omitempty"`
	At      time.Time `json:"at"`
}

// DLQMessage carries an audit event whose publish retries were exhausted,
// parked on payments.dlq for operator replay.
type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
}
