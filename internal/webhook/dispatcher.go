package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zachweston123/artwalls-payments/internal/models"
)

// EventLedger is the idempotency ledger: the persisted set of already
// processed event ids. Record must report a uniqueness conflict as
// ErrAlreadyRecorded, distinctly from other failures.
type EventLedger interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Record(ctx context.Context, eventID string) error
}

// Handler reacts to one gateway event type. Handlers must be
// self-idempotent at the state level (guard every mutation on current
// state): processing and the ledger insert are not one transaction, so a
// crash between them causes a legitimate redelivery that re-runs the
// handler.
type Handler func(ctx context.Context, event models.GatewayEvent) error

// AuditPublisher is the audit-stream collaborator. A nil publisher simply
// means no audit trail.
type AuditPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Receipt is the acknowledgement returned to the gateway sender.
type Receipt struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}

// Dispatcher guarantees each verified event's financial side effects
// happen at most once despite at-least-once delivery.
type Dispatcher struct {
	ledger   EventLedger
	audit    AuditPublisher
	handlers map[string]Handler
}

func NewDispatcher(ledger EventLedger, audit AuditPublisher) *Dispatcher {
	return &Dispatcher{
		ledger:   ledger,
		audit:    audit,
		handlers: make(map[string]Handler),
	}
}

// On registers the handler for an event type. Last registration wins.
func (d *Dispatcher) On(eventType string, handler Handler) {
	d.handlers[eventType] = handler
}

// Process runs the idempotency protocol: ledger lookup, type-specific
// handler, ledger insert. Any error it returns is retryable — the caller
// answers 5xx and the sender redelivers.
func (d *Dispatcher) Process(ctx context.Context, event models.GatewayEvent) (Receipt, error) {
	seen, err := d.ledger.Seen(ctx, event.ID)
	if err != nil {
		return Receipt{}, fmt.Errorf("idempotency lookup for event %s: %w", event.ID, err)
	}
	if seen {
		logrus.Infof("duplicate delivery of event %s, skipping", event.ID)
		d.publishDuplicateSkipped(ctx, event)
		return Receipt{Received: true, Duplicate: true}, nil
	}

	if handler, ok := d.handlers[event.Type]; ok {
		if err := handler(ctx, event); err != nil {
			return Receipt{}, fmt.Errorf("handling event %s (%s): %w", event.ID, event.Type, err)
		}
	} else {
		// Unknown types are acknowledged and tombstoned so redeliveries
		// short-circuit; the gateway sends more types than we settle on.
		logrus.Warnf("no handler for event type %s, acknowledging", event.Type)
	}

	if err := d.ledger.Record(ctx, event.ID); err != nil {
		if errors.Is(err, ErrAlreadyRecorded) {
			// A concurrent delivery recorded it first. The handler is
			// self-idempotent, so both deliveries converged on the same
			// state.
			return Receipt{Received: true}, nil
		}
		return Receipt{}, fmt.Errorf("recording event %s: %w", event.ID, err)
	}

	return Receipt{Received: true}, nil
}

// publishDuplicateSkipped is fire-and-forget: the audit trail is best
// effort and must never fail the acknowledgement of a duplicate.
func (d *Dispatcher) publishDuplicateSkipped(ctx context.Context, event models.GatewayEvent) {
	if d.audit == nil {
		return
	}
	msg := models.AuditEvent{
		Action:  models.AuditDuplicateSkipped,
		EventID: event.ID,
		At:      time.Now().UTC(),
	}
	if err := d.audit.Publish(ctx, models.PaymentsAuditTopic, msg); err != nil {
		logrus.Warnf("audit publish failed (ignored): %v", err)
	}
}
