package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zachweston123/artwalls-payments/internal/models"
	"github.com/zachweston123/artwalls-payments/internal/models/dto"
	"github.com/zachweston123/artwalls-payments/internal/settlement"
)

// OrderRepo defines the interface for order persistence operations.
type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order, id string) error
}

// TransferClient is the payout gateway collaborator. This core never talks
// to the gateway beyond creating transfers and recording the resulting ids.
type TransferClient interface {
	CreateTransfer(ctx context.Context, destination string, amount int64, currency string, sourceRef string) (string, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// FeeRates are the marketplace fee rates stamped onto new orders.
type FeeRates struct {
	PlatformFeeBps int
	VenueFeeBps    int
	BuyerFeeBps    int
}

// OrderService owns order state transitions. Every handler reads current
// state and conditionally transitions instead of overwriting: gateway
// events for the same order can arrive in any order and any of them can be
// redelivered, so state guards are what keep settlement at-most-once.
type OrderService struct {
	Repo      OrderRepo
	Transfers TransferClient
	Publisher Publisher
	Rates     FeeRates
}

func NewOrderService(repo OrderRepo, transfers TransferClient, publisher Publisher, rates FeeRates) *OrderService {
	return &OrderService{
		Repo:      repo,
		Transfers: transfers,
		Publisher: publisher,
		Rates:     rates,
	}
}

// CreateCheckout creates a PENDING order for an artwork sale. The buyer
// pays the list price plus the buyer-side markup; both sides of the fee
// math go through settlement.Split so the rounding policy lives in one
// place.
func (s *OrderService) CreateCheckout(ctx context.Context, checkout *dto.Checkout) (*models.Order, error) {
	checkout.Sanitize()
	order := checkout.ToEntity()

	markup := settlement.Split(order.GrossAmount, s.Rates.BuyerFeeBps, 0).PlatformFee
	order.GrossAmount += markup
	order.PlatformFeeBps = s.Rates.PlatformFeeBps
	order.VenueFeeBps = s.Rates.VenueFeeBps

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder loads one order.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, id)
}

// HandleCheckoutCompleted settles an order: compute the fee split, issue
// the artist and venue payout transfers, record their ids and mark the
// order paid.
//
// Self-idempotent: an already-paid order is skipped outright, and a role
// that already has a transfer id recorded is never re-issued. A redelivery
// after a partial failure therefore only retries the transfers that are
// still missing.
func (s *OrderService) HandleCheckoutCompleted(ctx context.Context, event models.GatewayEvent) error {
	var data models.CheckoutCompletedData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return fmt.Errorf("parsing checkout.completed payload: %w", err)
	}

	order, err := s.Repo.GetByID(ctx, data.OrderID)
	if err != nil {
		return fmt.Errorf("order %s not found: %w", data.OrderID, err)
	}

	if order.Status == models.StatusPaid {
		logrus.Infof("order %s already paid, skipping settlement for event %s", order.ID, event.ID)
		s.publishAudit(ctx, models.AuditAlreadyPaid, order.ID, event.ID, "")
		return nil
	}

	if data.GrossAmount > 0 && data.GrossAmount != order.GrossAmount {
		logrus.Warnf("event %s reports gross %d but order %s holds %d, settling on the order amount",
			event.ID, data.GrossAmount, order.ID, order.GrossAmount)
	}

	split := settlement.Split(order.GrossAmount, order.PlatformFeeBps, order.VenueFeeBps)
	order.ApplySplit(split)

	recorded := map[string]string{}
	if len(order.TransferRecord) > 0 {
		recorded = order.TransferRecord[0]
	}

	updates := []map[string]string{}
	var transferErrs []error

	if _, done := recorded[models.RoleArtist]; !done && split.ArtistPayout > 0 {
		transferID, err := s.Transfers.CreateTransfer(ctx, order.ArtistID, split.ArtistPayout, string(order.Currency), order.ID)
		if err != nil {
			transferErrs = append(transferErrs, fmt.Errorf("artist transfer: %w", err))
		} else {
			updates = append(updates, map[string]string{models.RoleArtist: transferID})
		}
	}

	if _, done := recorded[models.RoleVenue]; !done && split.VenuePayout > 0 {
		transferID, err := s.Transfers.CreateTransfer(ctx, order.VenueID, split.VenuePayout, string(order.Currency), order.ID)
		if err != nil {
			transferErrs = append(transferErrs, fmt.Errorf("venue transfer: %w", err))
		} else {
			updates = append(updates, map[string]string{models.RoleVenue: transferID})
		}
	}

	order.TransferRecord = settlement.MergeTransferRecords([]map[string]string(order.TransferRecord), updates)

	if len(transferErrs) > 0 {
		// Persist whatever transfers did go through before failing, so
		// the redelivery does not re-issue them.
		if err := s.Repo.Update(ctx, order, order.ID); err != nil {
			transferErrs = append(transferErrs, fmt.Errorf("recording partial transfers: %w", err))
		}
		return errors.Join(transferErrs...)
	}

	now := time.Now().UTC()
	order.Status = models.StatusPaid
	order.PaidAt = &now

	if err := s.Repo.Update(ctx, order, order.ID); err != nil {
		return fmt.Errorf("marking order %s paid: %w", order.ID, err)
	}

	s.publishAudit(ctx, models.AuditOrderPaid, order.ID, event.ID, "")
	return nil
}

// HandleTransferUpdated merges transfer ids reported by the gateway into
// the order record. The gateway retries the two payout destinations on
// independent schedules, so any single notification may carry zero, one or
// both ids; merging through the accumulator never erases a role recorded
// earlier. Order status is untouched.
func (s *OrderService) HandleTransferUpdated(ctx context.Context, event models.GatewayEvent) error {
	var data models.TransferUpdatedData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return fmt.Errorf("parsing transfer.updated payload: %w", err)
	}

	order, err := s.Repo.GetByID(ctx, data.OrderID)
	if err != nil {
		return fmt.Errorf("order %s not found: %w", data.OrderID, err)
	}

	merged := settlement.MergeTransferRecords([]map[string]string(order.TransferRecord), []map[string]string{data.Transfers})
	order.TransferRecord = merged

	if err := s.Repo.Update(ctx, order, order.ID); err != nil {
		return fmt.Errorf("recording transfers for order %s: %w", order.ID, err)
	}

	s.publishAudit(ctx, models.AuditTransfersMerged, order.ID, event.ID, "")
	return nil
}

// publishAudit is fire-and-forget: audit trail writes are best effort and
// must never fail the request that produced them. The swallow lives here,
// in exactly one place, instead of scattered empty error checks. When the
// publisher's retries are exhausted the event is parked on the DLQ topic
// for operator replay; losing that too only costs audit trail, never money.
func (s *OrderService) publishAudit(ctx context.Context, action, orderID, eventID, detail string) {
	if s.Publisher == nil {
		return
	}
	event := models.AuditEvent{
		Action:  action,
		OrderID: orderID,
		EventID: eventID,
		Detail:  detail,
		At:      time.Now().UTC(),
	}
	err := s.Publisher.Publish(ctx, models.PaymentsAuditTopic, event)
	if err == nil {
		return
	}
	logrus.Warnf("audit publish failed, parking on dlq: %v", err)

	value, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		logrus.Warnf("dlq marshal failed (ignored): %v", marshalErr)
		return
	}
	dlq := models.DLQMessage{
		OriginalTopic: models.PaymentsAuditTopic,
		Key:           eventID,
		Value:         string(value),
		Reason:        err.Error(),
		Timestamp:     time.Now().UTC(),
	}
	if dlqErr := s.Publisher.Publish(ctx, models.PaymentsDLQTopic, dlq); dlqErr != nil {
		logrus.Warnf("dlq publish failed (ignored): %v", dlqErr)
	}
}
