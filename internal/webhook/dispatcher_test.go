package webhook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zachweston123/artwalls-payments/internal/models"
	"github.com/zachweston123/artwalls-payments/internal/webhook"
	"github.com/zachweston123/artwalls-payments/internal/webhook/mocks"
)

func TestProcess_FirstDeliveryRunsHandlerAndRecords(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	dispatcher := webhook.NewDispatcher(mockLedger, nil)

	ctx := context.Background()
	event := models.GatewayEvent{ID: "evt_1", Type: "checkout.completed"}

	handled := 0
	dispatcher.On("checkout.completed", func(ctx context.Context, e models.GatewayEvent) error {
		handled++
		assert.Equal(t, "evt_1", e.ID)
		return nil
	})

	mockLedger.EXPECT().Seen(ctx, "evt_1").Return(false, nil).Once()
	mockLedger.EXPECT().Record(ctx, "evt_1").Return(nil).Once()

	receipt, err := dispatcher.Process(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, webhook.Receipt{Received: true}, receipt)
	assert.Equal(t, 1, handled)
}

func TestProcess_DuplicateShortCircuits(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	dispatcher := webhook.NewDispatcher(mockLedger, nil)

	ctx := context.Background()
	handled := 0
	dispatcher.On("checkout.completed", func(ctx context.Context, e models.GatewayEvent) error {
		handled++
		return nil
	})

	mockLedger.EXPECT().Seen(ctx, "evt_2").Return(true, nil).Once()

	receipt, err := dispatcher.Process(ctx, models.GatewayEvent{ID: "evt_2", Type: "checkout.completed"})

	require.NoError(t, err)
	assert.Equal(t, webhook.Receipt{Received: true, Duplicate: true}, receipt)
	assert.Zero(t, handled)
	mockLedger.AssertNotCalled(t, "Record", ctx, "evt_2")
}

func TestProcess_DuplicatePublishesAuditEvent(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	mockAudit := mocks.NewMockAuditPublisher(t)
	dispatcher := webhook.NewDispatcher(mockLedger, mockAudit)

	ctx := context.Background()
	mockLedger.EXPECT().Seen(ctx, "evt_dup").Return(true, nil).Once()
	mockAudit.EXPECT().
		Publish(ctx, models.PaymentsAuditTopic, mock.MatchedBy(func(e models.AuditEvent) bool {
			return e.Action == models.AuditDuplicateSkipped && e.EventID == "evt_dup"
		})).
		Return(nil).
		Once()

	receipt, err := dispatcher.Process(ctx, models.GatewayEvent{ID: "evt_dup", Type: "checkout.completed"})

	require.NoError(t, err)
	assert.True(t, receipt.Duplicate)
}

func TestProcess_DuplicateAuditFailureStillAcknowledges(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	mockAudit := mocks.NewMockAuditPublisher(t)
	dispatcher := webhook.NewDispatcher(mockLedger, mockAudit)

	ctx := context.Background()
	mockLedger.EXPECT().Seen(ctx, "evt_dup2").Return(true, nil).Once()
	mockAudit.EXPECT().
		Publish(ctx, models.PaymentsAuditTopic, mock.AnythingOfType("models.AuditEvent")).
		Return(errors.New("broker down")).
		Once()

	receipt, err := dispatcher.Process(ctx, models.GatewayEvent{ID: "evt_dup2", Type: "checkout.completed"})

	require.NoError(t, err)
	assert.Equal(t, webhook.Receipt{Received: true, Duplicate: true}, receipt)
}

func TestProcess_HandlerErrorIsRetryableAndNotRecorded(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	dispatcher := webhook.NewDispatcher(mockLedger, nil)

	ctx := context.Background()
	handlerErr := errors.New("order update failed")
	dispatcher.On("checkout.completed", func(ctx context.Context, e models.GatewayEvent) error {
		return handlerErr
	})

	mockLedger.EXPECT().Seen(ctx, "evt_3").Return(false, nil).Once()

	_, err := dispatcher.Process(ctx, models.GatewayEvent{ID: "evt_3", Type: "checkout.completed"})

	assert.ErrorIs(t, err, handlerErr)
	mockLedger.AssertNotCalled(t, "Record", ctx, "evt_3")
}

func TestProcess_ConcurrentRecordConflictIsSuccess(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	dispatcher := webhook.NewDispatcher(mockLedger, nil)

	ctx := context.Background()
	dispatcher.On("checkout.completed", func(ctx context.Context, e models.GatewayEvent) error {
		return nil
	})

	mockLedger.EXPECT().Seen(ctx, "evt_4").Return(false, nil).Once()
	mockLedger.EXPECT().Record(ctx, "evt_4").Return(webhook.ErrAlreadyRecorded).Once()

	receipt, err := dispatcher.Process(ctx, models.GatewayEvent{ID: "evt_4", Type: "checkout.completed"})

	require.NoError(t, err)
	assert.Equal(t, webhook.Receipt{Received: true}, receipt)
}

func TestProcess_RecordFailureSurfacesForRedelivery(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	dispatcher := webhook.NewDispatcher(mockLedger, nil)

	ctx := context.Background()
	dispatcher.On("checkout.completed", func(ctx context.Context, e models.GatewayEvent) error {
		return nil
	})

	storeErr := errors.New("connection reset")
	mockLedger.EXPECT().Seen(ctx, "evt_5").Return(false, nil).Once()
	mockLedger.EXPECT().Record(ctx, "evt_5").Return(storeErr).Once()

	_, err := dispatcher.Process(ctx, models.GatewayEvent{ID: "evt_5", Type: "checkout.completed"})

	assert.ErrorIs(t, err, storeErr)
}

func TestProcess_LookupFailureSurfacesForRedelivery(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	dispatcher := webhook.NewDispatcher(mockLedger, nil)

	ctx := context.Background()
	storeErr := errors.New("timeout")
	mockLedger.EXPECT().Seen(ctx, "evt_6").Return(false, storeErr).Once()

	_, err := dispatcher.Process(ctx, models.GatewayEvent{ID: "evt_6", Type: "checkout.completed"})

	assert.ErrorIs(t, err, storeErr)
}

func TestProcess_UnknownTypeAcknowledgedAndRecorded(t *testing.T) {
	mockLedger := mocks.NewMockEventLedger(t)
	dispatcher := webhook.NewDispatcher(mockLedger, nil)

	ctx := context.Background()
	mockLedger.EXPECT().Seen(ctx, "evt_7").Return(false, nil).Once()
	mockLedger.EXPECT().Record(ctx, "evt_7").Return(nil).Once()

	receipt, err := dispatcher.Process(ctx, models.GatewayEvent{ID: "evt_7", Type: "payout.reconciled"})

	require.NoError(t, err)
	assert.Equal(t, webhook.Receipt{Received: true}, receipt)
}
