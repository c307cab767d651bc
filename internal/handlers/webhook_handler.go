package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zachweston123/artwalls-payments/internal/models"
	"github.com/zachweston123/artwalls-payments/internal/webhook"
)

// SignatureHeader is where the gateway puts `t=<ts>,v1=<sig>[,v1=<sig>...]`.
const SignatureHeader = "Gateway-Signature"

type EventVerifier interface {
	Verify(rawBody []byte, header string) (*models.GatewayEvent, error)
}

type EventProcessor interface {
	Process(ctx context.Context, event models.GatewayEvent) (webhook.Receipt, error)
}

// WebhookHandler terminates the gateway notification endpoint. The sender
// only looks at status codes: 2xx acknowledges, 4xx is terminal, 5xx makes
// it redeliver.
type WebhookHandler struct {
	Verifier   EventVerifier
	Dispatcher EventProcessor
}

func NewWebhookHandler(verifier EventVerifier, dispatcher EventProcessor) *WebhookHandler {
	return &WebhookHandler{
		Verifier:   verifier,
		Dispatcher: dispatcher,
	}
}

// POST /webhooks/gateway
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	// The body must reach the verifier byte-for-byte: re-encoding parsed
	// JSON can change the byte layout and invalidate the signature.
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	event, err := h.Verifier.Verify(rawBody, c.GetHeader(SignatureHeader))
	if err != nil {
		logrus.Warnf("webhook rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	receipt, err := h.Dispatcher.Process(c.Request.Context(), *event)
	if err != nil {
		logrus.Errorf("webhook processing failed for event %s: %v", event.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "processing failed"})
		return
	}

	c.JSON(http.StatusOK, receipt)
}
