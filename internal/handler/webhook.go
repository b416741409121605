package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/jordanwl/covid-19-bot/internal/messaging"
	"github.com/jordanwl/covid-19-bot/internal/models"
	"github.com/jordanwl/covid-19-bot/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EventParser validates a webhook body against its signature and decodes the events.
type EventParser interface {
	ParseEvents(body []byte, signature string) ([]models.InboundEvent, error)
}

// EventDispatcher answers a batch of events.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []models.InboundEvent) []service.EventResult
}

// WebhookRecorder counts webhook requests by status.
type WebhookRecorder interface {
	ObserveWebhook(status string)
}

const (
	webhookAccepted         = "accepted"
	webhookSignatureInvalid = "signature_invalid"
	webhookMalformed        = "malformed"
)

// WebhookHandler handles LINE webhook callbacks
type WebhookHandler struct {
	parser     EventParser
	dispatcher EventDispatcher
	metrics    WebhookRecorder
}

// NewWebhookHandler creates a new webhook handler. metrics may be nil.
func NewWebhookHandler(parser EventParser, dispatcher EventDispatcher, metrics WebhookRecorder) *WebhookHandler {
	return &WebhookHandler{parser: parser, dispatcher: dispatcher, metrics: metrics}
}

// Callback handles POST /callback requests
//
//	@Summary		LINE webhook
//	@Description	Validates the X-Line-Signature header, then answers every event in the body with one reply.
//	@Tags			webhook
//	@Accept			json
//	@Produce		plain
//	@Param			X-Line-Signature	header		string	true	"HMAC-SHA256 of the body, base64"
//	@Success		200					{string}	string	"OK"
//	@Failure		400					{string}	string	"Bad Request"
//	@Router			/callback [post]
func (h *WebhookHandler) Callback(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	body, err := c.GetRawData()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read webhook body")
		h.observe(webhookMalformed)
		c.String(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	events, err := h.parser.ParseEvents(body, c.GetHeader(messaging.SignatureHeader))
	if err != nil {
		status := webhookMalformed
		if errors.Is(err, models.ErrSignatureInvalid) {
			status = webhookSignatureInvalid
		}
		logger.Warn().Err(err).Str("status", status).Msg("webhook rejected")
		h.observe(status)
		c.String(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	h.observe(webhookAccepted)
	results := h.dispatcher.Dispatch(c.Request.Context(), events)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Info().Int("events", len(events)).Int("failed", failed).Msg("webhook handled")

	c.String(http.StatusOK, http.StatusText(http.StatusOK))
}

func (h *WebhookHandler) observe(status string) {
	if h.metrics != nil {
		h.metrics.ObserveWebhook(status)
	}
}
