// Package webhook holds handlers for inbound provider callbacks.
package webhook

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	twilioclient "github.com/twilio/twilio-go/client"

	"leaseline.app/server/core/config"
	"leaseline.app/server/internal/service"
)

// emptyTwiML is the ack Twilio expects; replies go out through the REST
// API, never inline in the webhook response.
const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

type TwilioWebhookHandler struct {
	inbound   service.InboundMessageService
	cfg       config.TwilioConfig
	validator twilioclient.RequestValidator
}

func NewTwilioWebhookHandler(inbound service.InboundMessageService, cfg config.TwilioConfig) *TwilioWebhookHandler {
	return &TwilioWebhookHandler{
		inbound:   inbound,
		cfg:       cfg,
		validator: twilioclient.NewRequestValidator(cfg.AuthToken),
	}
}

// HandleSMS processes an inbound message callback. Twilio retries on
// non-2xx, so everything short of a persistence failure acks with 200;
// a 500 is a deliberate request for redelivery.
func (h *TwilioWebhookHandler) HandleSMS(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.validSignature(c) {
		slog.WarnContext(ctx, "rejected webhook with bad signature",
			"path", c.Request.URL.Path)
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
		return
	}

	params := service.InboundSMSParams{
		From:       c.PostForm("From"),
		To:         c.PostForm("To"),
		Body:       c.PostForm("Body"),
		MessageSID: c.PostForm("MessageSid"),
	}

	result, err := h.inbound.Handle(ctx, params)
	if err != nil {
		slog.ErrorContext(ctx, "failed to process inbound sms",
			"error", err,
			"message_sid", params.MessageSID)
		c.String(http.StatusInternalServerError, "Error")
		return
	}

	slog.InfoContext(ctx, "inbound sms processed",
		"kind", result.Kind,
		"outcome", result.ReplyOutcome,
		"message_sid", params.MessageSID)

	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, emptyTwiML)
}

func (h *TwilioWebhookHandler) validSignature(c *gin.Context) bool {
	if !h.cfg.ValidateSignature || h.cfg.AuthToken == "" {
		return true
	}

	signature := c.GetHeader("X-Twilio-Signature")
	if signature == "" {
		return false
	}

	// Twilio signs the URL it was configured with. Behind a proxy the
	// request URL differs, so reconstruct from the public base URL.
	url := h.cfg.PublicBaseURL + c.Request.URL.RequestURI()
	if h.cfg.PublicBaseURL == "" {
		scheme := "https"
		if c.Request.TLS == nil {
			scheme = "http"
		}
		url = scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
	}

	if err := c.Request.ParseForm(); err != nil {
		return false
	}
	params := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	return h.validator.Validate(url, params, signature)
}
