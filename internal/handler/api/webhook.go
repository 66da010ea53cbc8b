package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	reqdto "roomly/internal/handler/dto/request"
	"roomly/internal/handler/httperr"
	"roomly/internal/infra/payment"
	"roomly/internal/pkg/config"
	"roomly/internal/pkg/errs"
	"roomly/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the provider's hex HMAC-SHA256 over the raw
// request body.
const SignatureHeader = "X-Payment-Signature"

var errBadSignature = errs.New("webhook signature verification failed")

type WebhookHandler struct {
	cmds   commands.BookingCommands
	secret string
}

func NewWebhookHandler(cmds commands.BookingCommands, cfg config.PaymentConfig) *WebhookHandler {
	return &WebhookHandler{cmds: cmds, secret: cfg.WebhookSecret}
}

// @Summary Payment webhook
// @Description Receive payment events from the provider
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Payment-Signature header string true "HMAC-SHA256 of the raw body"
// @Param request body reqdto.PaymentWebhookEvent true "Provider event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	// The signature covers the exact bytes on the wire, so the body must
	// be captured before any JSON decoding.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read request body", nil)
		return
	}

	signature := c.GetHeader(SignatureHeader)
	if !payment.VerifySignature(body, signature, h.secret) {
		slog.Warn("rejected webhook with bad signature", "remote_addr", c.ClientIP())
		httperr.AbortWithError(c, http.StatusBadRequest, errBadSignature, "Invalid signature", nil)
		return
	}

	var event reqdto.PaymentWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event payload", nil)
		return
	}
	if err := event.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event payload", nil)
		return
	}

	switch event.EventType {
	case reqdto.WebhookCheckoutCompleted:
		if err := h.cmds.ConfirmPayment(c.Request.Context(), event.BookingID, event.ProviderTxnID); err != nil {
			switch {
			case errors.Is(err, commands.ErrBookingNotFound):
				httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			case errors.Is(err, commands.ErrBookingCancelled):
				// The provider already collected the money for a booking we
				// cancelled. Acknowledge so it stops retrying; the mismatch
				// is logged for manual follow-up.
				slog.Error("payment completed for cancelled booking",
					"booking_id", event.BookingID.String(), "provider_txn_id", event.ProviderTxnID)
				c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			default:
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			}
			return
		}
	default:
		// Unknown event types are acknowledged without action so the
		// provider can add types without breaking deliveries.
		slog.Debug("ignoring webhook event", "event_type", event.EventType)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
