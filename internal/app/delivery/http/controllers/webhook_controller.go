package controllers

import (
	"errors"
	"io"
	"net/http"
	"sync"

	"railpay-service/internal/app/config"
	"railpay-service/internal/app/services/shared/webhookqueue"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/exceptions"
	"railpay-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// WebhookController verifies provider callback signatures and enqueues the
// verified payloads for asynchronous processing. Signature verification
// happens here, synchronously, so only authentic events ever reach the queue.
type WebhookController struct {
	Log            *zap.Logger
	Queue          *webhookqueue.Service
	InternalConfig *config.InternalConfig
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, queue *webhookqueue.Service, internalConfig *config.InternalConfig) *WebhookController {
	onceWebhookController.Do(func() {
		webhookControllerInstance = &WebhookController{
			Log:            logger,
			Queue:          queue,
			InternalConfig: internalConfig,
		}
	})
	return webhookControllerInstance
}

// HandlePrimerWebhook processes POST /webhooks/primer.
func (ctrl *WebhookController) HandlePrimerWebhook(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r,
		constvars.ProviderPrimer,
		r.Header.Get(constvars.HeaderPrimerSignature),
		ctrl.InternalConfig.Rails.PrimerWebhookSecret,
		utils.VerifyPrimerWebhookSignature,
	)
}

// HandleCoinbaseWebhook processes POST /webhooks/coinbase.
func (ctrl *WebhookController) HandleCoinbaseWebhook(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r,
		constvars.ProviderCoinbase,
		r.Header.Get(constvars.HeaderCoinbaseSignature),
		ctrl.InternalConfig.Rails.CoinbaseWebhookSecret,
		utils.VerifyCoinbaseWebhookSignature,
	)
}

func (ctrl *WebhookController) handle(
	w http.ResponseWriter,
	r *http.Request,
	provider constvars.PaymentProvider,
	signature, secret string,
	verify func(payload []byte, signature, secret string) bool,
) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	defer r.Body.Close()

	if signature == "" || !verify(payload, signature, secret) {
		utils.LogSecurityEvent(ctrl.Log, "webhook_signature_rejected", requestID, "warn",
			zap.String(constvars.LoggingProviderKey, string(provider)),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrWebhookSignatureInvalid(
			errors.New("missing or mismatched signature"),
		))
		return
	}

	// Reject bodies that are not JSON before they can poison the queue.
	var probe map[string]interface{}
	if err := json.Unmarshal(payload, &probe); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	message := &webhookqueue.WebhookQueueMessage{
		ID:       utils.GenerateRequestID(),
		Provider: provider,
		Body:     payload,
	}
	if err := ctrl.Queue.Enqueue(r.Context(), message); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrWebhookEnqueue(err))
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "webhook_accepted", requestID, "info",
		zap.String(constvars.LoggingProviderKey, string(provider)),
		zap.String("message_id", message.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.WebhookAcceptedSuccessMessage, nil)
}
