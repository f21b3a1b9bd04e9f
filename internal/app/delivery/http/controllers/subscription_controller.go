package controllers

import (
	"net/http"
	"sync"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/exceptions"
	"railpay-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SubscriptionController struct {
	Log                 *zap.Logger
	SubscriptionUsecase contracts.SubscriptionUsecase
}

var (
	subscriptionControllerInstance *SubscriptionController
	onceSubscriptionController     sync.Once
)

func NewSubscriptionController(logger *zap.Logger, subscriptionUsecase contracts.SubscriptionUsecase) *SubscriptionController {
	onceSubscriptionController.Do(func() {
		subscriptionControllerInstance = &SubscriptionController{
			Log:                 logger,
			SubscriptionUsecase: subscriptionUsecase,
		}
	})
	return subscriptionControllerInstance
}

// DemoActivate handles POST /subscriptions/demo-activate.
func (ctrl *SubscriptionController) DemoActivate(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.DemoActivateRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.SubscriptionUsecase.DemoActivate(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "subscription_demo_activated", requestID,
		zap.String(constvars.LoggingPayerIDKey, request.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubscriptionActivatedSuccessMessage, response)
}
