package controllers

import (
	"net/http"
	"sync"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/exceptions"
	"railpay-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MerchantController struct {
	Log             *zap.Logger
	MerchantUsecase contracts.MerchantUsecase
	AuditSink       contracts.AuditSink
}

var (
	merchantControllerInstance *MerchantController
	onceMerchantController     sync.Once
)

func NewMerchantController(logger *zap.Logger, merchantUsecase contracts.MerchantUsecase, auditSink contracts.AuditSink) *MerchantController {
	onceMerchantController.Do(func() {
		merchantControllerInstance = &MerchantController{
			Log:             logger,
			MerchantUsecase: merchantUsecase,
			AuditSink:       auditSink,
		}
	})
	return merchantControllerInstance
}

// CreateMerchant handles POST /merchants.
func (ctrl *MerchantController) CreateMerchant(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(constvars.CONTEXT_MERCHANT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.CreateMerchantRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.MerchantUsecase.OnboardMerchant(r.Context(), userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MerchantCreatedSuccessMessage, response)
}

// UploadDocument handles POST /merchants/{merchantID}/documents. The document
// arrives as multipart form data under the "document" field alongside a
// "doc_type" value.
func (ctrl *MerchantController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(constvars.CONTEXT_MERCHANT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	merchantID := chi.URLParam(r, "merchantID")

	// 10 MiB in-memory budget for document uploads.
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UploadMerchantDocumentRequest{
		DocType: r.FormValue("doc_type"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	file, fileHeader, err := r.FormFile("document")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDocumentFileMissing(err))
		return
	}
	defer file.Close()

	response, err := ctrl.MerchantUsecase.UploadDocument(r.Context(), userID, merchantID, request, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MerchantDocumentUploadedSuccess, response)
}

// GetRiskProfile handles GET /merchants/{merchantID}/risk.
func (ctrl *MerchantController) GetRiskProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(constvars.CONTEXT_MERCHANT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	merchantID := chi.URLParam(r, "merchantID")

	response, err := ctrl.MerchantUsecase.GetRiskProfile(r.Context(), userID, merchantID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MerchantRiskProfileFetchedSuccess, response)
}

// CreateAuditLog handles POST /audit: a custom audit trail entry for
// admin/demo use.
func (ctrl *MerchantController) CreateAuditLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(constvars.CONTEXT_MERCHANT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.CreateAuditLogRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	entry := &models.AuditLog{
		EntityType: request.EntityType,
		EntityID:   request.EntityID,
		Action:     request.Action,
		Payload:    request.Payload,
		Actor:      userID,
	}
	if err := ctrl.AuditSink.Record(r.Context(), entry); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AuditLogEntryCreatedSuccess, entry)
}
