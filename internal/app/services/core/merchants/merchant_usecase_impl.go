package merchants

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
	"railpay-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type merchantUsecase struct {
	MerchantRepository contracts.MerchantRepository
	Storage            contracts.Storage
	AuditSink          contracts.AuditSink
	BucketName         string
	Log                *zap.Logger
}

func NewMerchantUsecase(
	merchantRepository contracts.MerchantRepository,
	storage contracts.Storage,
	auditSink contracts.AuditSink,
	bucketName string,
	logger *zap.Logger,
) contracts.MerchantUsecase {
	return &merchantUsecase{
		MerchantRepository: merchantRepository,
		Storage:            storage,
		AuditSink:          auditSink,
		BucketName:         bucketName,
		Log:                logger,
	}
}

func (uc *merchantUsecase) OnboardMerchant(ctx context.Context, userID string, request *requests.CreateMerchantRequest) (*responses.MerchantResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("merchantUsecase.OnboardMerchant called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayerIDKey, userID),
	)

	merchant, err := uc.MerchantRepository.CreateMerchant(ctx, &models.Merchant{
		UserID:       userID,
		Name:         request.Name,
		BusinessType: request.BusinessType,
		Country:      request.Country,
		Website:      request.Website,
	})
	if err != nil {
		uc.Log.Error("merchantUsecase.OnboardMerchant error creating merchant",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Every merchant starts with a baseline profile so the risk endpoint has
	// something to serve before any manual review happens.
	_, err = uc.MerchantRepository.CreateRiskProfile(ctx, &models.MerchantRiskProfile{
		MerchantID: merchant.ID,
		RiskLevel:  "low",
		RiskScore:  0,
		Notes:      "baseline profile created at onboarding",
	})
	if err != nil {
		uc.Log.Error("merchantUsecase.OnboardMerchant error creating baseline risk profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMerchantIDKey, merchant.ID),
			zap.Error(err),
		)
		return nil, err
	}

	_ = uc.AuditSink.Record(ctx, &models.AuditLog{
		EntityType: constvars.EntityTypeMerchant,
		EntityID:   merchant.ID,
		Action:     constvars.AuditActionCreated,
		Payload:    request,
		Actor:      userID,
	})

	return &responses.MerchantResponse{
		ID:           merchant.ID,
		Name:         merchant.Name,
		BusinessType: merchant.BusinessType,
		Country:      merchant.Country,
		Website:      merchant.Website,
		CreatedAt:    merchant.CreatedAt,
	}, nil
}

func (uc *merchantUsecase) UploadDocument(ctx context.Context, userID, merchantID string, request *requests.UploadMerchantDocumentRequest, file multipart.File, fileHeader *multipart.FileHeader) (*responses.MerchantDocumentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("merchantUsecase.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMerchantIDKey, merchantID),
	)

	if err := uc.checkOwnership(ctx, userID, merchantID); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%s/%s/%s%s",
		constvars.MerchantDocumentObjectPrefix,
		merchantID,
		uuid.New().String(),
		filepath.Ext(fileHeader.Filename),
	)

	storagePath, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.BucketName, objectName)
	if err != nil {
		uc.Log.Error("merchantUsecase.UploadDocument error uploading to object storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMerchantIDKey, merchantID),
			zap.Error(err),
		)
		return nil, err
	}

	document, err := uc.MerchantRepository.CreateMerchantDocument(ctx, &models.MerchantDocument{
		MerchantID:  merchantID,
		DocType:     request.DocType,
		StoragePath: storagePath,
	})
	if err != nil {
		uc.Log.Error("merchantUsecase.UploadDocument error persisting document record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMerchantIDKey, merchantID),
			zap.Error(err),
		)
		return nil, err
	}

	_ = uc.AuditSink.Record(ctx, &models.AuditLog{
		EntityType: constvars.EntityTypeMerchantDocument,
		EntityID:   document.ID,
		Action:     constvars.AuditActionUploaded,
		Payload:    request,
		Actor:      userID,
	})

	return &responses.MerchantDocumentResponse{
		ID:          document.ID,
		MerchantID:  document.MerchantID,
		DocType:     document.DocType,
		StoragePath: document.StoragePath,
		CreatedAt:   document.CreatedAt,
	}, nil
}

func (uc *merchantUsecase) GetRiskProfile(ctx context.Context, userID, merchantID string) (*responses.MerchantRiskProfileResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("merchantUsecase.GetRiskProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMerchantIDKey, merchantID),
	)

	if err := uc.checkOwnership(ctx, userID, merchantID); err != nil {
		return nil, err
	}

	profile, err := uc.MerchantRepository.FindRiskProfileByMerchantID(ctx, merchantID)
	if err != nil {
		uc.Log.Error("merchantUsecase.GetRiskProfile error fetching risk profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMerchantIDKey, merchantID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrRiskProfileNotFound(fmt.Errorf("no risk profile for merchant %s", merchantID))
	}

	return &responses.MerchantRiskProfileResponse{
		MerchantID: profile.MerchantID,
		RiskLevel:  profile.RiskLevel,
		RiskScore:  profile.RiskScore,
		Notes:      profile.Notes,
		UpdatedAt:  profile.UpdatedAt,
	}, nil
}

func (uc *merchantUsecase) checkOwnership(ctx context.Context, userID, merchantID string) error {
	merchant, err := uc.MerchantRepository.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return err
	}
	if merchant == nil {
		return exceptions.ErrMerchantNotFound(fmt.Errorf("merchant %s not found", merchantID))
	}
	if merchant.UserID != userID {
		return exceptions.ErrMerchantNotOwned(fmt.Errorf("merchant %s not owned by user %s", merchantID, userID))
	}
	return nil
}
