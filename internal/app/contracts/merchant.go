package contracts

import (
	"context"
	"mime/multipart"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/dto/requests"
	"railpay-service/internal/pkg/dto/responses"
)

type MerchantRepository interface {
	CreateMerchant(ctx context.Context, merchant *models.Merchant) (*models.Merchant, error)
	FindMerchantByID(ctx context.Context, merchantID string) (*models.Merchant, error)
	CreateMerchantDocument(ctx context.Context, document *models.MerchantDocument) (*models.MerchantDocument, error)
	CreateRiskProfile(ctx context.Context, profile *models.MerchantRiskProfile) (*models.MerchantRiskProfile, error)
	FindRiskProfileByMerchantID(ctx context.Context, merchantID string) (*models.MerchantRiskProfile, error)
}

type MerchantUsecase interface {
	OnboardMerchant(ctx context.Context, userID string, request *requests.CreateMerchantRequest) (*responses.MerchantResponse, error)
	UploadDocument(ctx context.Context, userID, merchantID string, request *requests.UploadMerchantDocumentRequest, file multipart.File, fileHeader *multipart.FileHeader) (*responses.MerchantDocumentResponse, error)
	GetRiskProfile(ctx context.Context, userID, merchantID string) (*responses.MerchantRiskProfileResponse, error)
}
