package merchants

import (
	"context"
	"time"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MerchantMongoRepository struct {
	Merchants    *mongo.Collection
	Documents    *mongo.Collection
	RiskProfiles *mongo.Collection
}

func NewMerchantMongoRepository(db *mongo.Client, dbName string) contracts.MerchantRepository {
	database := db.Database(dbName)
	return &MerchantMongoRepository{
		Merchants:    database.Collection(constvars.MongoCollectionMerchants),
		Documents:    database.Collection("merchant_documents"),
		RiskProfiles: database.Collection("merchant_risk_profiles"),
	}
}

func (repo *MerchantMongoRepository) CreateMerchant(ctx context.Context, merchant *models.Merchant) (*models.Merchant, error) {
	now := time.Now().UTC()
	merchant.CreatedAt = now
	merchant.UpdatedAt = now

	result, err := repo.Merchants.InsertOne(ctx, merchant)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		merchant.ID = objectID.Hex()
	}
	return merchant, nil
}

func (repo *MerchantMongoRepository) FindMerchantByID(ctx context.Context, merchantID string) (*models.Merchant, error) {
	objectID, err := primitive.ObjectIDFromHex(merchantID)
	if err != nil {
		return nil, nil
	}

	var merchant models.Merchant
	err = repo.Merchants.FindOne(ctx, bson.M{"_id": objectID}).Decode(&merchant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	merchant.ID = merchantID
	return &merchant, nil
}

func (repo *MerchantMongoRepository) CreateMerchantDocument(ctx context.Context, document *models.MerchantDocument) (*models.MerchantDocument, error) {
	document.CreatedAt = time.Now().UTC()

	result, err := repo.Documents.InsertOne(ctx, document)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		document.ID = objectID.Hex()
	}
	return document, nil
}

func (repo *MerchantMongoRepository) CreateRiskProfile(ctx context.Context, profile *models.MerchantRiskProfile) (*models.MerchantRiskProfile, error) {
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	result, err := repo.RiskProfiles.InsertOne(ctx, profile)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		profile.ID = objectID.Hex()
	}
	return profile, nil
}

func (repo *MerchantMongoRepository) FindRiskProfileByMerchantID(ctx context.Context, merchantID string) (*models.MerchantRiskProfile, error) {
	var profile models.MerchantRiskProfile
	err := repo.RiskProfiles.FindOne(ctx, bson.M{"merchant_id": merchantID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}
