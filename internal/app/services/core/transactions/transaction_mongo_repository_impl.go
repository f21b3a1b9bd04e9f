package transactions

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTransactions),
	}
}

func (repo *TransactionMongoRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	result, err := repo.Collection.InsertOne(ctx, transaction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrDuplicateIdempotencyKey(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		transaction.ID = objectID.Hex()
	}
	return transaction, nil
}

func (repo *TransactionMongoRepository) FindByProviderRef(ctx context.Context, providerRef string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := repo.Collection.FindOne(ctx, bson.M{"provider_ref": providerRef}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (repo *TransactionMongoRepository) UpdateStatusByProviderRef(ctx context.Context, providerRef, status string, raw interface{}) (*models.Transaction, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		},
	}
	if raw != nil {
		update["$set"].(bson.M)["raw"] = raw
	}

	var transaction models.Transaction
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"provider_ref": providerRef},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &transaction, nil
}
