package audit

import (
	"context"
	"time"

	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuditLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditLogMongoRepository(db *mongo.Client, dbName string) *AuditLogMongoRepository {
	return &AuditLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAuditLogs),
	}
}

func (repo *AuditLogMongoRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) (*models.AuditLog, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	result, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = objectID.Hex()
	}
	return entry, nil
}
