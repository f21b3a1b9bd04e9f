package subscriptions

import (
	"context"
	"time"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubscriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubscriptionMongoRepository(db *mongo.Client, dbName string) contracts.SubscriptionRepository {
	return &SubscriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubscriptions),
	}
}

// UpsertActiveSubscription replaces any existing subscription for the user
// with the given active record, keyed by user_id.
func (repo *SubscriptionMongoRepository) UpsertActiveSubscription(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error) {
	now := time.Now().UTC()
	subscription.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"user_id":            subscription.UserID,
			"plan":               subscription.Plan,
			"status":             subscription.Status,
			"current_period_end": subscription.CurrentPeriodEnd,
			"updated_at":         subscription.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	var updated models.Subscription
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": subscription.UserID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, nil
}

// ActivatePendingByUserID flips the user's pending subscription to active and
// starts a new billing period. Returns nil when no pending subscription exists.
func (repo *SubscriptionMongoRepository) ActivatePendingByUserID(ctx context.Context, userID string) (*models.Subscription, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"status":             constvars.SubscriptionStatusActive,
			"current_period_end": now.AddDate(0, 0, constvars.SubscriptionPeriodInDays),
			"updated_at":         now,
		},
	}

	var updated models.Subscription
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userID, "status": constvars.SubscriptionStatusPending},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, nil
}
