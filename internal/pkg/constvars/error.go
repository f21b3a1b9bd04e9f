package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"uuid":         "must be a valid UUID",
	"currency":     "must be a 3-letter ISO 4217 currency code",
	"payment_type": "must be one of card, crypto or other",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientComplianceRejected            = "payment rejected due to compliance check failure"
	ErrClientRailUnavailable               = "payment provider is currently unavailable, please try again later"
	ErrClientInvalidWebhookSignature       = "invalid signature"
	ErrClientMerchantNotFound              = "merchant not found"
	ErrClientRiskProfileNotFound           = "risk profile not found"
	ErrClientDuplicateIdempotencyKey       = "a payment with this idempotency key is already processed"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON   = "cannot parse JSON"
	ErrDevCannotMarshalJSON = "cannot marshal JSON"
	ErrDevValidationFailed  = "validation failed"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevMissingRequestID       = "request ID missing from context"

	// Auth messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"

	// Decision engine messages
	ErrDevComplianceRejected = "compliance gate rejected the payment"
	ErrDevRailAuthorize      = "card rail failed to authorize payment"
	ErrDevRailCreateCharge   = "crypto rail failed to create charge"

	// Webhook messages
	ErrDevWebhookSignatureInvalid = "webhook signature verification failed"
	ErrDevWebhookEnqueue          = "failed to enqueue webhook event"

	// MongoDB messages
	ErrDevMongoDBInsertDocument = "failed to insert document"
	ErrDevMongoDBFindDocument   = "failed to find document"
	ErrDevMongoDBUpdateDocument = "failed to update document"

	// Redis messages
	ErrDevRedisSetKey    = "failed to set redis key"
	ErrDevRedisGetKey    = "failed to get redis key"
	ErrDevRedisDeleteKey = "failed to delete redis key"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioCreateObject = "failed to create object in bucket %s"

	// Merchant messages
	ErrDevMerchantNotFound      = "merchant not found"
	ErrDevMerchantNotOwned      = "merchant does not belong to the requesting user"
	ErrDevRiskProfileNotFound   = "risk profile not found for merchant"
	ErrDevDuplicateTransaction  = "transaction with the same idempotency key already exists"
	ErrDevSubscriptionNotFound  = "subscription not found"
	ErrDevTransactionNotFound   = "transaction not found"
	ErrDevCannotParseMultipart  = "cannot parse multipart form"
	ErrDevDocumentFileMissing   = "document file missing from multipart form"
	ErrDevAuditLogInsertFailure = "failed to append audit log entry"
)
