package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_MERCHANT_USER_ID_KEY     ContextKey = "merchant_user_id"
)

const (
	ResourcePayments      = "payments"
	ResourceMerchants     = "merchants"
	ResourceSubscriptions = "subscriptions"
	ResourceWebhooks      = "webhooks"
	ResourceAudit         = "audit"
)

const (
	EntityTypeComplianceCheck  = "compliance_check"
	EntityTypeMerchant         = "merchant"
	EntityTypeMerchantDocument = "merchant_document"
	EntityTypeTransaction      = "transaction"
	EntityTypeSubscription     = "subscription"
)

const (
	AuditActionComplianceCheckPerformed = "compliance_check_performed"
	AuditActionCreated                  = "created"
	AuditActionUploaded                 = "uploaded"
	AuditActionActivated                = "activated"
)

const (
	SubscriptionPlanPremium = "premium"

	SubscriptionStatusPending = "pending"
	SubscriptionStatusActive  = "active"

	SubscriptionPeriodInDays = 30
)

const (
	MongoCollectionTransactions  = "transactions"
	MongoCollectionSubscriptions = "subscriptions"
	MongoCollectionMerchants     = "merchants"
	MongoCollectionAuditLogs     = "audit_logs"
)

const (
	IdempotencyKeyPrefix         = "idempotency:payment:"
	IdempotencyKeyTTLInMinute    = 60
	HeaderXIdempotencyKey        = "X-Idempotency-Key"
	MerchantDocumentObjectPrefix = "merchant-documents"
)
