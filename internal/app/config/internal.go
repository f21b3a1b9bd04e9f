package config

import (
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

type (
	InternalConfig struct {
		App   App
		Rails Rails
		JWT   JWT
	}

	App struct {
		Name                     string
		Env                      string
		Port                     string
		Version                  string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
		RequestTimeoutInSeconds  int
		WebhookWorkerRatePerSec  int
		WebhookWorkerPrefetch    int
		WebhookThrottleRetry     int
	}

	// Rails is the runtime configuration selecting real versus stub payment
	// rail adapters. Core logic never reads the environment itself.
	Rails struct {
		Mode                  string
		PrimerAPIKey          string
		PrimerWebhookSecret   string
		PrimerEnv             string
		CoinbaseAPIKey        string
		CoinbaseWebhookSecret string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Name:                     utils.GetEnvString("APP_NAME", "railpay-service"),
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			WebhookWorkerRatePerSec:  utils.GetEnvInt("APP_WEBHOOK_WORKER_RATE_PER_SEC", 5),
			WebhookWorkerPrefetch:    utils.GetEnvInt("APP_WEBHOOK_WORKER_PREFETCH", 1),
			WebhookThrottleRetry:     utils.GetEnvInt("APP_WEBHOOK_THROTTLE_RETRY", 3),
		},
		Rails: Rails{
			Mode:                  utils.GetEnvString("RAILS_MODE", constvars.RailsModeMock),
			PrimerAPIKey:          utils.GetEnvString("PRIMER_API_KEY", ""),
			PrimerWebhookSecret:   utils.GetEnvString("PRIMER_WEBHOOK_SECRET", "mock-primer-secret"),
			PrimerEnv:             utils.GetEnvString("PRIMER_ENV", constvars.PrimerEnvSandbox),
			CoinbaseAPIKey:        utils.GetEnvString("COINBASE_COMMERCE_API_KEY", ""),
			CoinbaseWebhookSecret: utils.GetEnvString("COINBASE_COMMERCE_WEBHOOK_SECRET", "mock-coinbase-secret"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
	}
}
