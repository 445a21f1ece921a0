package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env       Env
	Server    ServerConfig
	Database  DatabaseConfig
	Provider  ProviderConfig
	Webhook   WebhookConfig
	Upload    UploadConfig
	Reconcile ReconcileConfig
	NATS      NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

type ProviderConfig struct {
	BaseURL      string        `envconfig:"MUX_BASE_URL" default:"https://api.mux.com"`
	StreamBase   string        `envconfig:"MUX_STREAM_BASE_URL" default:"https://stream.mux.com"`
	ImageBase    string        `envconfig:"MUX_IMAGE_BASE_URL" default:"https://image.mux.com"`
	TokenID      string        `envconfig:"MUX_TOKEN_ID" required:"true"`
	TokenSecret  string        `envconfig:"MUX_TOKEN_SECRET" required:"true"`
	SigningKeyID string        `envconfig:"MUX_SIGNING_KEY_ID"`
	SigningKey   string        `envconfig:"MUX_SIGNING_KEY"` // base64-encoded RSA private key PEM
	Timeout      time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
}

type WebhookConfig struct {
	Secret    string        `envconfig:"MUX_WEBHOOK_SECRET" required:"true"`
	Tolerance time.Duration `envconfig:"WEBHOOK_TOLERANCE" default:"5m"`
}

type UploadConfig struct {
	MaxFileSize   int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"5368709120"` // 5GiB
	UploadTimeout time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"1h"`
	CORSOrigin    string        `envconfig:"UPLOAD_CORS_ORIGIN" default:"*"`
	SignedURLTTL  time.Duration `envconfig:"UPLOAD_SIGNED_URL_TTL" default:"24h"`
}

type ReconcileConfig struct {
	SessionSweepEvery time.Duration `envconfig:"RECONCILE_SESSION_SWEEP_EVERY" default:"30m"`
	SessionGrace      time.Duration `envconfig:"RECONCILE_SESSION_GRACE" default:"1h"`
	StuckSweepEvery   time.Duration `envconfig:"RECONCILE_STUCK_SWEEP_EVERY" default:"5m"`
	StuckAfter        time.Duration `envconfig:"RECONCILE_STUCK_AFTER" default:"30m"`
	UsageSweepEvery   time.Duration `envconfig:"RECONCILE_USAGE_SWEEP_EVERY" default:"1h"`
	UsageWindow       time.Duration `envconfig:"RECONCILE_USAGE_WINDOW" default:"24h"`
	PurgeSweepEvery   time.Duration `envconfig:"RECONCILE_PURGE_SWEEP_EVERY" default:"24h"`
	FailedRetention   time.Duration `envconfig:"RECONCILE_FAILED_RETENTION" default:"168h"`
}

type NATSConfig struct {
	URL           string `envconfig:"NATS_URL" required:"true"`
	ClientName    string `envconfig:"NATS_CLIENT_NAME" default:"media-service"`
	SubjectPrefix string `envconfig:"NATS_SUBJECT_PREFIX" default:"lecture.video"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
