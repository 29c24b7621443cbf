package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds runtime configuration loaded from environment variables.
type App struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"8080"`

	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Auth
	AdminEmail    string        `envconfig:"ADMIN_EMAIL" default:"admin@legalmatters.com"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"168h"`

	// CORS (local frontend development)
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`

	// Document storage
	StorageType      string `envconfig:"STORAGE_TYPE" default:"local"`
	StorageLocalPath string `envconfig:"STORAGE_LOCAL_PATH" default:"./storage/files"`
	S3Bucket         string `envconfig:"AWS_S3_BUCKET"`
	S3Region         string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKey     string `envconfig:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey     string `envconfig:"AWS_SECRET_ACCESS_KEY"`
}

// Load reads configuration from the environment.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
