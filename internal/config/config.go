package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	S3BucketName   string

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration

	// OperatorPasswordHash is the bcrypt hash checked when issuing operator
	// tokens for privileged operations (penalties, accrual, treasury).
	OperatorPasswordHash string

	GoogleClientID string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Profiles        string
	Identities      string
	Products        string
	Reviews         string
	Recommendations string
	Transactions    string
	Subscriptions   string
	Reports         string
	Advertisements  string
	Investments     string
	Counters        string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "ap-southeast-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Profiles:        getEnv("DYNAMO_TABLE_PROFILES", "profiles"),
			Identities:      getEnv("DYNAMO_TABLE_IDENTITIES", "identities"),
			Products:        getEnv("DYNAMO_TABLE_PRODUCTS", "products"),
			Reviews:         getEnv("DYNAMO_TABLE_REVIEWS", "reviews"),
			Recommendations: getEnv("DYNAMO_TABLE_RECOMMENDATIONS", "recommendations"),
			Transactions:    getEnv("DYNAMO_TABLE_TRANSACTIONS", "transactions"),
			Subscriptions:   getEnv("DYNAMO_TABLE_SUBSCRIPTIONS", "analytics_subscriptions"),
			Reports:         getEnv("DYNAMO_TABLE_REPORTS", "analytics_reports"),
			Advertisements:  getEnv("DYNAMO_TABLE_ADVERTISEMENTS", "advertisements"),
			Investments:     getEnv("DYNAMO_TABLE_INVESTMENTS", "treasury_investments"),
			Counters:        getEnv("DYNAMO_TABLE_COUNTERS", "counters"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "aromance-product-images"),

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,

		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@aromance.id"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion: getEnv("SNS_REGION", "ap-southeast-1"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
