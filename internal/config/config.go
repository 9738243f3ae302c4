package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values
	"time"    // For TTLs and windows

	"github.com/joho/godotenv" // For loading .env files
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration
type Config struct {
	AppPort    string // Application port
	DBUser     string // Database user
	DBPassword string // Database password
	DBHost     string // Database host
	DBPort     string // Database port
	DBName     string // Database name

	JWTSecret  string        // JWT secret key
	AccessTTL  time.Duration // Lifetime of access tokens
	RefreshTTL time.Duration // Lifetime of refresh tokens

	RedisAddr string        // Redis server address
	RedisPass string        // Redis password
	RedisDB   int           // Redis database number
	CacheTTL  time.Duration // TTL of cached read responses

	IsProd   bool   // Is production environment
	LogLevel string // logrus level name

	RabbitMQURL      string // Empty disables order events
	RabbitMQExchange string // Topic exchange for order events

	CORSAllowedOrigins string // Comma-separated origins

	AdminRegistrationKey    string // Required in X-Admin-Key to register an admin
	AllowClientPurchaseTime bool   // Honor date_of_purchase sent to /buy-cart
	ReportTimezone          string // IANA zone used to cut report days

	RateLimitMax    int           // Requests per window on auth routes
	RateLimitWindow time.Duration // Rate limit window
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:    getenv("APP_PORT", "8080"),       // Application port
		DBUser:     os.Getenv("DB_USER"),             // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),         // Database password
		DBHost:     getenv("DB_HOST", "127.0.0.1"),   // Database host
		DBPort:     getenv("DB_PORT", "3306"),        // Database port
		DBName:     getenv("DB_NAME", "shop_system"), // Database name

		JWTSecret:  os.Getenv("JWT_SECRET"),                 // JWT secret key
		AccessTTL:  getdur("JWT_ACCESS_TTL", 5*time.Minute), // Access token lifetime
		RefreshTTL: getdur("JWT_REFRESH_TTL", 24*time.Hour), // Refresh token lifetime

		RedisAddr: getenv("REDIS_ADDR", "127.0.0.1:6379"), // Redis server address
		RedisPass: os.Getenv("REDIS_PASS"),                // Redis password
		RedisDB:   getint("REDIS_DB", 0),                  // Redis database number
		CacheTTL:  getdur("CACHE_TTL", 60*time.Second),    // Cache lifetime

		IsProd:   os.Getenv("IS_PROD") == "true", // Is production environment
		LogLevel: getenv("LOG_LEVEL", "info"),    // Log level

		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: getenv("RABBITMQ_EXCHANGE", "shop.events"),

		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),

		AdminRegistrationKey:    os.Getenv("ADMIN_REGISTRATION_KEY"),
		AllowClientPurchaseTime: getbool("ALLOW_CLIENT_PURCHASE_TIME", false),
		ReportTimezone:          getenv("REPORT_TIMEZONE", "UTC"),

		RateLimitMax:    getint("RATE_LIMIT_MAX", 20),
		RateLimitWindow: getdur("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&loc=UTC"
}

// CORSOrigins returns the allowed origins as a slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

// ReportLocation resolves ReportTimezone, falling back to UTC
func (c *Config) ReportLocation() *time.Location {
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		logrus.Warnf("invalid REPORT_TIMEZONE %q, using UTC: %v", c.ReportTimezone, err)
		return time.UTC
	}
	return loc
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			logrus.Warnf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logrus.Warnf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			logrus.Warnf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}
