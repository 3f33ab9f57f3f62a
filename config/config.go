package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported identity verification modes.
const (
	AuthModeFirebase = "firebase"
	AuthModeJWT      = "jwt"
)

// Supported therapist store backends.
const (
	BackendFirestore = "firestore"
	BackendMongo     = "mongo"
	BackendPostgres  = "postgres"
	BackendMemory    = "memory"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Comma-separated proxy IPs/CIDRs whose X-Forwarded-For is trusted. Empty trusts none.
	TrustedProxies  string `mapstructure:"TRUSTED_PROXIES"`
	// Header set by the hosting platform with the client IP, e.g. X-Appengine-Remote-Addr.
	TrustedPlatform string `mapstructure:"TRUSTED_PLATFORM"`

	// Identity.
	AuthMode     string        `mapstructure:"AUTH_MODE"`
	JWTSecret    string        `mapstructure:"JWT_SECRET"`
	AuthCacheTTL time.Duration `mapstructure:"AUTH_CACHE_TTL"`

	// Client app Firebase project (primary store).
	ClientProjectID       string `mapstructure:"CLIENT_PROJECT_ID"`
	ClientCredentialsFile string `mapstructure:"CLIENT_CREDENTIALS_FILE"`

	// Therapist tenant (secondary store).
	TherapistProjectID       string `mapstructure:"THERAPIST_PROJECT_ID"`
	TherapistCredentialsFile string `mapstructure:"THERAPIST_CREDENTIALS_FILE"`
	TherapistStoreBackend    string `mapstructure:"THERAPIST_STORE_BACKEND"`
	TherapistMongoURL        string `mapstructure:"THERAPIST_MONGO_URL"`
	TherapistMongoDatabase   string `mapstructure:"THERAPIST_MONGO_DATABASE"`
	TherapistPostgresURL     string `mapstructure:"THERAPIST_POSTGRES_URL"`

	// Collection layout.
	PrimaryCollectionTemplate string `mapstructure:"PRIMARY_COLLECTION_TEMPLATE"`
	SecondaryCollection       string `mapstructure:"SECONDARY_COLLECTION"`
	OrphanCollection          string `mapstructure:"ORPHAN_COLLECTION"`

	// Redis configuration (verified token cache). Empty address disables the cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("TRUSTED_PLATFORM", "")
	v.SetDefault("AUTH_MODE", AuthModeFirebase)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("AUTH_CACHE_TTL", "10m")
	v.SetDefault("CLIENT_PROJECT_ID", "")
	v.SetDefault("CLIENT_CREDENTIALS_FILE", "")
	v.SetDefault("THERAPIST_PROJECT_ID", "")
	v.SetDefault("THERAPIST_CREDENTIALS_FILE", "therapist-admin-key.json")
	v.SetDefault("THERAPIST_STORE_BACKEND", BackendFirestore)
	v.SetDefault("THERAPIST_MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("THERAPIST_MONGO_DATABASE", "therapist")
	v.SetDefault("THERAPIST_POSTGRES_URL", "")
	v.SetDefault("PRIMARY_COLLECTION_TEMPLATE", "users/{clientId}/orders")
	v.SetDefault("SECONDARY_COLLECTION", "bookings")
	v.SetDefault("ORPHAN_COLLECTION", "orphanedBookings")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_AUTH_DB", 1)
}

// Load reads config.yaml from the current or ./config directory and overlays environment variables.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadConfig populates AppConfig from the global viper instance.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate reports the first missing or inconsistent setting.
func (c Config) Validate() error {
	switch c.AuthMode {
	case AuthModeFirebase:
	case AuthModeJWT:
		if c.IsProduction() {
			return fmt.Errorf("config: AUTH_MODE=%s cannot be used in production", AuthModeJWT)
		}
		if c.JWTSecret == "" {
			return fmt.Errorf("config: JWT_SECRET is required when AUTH_MODE=%s", AuthModeJWT)
		}
	default:
		return fmt.Errorf("config: unsupported AUTH_MODE %q", c.AuthMode)
	}

	switch c.TherapistStoreBackend {
	case BackendFirestore:
		if c.TherapistCredentialsFile == "" {
			return fmt.Errorf("config: THERAPIST_CREDENTIALS_FILE is required for the firestore backend")
		}
	case BackendMongo:
		if c.TherapistMongoURL == "" || c.TherapistMongoDatabase == "" {
			return fmt.Errorf("config: THERAPIST_MONGO_URL and THERAPIST_MONGO_DATABASE are required for the mongo backend")
		}
	case BackendPostgres:
		if c.TherapistPostgresURL == "" {
			return fmt.Errorf("config: THERAPIST_POSTGRES_URL is required for the postgres backend")
		}
	case BackendMemory:
		if c.IsProduction() {
			return fmt.Errorf("config: the memory backend cannot be used in production")
		}
	default:
		return fmt.Errorf("config: unsupported THERAPIST_STORE_BACKEND %q", c.TherapistStoreBackend)
	}

	if !strings.Contains(c.PrimaryCollectionTemplate, "{clientId}") {
		return fmt.Errorf("config: PRIMARY_COLLECTION_TEMPLATE must scope writes with {clientId}")
	}
	if c.SecondaryCollection == "" {
		return fmt.Errorf("config: SECONDARY_COLLECTION is required")
	}
	return nil
}

// TrustedProxyList splits TRUSTED_PROXIES. A nil result trusts no proxy.
func (c Config) TrustedProxyList() []string {
	var proxies []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return AppConfig.IsProduction()
}
