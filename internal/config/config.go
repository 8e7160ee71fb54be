// Package config loads the service configuration from the environment and
// optional .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Env     string
	Debug   bool
	Port    string
	Storage string

	MongoURI      string
	MongoDatabase string

	JWTSecret    string
	JWTKeys      map[string]string // kid -> secret, from JWT_KEYS
	JWTActiveKid string
	TokenTTL     time.Duration

	RateLimitRPM        int // SignUp/SignIn, per email
	MessageRateLimitRPM int // SendMessage, per user

	TLSCert    string
	TLSKey     string
	RequireTLS bool

	RedisAddr          string
	RedisPassword      string
	RedisChannelPrefix string

	RollbarToken string
	AdminEmails  []string
}

func defaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("DEBUG", false)
	v.SetDefault("PORT", "50051")
	v.SetDefault("STORAGE", StorageMongo)
	v.SetDefault("MONGODB_DATABASE", "campus_db")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("RATE_LIMIT_RPM", 10)
	v.SetDefault("MESSAGE_RATE_LIMIT_RPM", 120)
	v.SetDefault("REQUIRE_TLS", false)
	v.SetDefault("REDIS_CHANNEL_PREFIX", "campus:")
}

// Load reads .env and .env.<ENV> from dir when present (variables already
// set in the environment win), then the environment itself.
func Load(dir string) (*Config, error) {
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = "development"
	}
	for _, name := range []string{".env." + env, ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	defaults(v)
	v.AutomaticEnv()

	keys, err := ParseKeys(v.GetString("JWT_KEYS"))
	if err != nil {
		return nil, err
	}

	c := &Config{
		Env:                 v.GetString("ENV"),
		Debug:               v.GetBool("DEBUG"),
		Port:                v.GetString("PORT"),
		Storage:             strings.ToLower(v.GetString("STORAGE")),
		MongoURI:            v.GetString("MONGODB_URI"),
		MongoDatabase:       v.GetString("MONGODB_DATABASE"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTKeys:             keys,
		JWTActiveKid:        v.GetString("JWT_ACTIVE_KID"),
		TokenTTL:            v.GetDuration("TOKEN_TTL"),
		RateLimitRPM:        v.GetInt("RATE_LIMIT_RPM"),
		MessageRateLimitRPM: v.GetInt("MESSAGE_RATE_LIMIT_RPM"),
		TLSCert:             v.GetString("TLS_CERT"),
		TLSKey:              v.GetString("TLS_KEY"),
		RequireTLS:          v.GetBool("REQUIRE_TLS"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		RedisChannelPrefix:  v.GetString("REDIS_CHANNEL_PREFIX"),
		RollbarToken:        v.GetString("ROLLBAR_TOKEN"),
		AdminEmails:         splitList(v.GetString("ADMIN_EMAILS")),
	}
	return c, nil
}

// ParseKeys parses JWT_KEYS, a comma separated list of kid:secret pairs.
func ParseKeys(s string) (map[string]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	keys := map[string]string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts := strings.SplitN(p, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("config: invalid JWT_KEYS entry: %s", p)
		}
		keys[parts[0]] = parts[1]
	}
	return keys, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate reports the first setting that keeps the server from starting.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMongo:
		if c.MongoURI == "" {
			return errors.New("MONGODB_URI must be set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}

	if len(c.JWTKeys) == 0 && c.JWTSecret == "" {
		return errors.New("either JWT_SECRET or JWT_KEYS must be set")
	}
	if len(c.JWTKeys) > 0 {
		if _, ok := c.JWTKeys[c.JWTActiveKid]; !ok {
			return fmt.Errorf("JWT_ACTIVE_KID %q is not one of JWT_KEYS", c.JWTActiveKid)
		}
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.RequireTLS && (c.TLSCert == "" || c.TLSKey == "") {
		return errors.New("REQUIRE_TLS is true but TLS_CERT/TLS_KEY are not configured")
	}
	if c.RateLimitRPM <= 0 || c.MessageRateLimitRPM <= 0 {
		return errors.New("rate limits must be positive")
	}
	return nil
}
