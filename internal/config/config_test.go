package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("STORAGE", "memory")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_EMAILS", " dean@campus.edu, ,ops@campus.edu")
	t.Setenv("TOKEN_TTL", "2h")

	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != "50051" || c.MongoDatabase != "campus_db" || c.RateLimitRPM != 10 || c.MessageRateLimitRPM != 120 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.TokenTTL != 2*time.Hour {
		t.Fatalf("TOKEN_TTL = %s", c.TokenTTL)
	}
	if len(c.AdminEmails) != 2 || c.AdminEmails[1] != "ops@campus.edu" {
		t.Fatalf("unexpected admin emails: %v", c.AdminEmails)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	content := "PORT=6000\nREDIS_ADDR=localhost:6379\n"
	if err := os.WriteFile(filepath.Join(dir, ".env.test"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV", "test")
	t.Setenv("PORT", "7000")
	// registered so t.Setenv restores it after godotenv sets it
	t.Setenv("REDIS_ADDR", "")
	_ = os.Unsetenv("REDIS_ADDR")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != "7000" {
		t.Fatalf("environment should win over .env, got %s", c.Port)
	}
	if c.RedisAddr != "localhost:6379" {
		t.Fatalf("expected REDIS_ADDR from .env.test, got %q", c.RedisAddr)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Storage: StorageMongo, MongoURI: "mongodb://x", JWTSecret: "s", TokenTTL: time.Hour, RateLimitRPM: 1, MessageRateLimitRPM: 1}
	}
	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := map[string]func(*Config){
		"no mongo uri":    func(c *Config) { c.MongoURI = "" },
		"no jwt key":      func(c *Config) { c.JWTSecret = "" },
		"bad active kid":  func(c *Config) { c.JWTKeys, c.JWTActiveKid = map[string]string{"k1": "a"}, "k2" },
		"tls without pem": func(c *Config) { c.RequireTLS = true },
		"unknown storage": func(c *Config) { c.Storage = "sqlite" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("k1:secret-one, k2:secret:two")
	if err != nil {
		t.Fatalf("ParseKeys: %v", err)
	}
	if keys["k1"] != "secret-one" || keys["k2"] != "secret:two" {
		t.Fatalf("unexpected keys: %v", keys)
	}
	if _, err := ParseKeys("broken"); err == nil {
		t.Fatalf("expected error for entry without secret")
	}
}
