package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultJWTExpiresIn = 7 * 24 * time.Hour
	defaultInviteHours  = 48
)

type Config struct {
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 5000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // How often stale invites are purged (default: 1h)

	DatabaseURL string // SQLite file path or postgres:// DSN (default: nexusadmin.db)

	JWTSecret    string        // Optional: a random secret is generated when empty
	JWTExpiresIn time.Duration // Session lifetime (default: 7d)
	JWTIssuer    string        // Issuer claim (default: nexusadmin)

	InviteTTL       time.Duration // Invite lifetime (default: 48h)
	InviteRetention time.Duration // How long expired invites are kept (default: 30d)
	FrontendURL     string        // Base URL for links in emails (default: http://localhost:3000)

	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFromName  string
	SMTPFromEmail string

	RedisAddr     string // Optional: enables the Redis email queue
	RedisPassword string

	AdminSeedName     string // Optional: seeds an admin on startup with the email and password below
	AdminSeedEmail    string
	AdminSeedPassword string

	// Settings that were set but could not be parsed, reported at startup
	Rejected []RejectedSetting
}

// RejectedSetting records an environment value that fell back to its default.
type RejectedSetting struct {
	Key     string
	Value   string
	Default time.Duration
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("port", 5000)
	v.SetDefault("shutdown_grace_period", "10s")
	v.SetDefault("database_url", "nexusadmin.db")
	v.SetDefault("jwt_issuer", "nexusadmin")
	v.SetDefault("invite_token_expires_hours", defaultInviteHours)
	v.SetDefault("frontend_url", "http://localhost:3000")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_from_name", "NexusAdmin")

	inviteHours := v.GetInt("invite_token_expires_hours")
	if inviteHours <= 0 {
		inviteHours = defaultInviteHours
	}

	var rejected []RejectedSetting
	duration := func(key string, def time.Duration) time.Duration {
		raw := v.GetString(key)
		d, ok := parseDuration(raw, def)
		if !ok {
			rejected = append(rejected, RejectedSetting{Key: strings.ToUpper(key), Value: raw, Default: def})
		}
		return d
	}

	cfg := Config{
		Env:                  v.GetString("env"),
		LogLevel:             v.GetString("log_level"),
		LogFormat:            v.GetString("log_format"),
		Port:                 v.GetInt("port"),
		ShutdownGracePeriod:  duration("shutdown_grace_period", 10*time.Second),
		HousekeepingInterval: duration("housekeeping_interval", time.Hour),

		DatabaseURL: v.GetString("database_url"),

		JWTSecret:    v.GetString("jwt_secret"),
		JWTExpiresIn: duration("jwt_expires_in", defaultJWTExpiresIn),
		JWTIssuer:    v.GetString("jwt_issuer"),

		InviteTTL:       time.Duration(inviteHours) * time.Hour,
		InviteRetention: duration("invite_retention", 30*24*time.Hour),
		FrontendURL:     v.GetString("frontend_url"),

		SMTPHost:      v.GetString("smtp_host"),
		SMTPPort:      v.GetInt("smtp_port"),
		SMTPUser:      v.GetString("smtp_user"),
		SMTPPass:      v.GetString("smtp_pass"),
		SMTPFromName:  v.GetString("smtp_from_name"),
		SMTPFromEmail: v.GetString("smtp_from_email"),

		RedisAddr:     v.GetString("redis_addr"),
		RedisPassword: v.GetString("redis_password"),

		AdminSeedName:     v.GetString("admin_seed_name"),
		AdminSeedEmail:    v.GetString("admin_seed_email"),
		AdminSeedPassword: v.GetString("admin_seed_password"),
	}
	cfg.Rejected = rejected

	return cfg
}

// IsDev reports whether the service runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

// parseDuration accepts Go durations ("90m", "12h") and whole days ("7d").
// An empty value yields def. Anything else that is not a positive duration
// also yields def, with ok set to false.
func parseDuration(value string, def time.Duration) (d time.Duration, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, true
	}

	if days, found := strings.CutSuffix(value, "d"); found {
		if n, err := strconv.Atoi(days); err == nil && n > 0 {
			return time.Duration(n) * 24 * time.Hour, true
		}
		return def, false
	}

	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d, true
	}
	return def, false
}
