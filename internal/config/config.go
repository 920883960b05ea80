// Package config loads sparklearn settings from an optional config file,
// a .env file and SPARKLEARN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/sparklearn/internal/activity"
)

// ErrMissingSecret is returned when serving without a JWT secret.
var ErrMissingSecret = errors.New("auth.jwt_secret is required (set SPARKLEARN_AUTH_JWT_SECRET)")

// Config holds application configuration.
type Config struct {
	Env   string `mapstructure:"env"` // local, production
	HTTP  HTTP   `mapstructure:"http"`
	DB    DB     `mapstructure:"db"`
	Auth  Auth   `mapstructure:"auth"`
	Stats Stats  `mapstructure:"stats"`
	Tutor Tutor  `mapstructure:"tutor"`
}

type HTTP struct {
	Addr            string        `mapstructure:"addr"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DB struct {
	// Path is the SQLite file; empty means the XDG default.
	Path string `mapstructure:"path"`
}

type Auth struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// Stats controls calendar boundaries for streaks and weekly goals.
type Stats struct {
	Timezone  string `mapstructure:"timezone"`
	WeekStart string `mapstructure:"week_start"`
}

// Tutor controls generation behavior.
type Tutor struct {
	// FallbackOnError serves placeholder content instead of failing
	// when the provider errors.
	FallbackOnError bool `mapstructure:"fallback_on_error"`
}

// Calendar resolves the configured zone and week start.
func (s Stats) Calendar() (activity.Calendar, error) {
	cal := activity.DefaultCalendar()
	if s.Timezone != "" && !strings.EqualFold(s.Timezone, "local") {
		loc, err := time.LoadLocation(s.Timezone)
		if err != nil {
			return cal, fmt.Errorf("stats.timezone: %w", err)
		}
		cal.Location = loc
	}
	if s.WeekStart != "" {
		d, err := activity.ParseWeekday(s.WeekStart)
		if err != nil {
			return cal, fmt.Errorf("stats.week_start: %w", err)
		}
		cal.WeekStart = d
	}
	return cal, nil
}

// Load reads configuration. A missing config file or .env file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvPrefix("SPARKLEARN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "SPARKLEARN_ENV", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	// SPARKLEARN_DB is also the automatic env name of the db section, so
	// viper cannot bind it to db.path. It wins over the file value.
	if p := os.Getenv("SPARKLEARN_DB"); p != "" {
		cfg.DB.Path = p
	}
	// Env lists arrive comma separated, possibly with padding.
	cfg.HTTP.CORSOrigins = splitList(strings.Join(cfg.HTTP.CORSOrigins, ","))
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.cors_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("db.path", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("stats.timezone", "Local")
	v.SetDefault("stats.week_start", "sunday")
	v.SetDefault("tutor.fallback_on_error", false)
}

// Validate checks settings required to serve HTTP.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return ErrMissingSecret
	}
	if _, err := c.Stats.Calendar(); err != nil {
		return err
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
