package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envProduction = "production"

type Config struct {
	AppEnv string

	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	FCMCredentialsFile string
	NotifySendTimeout  time.Duration
	NotifyConcurrency  int

	StatsSchedule string
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool {
	return c.AppEnv == envProduction
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads envFile, if present, then the process environment.
// A missing env file is ignored.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("NOTIFY_SEND_TIMEOUT", "5s")
	v.SetDefault("NOTIFY_CONCURRENCY", 4)
	v.SetDefault("STATS_SCHEDULE", "*/30 * * * * *")

	cfg := Config{
		AppEnv:             v.GetString("APP_ENV"),
		HTTPPort:           v.GetString("HTTP_PORT"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		DBSslMode:          v.GetString("DB_SSLMODE"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		FCMCredentialsFile: v.GetString("FCM_CREDENTIALS_FILE"),
		NotifySendTimeout:  v.GetDuration("NOTIFY_SEND_TIMEOUT"),
		NotifyConcurrency:  v.GetInt("NOTIFY_CONCURRENCY"),
		StatsSchedule:      v.GetString("STATS_SCHEDULE"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the service cannot start without.
func (c Config) Validate() error {
	var problems []error
	if c.DBName == "" {
		problems = append(problems, errors.New("DB_NAME is required"))
	}
	if c.DBUser == "" {
		problems = append(problems, errors.New("DB_USER is required"))
	}
	if c.JWTSecret == "" && c.IsProduction() {
		problems = append(problems, errors.New("JWT_SECRET is required in production"))
	}
	if c.NotifySendTimeout <= 0 {
		problems = append(problems, errors.New("NOTIFY_SEND_TIMEOUT must be positive"))
	}
	if c.NotifyConcurrency <= 0 {
		problems = append(problems, errors.New("NOTIFY_CONCURRENCY must be positive"))
	}
	return errors.Join(problems...)
}
