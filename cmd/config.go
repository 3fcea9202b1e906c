package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr enables the mailroom settings cache when set.
	RedisAddr     string
	RedisPassword string
	RedisTTL      time.Duration

	InvitationExpirySchedule string
	SlotReconcileSchedule    string
	SlotReconcileGrace       time.Duration

	OpenAPIValidation bool
	MailFrom          string
}

var defaults = map[string]any{
	"HTTP_PORT":                  "8080",
	"DB_HOST":                    "localhost",
	"DB_PORT":                    "5432",
	"DB_USER":                    "postgres",
	"DB_PASSWORD":                "",
	"DB_NAME":                    "mailroom",
	"DB_SSLMODE":                 "disable",
	"REDIS_ADDR":                 "",
	"REDIS_PASSWORD":             "",
	"REDIS_TTL":                  "5m",
	"INVITATION_EXPIRY_SCHEDULE": "0 */5 * * * *",
	"SLOT_RECONCILE_SCHEDULE":    "30 */10 * * * *",
	"SLOT_RECONCILE_GRACE":       "15m",
	"OPENAPI_VALIDATION":         true,
	"MAIL_FROM":                  "mailroom@localhost",
}

// LoadConfig reads an optional .env file from envFile and then the process
// environment. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:                 v.GetString("HTTP_PORT"),
		DBHost:                   v.GetString("DB_HOST"),
		DBPort:                   v.GetString("DB_PORT"),
		DBUser:                   v.GetString("DB_USER"),
		DBPassword:               v.GetString("DB_PASSWORD"),
		DBName:                   v.GetString("DB_NAME"),
		DBSslMode:                v.GetString("DB_SSLMODE"),
		RedisAddr:                v.GetString("REDIS_ADDR"),
		RedisPassword:            v.GetString("REDIS_PASSWORD"),
		RedisTTL:                 v.GetDuration("REDIS_TTL"),
		InvitationExpirySchedule: v.GetString("INVITATION_EXPIRY_SCHEDULE"),
		SlotReconcileSchedule:    v.GetString("SLOT_RECONCILE_SCHEDULE"),
		SlotReconcileGrace:       v.GetDuration("SLOT_RECONCILE_GRACE"),
		OpenAPIValidation:        v.GetBool("OPENAPI_VALIDATION"),
		MailFrom:                 v.GetString("MAIL_FROM"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var err error
	if c.HTTPPort == "" {
		err = errors.Join(err, errors.New("HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		err = errors.Join(err, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.SlotReconcileGrace <= 0 {
		err = errors.Join(err, errors.New("SLOT_RECONCILE_GRACE must be positive"))
	}
	if c.RedisTTL < 0 {
		err = errors.Join(err, errors.New("REDIS_TTL must not be negative"))
	}
	return err
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
