package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"algonest_webclient/internal/alert"
	"algonest_webclient/internal/api"
	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/repository"
	"algonest_webclient/internal/screen"
	"algonest_webclient/internal/service"
	"algonest_webclient/internal/session"
	"algonest_webclient/internal/support"
	"algonest_webclient/internal/wallet"
	"algonest_webclient/internal/withdrawal"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Database repository.Config `mapstructure:"database"`
	Server   ServerConfig      `mapstructure:"server"`
	Backend  gateway.Config    `mapstructure:"backend"`
	Session  session.Config    `mapstructure:"session"`

	Withdrawal withdrawal.Policy      `mapstructure:"withdrawal"`
	Wallets    wallet.Config          `mapstructure:"wallets"`
	Recharge   service.RechargeConfig `mapstructure:"recharge"`
	Referral   service.ReferralConfig `mapstructure:"referral"`

	Alerts  alert.Config   `mapstructure:"alerts"`
	Screens screen.Config  `mapstructure:"screens"`
	Support support.Config `mapstructure:"support"`
	CORS    api.CORSConfig `mapstructure:"cors"`

	LogLevel string `mapstructure:"logLevel"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	CookieSecure bool          `mapstructure:"cookieSecure"`
	SweepEvery   time.Duration `mapstructure:"sweepEvery"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cookieSecure", false)
	v.SetDefault("server.sweepEvery", time.Hour)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "algonest")
	v.SetDefault("database.sslMode", "disable")

	v.SetDefault("backend.baseURL", "http://localhost/api")
	v.SetDefault("backend.pathSuffix", ".php")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("backend.retry.maxAttempts", gateway.DefaultRetry.MaxAttempts)
	v.SetDefault("backend.retry.baseDelay", gateway.DefaultRetry.BaseDelay)
	v.SetDefault("backend.retry.maxDelay", gateway.DefaultRetry.MaxDelay)

	v.SetDefault("session.cookieName", session.DefaultCookieName)
	v.SetDefault("session.ttl", session.DefaultTTL)

	v.SetDefault("withdrawal.feeRate", withdrawal.DefaultPolicy.FeeRate)
	v.SetDefault("withdrawal.minimum", withdrawal.DefaultPolicy.Minimum)

	v.SetDefault("referral.linkBase", "http://localhost:8080")
	v.SetDefault("alerts.dismissAfter", alert.DefaultDismissAfter)
	v.SetDefault("screens.statusTTL", screen.DefaultStatusTTL)

	v.SetDefault("support.telegramBotToken", "")
	v.SetDefault("support.chatID", 0)
	v.SetDefault("support.apiEndpoint", "")

	v.SetDefault("cors.allowOrigins", []string{})
}

// LoadConfig reads config.yaml when present. Every key may be overridden by
// an APP_ prefixed variable, also from a .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(configPath)
	v.SetConfigType(configFormat)

	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
