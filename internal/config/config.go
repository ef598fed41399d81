package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	OAuth      OAuth      `mapstructure:",squash"`
	TokenStore TokenStore `mapstructure:",squash"`
	TokenSweep TokenSweep `mapstructure:",squash"`
	MCP        MCP        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	// Mode selects which surfaces come up: "mcp" (stdio only),
	// "api" (HTTP only) or "both".
	Mode string `mapstructure:"server_mode"`
	// BaseURL is the externally visible URL, used in the connector
	// manifest and OAuth redirects when set.
	BaseURL string `mapstructure:"server_base_url"`
}

type Meta struct {
	BaseURL   string `mapstructure:"meta_base_url"`
	Version   string `mapstructure:"meta_version"`
	URL       string `mapstructure:"-"`
	AppID     string `mapstructure:"meta_app_id"`
	AppSecret string `mapstructure:"meta_app_secret"`
}

type OAuth struct {
	RedirectURL     string `mapstructure:"oauth_redirect_url"`
	StateSecret     string `mapstructure:"oauth_state_secret"`
	StateTTLMinutes int    `mapstructure:"oauth_state_ttl_minutes"`
}

type TokenStore struct {
	Path string `mapstructure:"token_file"`
}

type TokenSweep struct {
	CronSchedule string `mapstructure:"token_sweep_cron"`
	Enabled      bool   `mapstructure:"token_sweep_enabled"`
}

type MCP struct {
	ServerName    string `mapstructure:"mcp_server_name"`
	ServerVersion string `mapstructure:"mcp_server_version"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 3003)
	viper.SetDefault("SERVER_MODE", "mcp")
	viper.SetDefault("SERVER_BASE_URL", "http://localhost:3003")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v23.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")

	viper.SetDefault("OAUTH_REDIRECT_URL", "http://localhost:3003/auth/facebook/callback")
	viper.SetDefault("OAUTH_STATE_SECRET", "")
	viper.SetDefault("OAUTH_STATE_TTL_MINUTES", 5)

	viper.SetDefault("TOKEN_FILE", ".tokens.json")

	viper.SetDefault("TOKEN_SWEEP_CRON", "0 * * * *")
	viper.SetDefault("TOKEN_SWEEP_ENABLED", true)

	viper.SetDefault("MCP_SERVER_NAME", "facebook-ads-universal")
	viper.SetDefault("MCP_SERVER_VERSION", "2.0.0")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("no .env readable by viper, relying on environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("loaded environment from ", location)
			return
		}
	}
}
