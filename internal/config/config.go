package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the full application configuration loaded from file/env.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Confluence ConfluenceConfig `mapstructure:"confluence"`
}

// ServerConfig holds server-specific options.
type ServerConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// ConfluenceConfig describes the Confluence instance and its credentials.
// BaseURL is the REST endpoint (e.g. https://host/wiki/rest/api) or a bare
// site URL, in which case the REST path is appended at startup.
type ConfluenceConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Username string `mapstructure:"username"`
	APIToken string `mapstructure:"api_token"`
}

// Load reads configuration from the provided directory and environment variables.
// A .env file in the working directory is loaded first, matching how the
// server is typically launched by MCP clients.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if path != "" {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			v.AddConfigPath(path)
		} else {
			v.SetConfigFile(path)
		}
	} else {
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The documented environment variables keep their historical names.
	_ = v.BindEnv("confluence.base_url", "CONFLUENCE_BASE_URL")
	_ = v.BindEnv("confluence.username", "USERNAME")
	_ = v.BindEnv("confluence.api_token", "API_TOKEN")
	_ = v.BindEnv("server.log_level", "LOG_LEVEL")

	v.SetDefault("server.log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.applyNetrcDefaults(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Confluence.BaseURL == "" {
		return fmt.Errorf("config: confluence.base_url is required (set CONFLUENCE_BASE_URL)")
	}

	if err := c.Confluence.validateCredentials(); err != nil {
		return err
	}

	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}

	return nil
}

func (c ConfluenceConfig) validateCredentials() error {
	if c.Username == "" || c.APIToken == "" {
		return fmt.Errorf("config: confluence requires username and api_token (set USERNAME and API_TOKEN)")
	}
	return nil
}
