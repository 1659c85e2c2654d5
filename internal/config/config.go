package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Database *DatabaseConfig `mapstructure:"database"`
	Backup   *BackupConfig   `mapstructure:"backup"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AdminPassword      string   `mapstructure:"admin_password"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	DataDir string `mapstructure:"data_dir"`
	URL     string `mapstructure:"url"`
}

type BackupConfig struct {
	RetentionDays int `mapstructure:"retention_days"`
	HourUTC       int `mapstructure:"hour_utc"`
}

// Load reads the YAML config at path, then applies environment overrides.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Flat env names kept for deployment parity.
	envBindings := map[string]string{
		"api.environment":     "ENVIRONMENT",
		"api.port":            "PORT",
		"api.base_url":        "BASE_URL",
		"api.jwt_signing_key": "JWT_SIGNING_KEY",
		"api.admin_password":  "ADMIN_PASSWORD",
		"gin.mode":            "GIN_MODE",
		"database.data_dir":   "DATA_DIR",
		"database.url":        "DATABASE_URL",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("v.BindEnv %v -> %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if conf.API == nil || conf.API.AdminPassword == "" {
		return nil, fmt.Errorf("admin password is not configured")
	}
	if conf.API.JWTSigningKey == "" {
		return nil, fmt.Errorf("JWT signing key is not configured")
	}

	if conf.Backup == nil {
		conf.Backup = &BackupConfig{}
	}
	if conf.Backup.RetentionDays == 0 {
		conf.Backup.RetentionDays = 7
	}

	return conf, nil
}
