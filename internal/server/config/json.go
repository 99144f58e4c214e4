package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gardenkeeper/internal/flagx"
)

// JsonConfig is the on-disk shape of the configuration file. Every field is
// optional: only keys present in the file override the current value.
type JsonConfig struct {
	HTTPAddr              *string   `json:"http_addr"`
	StorageDriver         *string   `json:"storage_driver"`
	DatabaseDSN           *string   `json:"database_dsn"`
	DatabaseName          *string   `json:"database_name"`
	SecretKey             *string   `json:"secret_key"`
	TokenValidityDuration *Duration `json:"token_validity_duration"`
	BcryptCost            *int      `json:"bcrypt_cost"`
	LogLevel              *string   `json:"log_level"`
	LogBackend            *string   `json:"log_backend"`
	CORSAllowedOrigins    []string  `json:"cors_allowed_origins"`
	AuthRateLimit         *int      `json:"auth_rate_limit"`
	ShutdownTimeout       *Duration `json:"shutdown_timeout"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag into config. Without the flag nothing is loaded. An unreadable
// file or invalid JSON panics: a broken config must stop the process early.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.DatabaseName, c.DatabaseName)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogBackend, c.LogBackend)

	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.AuthRateLimit != nil {
		config.AuthRateLimit = *c.AuthRateLimit
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
