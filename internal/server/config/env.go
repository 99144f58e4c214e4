package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gardenkeeper/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays values from environment variables. A dotenv file is
// loaded first (the -env flag, or ./.env when present); variables already set
// in the process environment win over the file.
//
// Recognized variables:
//
//	PORT                  listen port, becomes HTTPAddr ":<PORT>"
//	HTTP_ADDR             full bind address, wins over PORT
//	STORAGE_DRIVER        postgres | mongo | memory
//	DATABASE_URL          DSN / URI
//	DATABASE_NAME         MongoDB database name
//	JWT_SECRET            HMAC secret
//	JWT_EXPIRY            token validity ("168h", "7d")
//	BCRYPT_COST           bcrypt work factor
//	LOG_LEVEL, LOG_BACKEND
//	CORS_ALLOWED_ORIGINS  comma separated
//	AUTH_RATE_LIMIT       requests per minute on /api/auth
//
// Malformed numeric or duration values panic.
func parseEnv(config *Config) {
	loadDotenv()

	if v := os.Getenv("PORT"); v != "" {
		config.HTTPAddr = ":" + v
	}
	lookup("HTTP_ADDR", &config.HTTPAddr)
	lookup("STORAGE_DRIVER", &config.StorageDriver)
	lookup("DATABASE_URL", &config.DatabaseDSN)
	lookup("DATABASE_NAME", &config.DatabaseName)
	lookup("JWT_SECRET", &config.SecretKey)
	lookup("LOG_LEVEL", &config.LogLevel)
	lookup("LOG_BACKEND", &config.LogBackend)

	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		d, err := ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		config.BcryptCost = mustAtoi(v)
	}
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		config.AuthRateLimit = mustAtoi(v)
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		config.CORSAllowedOrigins = origins
	}
}

func loadDotenv() {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

func lookup(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}
