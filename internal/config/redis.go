package config

import (
	"crypto/tls"
	"os"
	"strconv"
)

const (
	redisAddrEnv     = "REDIS_ADDR"
	redisPasswordEnv = "REDIS_PASSWORD"
	redisDBEnv       = "REDIS_DB"
	redisTLSEnv      = "REDIS_TLS"

	defaultRedisAddr = "localhost:6379"
)

// RedisConfig covers the store backing the prompt queue and the
// notification record maps.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
}

func LoadRedisConfig() (*RedisConfig, error) {
	cfg := &RedisConfig{
		Addr:     os.Getenv(redisAddrEnv),
		Password: os.Getenv(redisPasswordEnv),
		TLS:      os.Getenv(redisTLSEnv) == "true",
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultRedisAddr
	}

	if raw := os.Getenv(redisDBEnv); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidRedisDB
		}
		cfg.DB = db
	}

	return cfg, nil
}

// TLSConfig returns the client TLS config, or nil for plaintext.
func (c *RedisConfig) TLSConfig() *tls.Config {
	if !c.TLS {
		return nil
	}
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}
