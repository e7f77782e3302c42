package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ActivityServiceURL string
	Port               string
	LogLevel           slog.Level
	DeviceGateway      DeviceGatewayConfig
	Redis              *RedisConfig
	Schedule           *ScheduleConfig
}

type DeviceGatewayConfig struct {
	PushGatewayURL string

	GCloudProjectID     string
	GCloudLocationID    string
	GCloudQueueID       string
	GCloudTargetURL     string
	GCloudPermissionURL string

	MaxRetries int
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	maxRetries := 3
	if v := os.Getenv("DEVICE_GATEWAY_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	scheduleConfig, err := LoadScheduleConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ActivityServiceURL: os.Getenv("ACTIVITY_SERVICE_URL"),
		Port:               port,
		LogLevel:           parseLogLevel(os.Getenv("LOG_LEVEL")),
		DeviceGateway: DeviceGatewayConfig{
			PushGatewayURL: os.Getenv("PUSH_GATEWAY_URL"),

			GCloudProjectID:     os.Getenv("GCLOUD_PROJECT_ID"),
			GCloudLocationID:    os.Getenv("GCLOUD_LOCATION_ID"),
			GCloudQueueID:       os.Getenv("GCLOUD_QUEUE_ID"),
			GCloudTargetURL:     os.Getenv("GCLOUD_TARGET_URL"),
			GCloudPermissionURL: os.Getenv("GCLOUD_PERMISSION_URL"),

			MaxRetries: maxRetries,
		},
		Redis:    redisConfig,
		Schedule: scheduleConfig,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
