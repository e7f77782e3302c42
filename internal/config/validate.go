package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.ActivityServiceURL == "" {
		return errors.New("ACTIVITY_SERVICE_URL environment variable is required")
	}
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	return nil
}
