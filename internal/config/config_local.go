//go:build !gcloud

package config

import "errors"

func (c *DeviceGatewayConfig) Validate() error {
	if c.PushGatewayURL == "" {
		return errors.New("PUSH_GATEWAY_URL is required")
	}
	return nil
}
