//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vetly/activity-scheduling/internal/config"
	"github.com/vetly/activity-scheduling/internal/infra/devicegw"
	"github.com/vetly/activity-scheduling/internal/observability"
	"github.com/vetly/activity-scheduling/internal/observability/logging"
)

func initDeviceGateway(_ context.Context, cfg *config.Config) (devicegw.DeviceNotifications, func() error, error) {
	gw := devicegw.NewPushGatewayClient(
		cfg.DeviceGateway.PushGatewayURL,
		cfg.DeviceGateway.MaxRetries,
	)

	slog.Info("device gateway initialized",
		slog.String("type", "push_gateway"),
		slog.String("url", cfg.DeviceGateway.PushGatewayURL),
	)

	return gw, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "activity-scheduling"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("activity-scheduling"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
