//go:build gcloud

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

func initDeviceGateway(ctx context.Context, cfg *config.Config) (devicegw.DeviceNotifications, func() error, error) {
	gw, err := devicegw.NewCloudTasksGateway(ctx, devicegw.CloudTasksConfig{
		ProjectID:     cfg.DeviceGateway.GCloudProjectID,
		LocationID:    cfg.DeviceGateway.GCloudLocationID,
		QueueID:       cfg.DeviceGateway.GCloudQueueID,
		TargetURL:     cfg.DeviceGateway.GCloudTargetURL,
		PermissionURL: cfg.DeviceGateway.GCloudPermissionURL,
		MaxRetries:    cfg.DeviceGateway.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("device gateway initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.DeviceGateway.GCloudProjectID),
		slog.String("location", cfg.DeviceGateway.GCloudLocationID),
		slog.String("queue", cfg.DeviceGateway.GCloudQueueID),
	)

	cleanup := func() error {
		if err := gw.Close(); err != nil {
			slog.Warn("failed to close cloud tasks gateway", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return gw, cleanup, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "activity-scheduling"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("activity-scheduling"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
