//go:build gcloud

package devicegw

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/vetly/activity-scheduling/internal/domain"
)

// CloudTasksGateway schedules device notifications as Cloud Tasks. Each
// task targets the delivery worker, which decodes the payload and drives
// the actual device schedule. Task IDs embed the device ID so the pending
// set of one device can be enumerated and cancelled.
type CloudTasksGateway struct {
	client     *cloudtasks.Client
	httpClient *http.Client

	projectID  string
	locationID string
	queueID    string
	targetURL  string
	// permissionURL is the delivery worker's permission-check endpoint.
	permissionURL string
	maxRetries    int
}

type CloudTasksConfig struct {
	ProjectID     string
	LocationID    string
	QueueID       string
	TargetURL     string
	PermissionURL string
	MaxRetries    int
}

func NewCloudTasksGateway(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksGateway, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &CloudTasksGateway{
		client:        client,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		projectID:     cfg.ProjectID,
		locationID:    cfg.LocationID,
		queueID:       cfg.QueueID,
		targetURL:     cfg.TargetURL,
		permissionURL: cfg.PermissionURL,
		maxRetries:    maxRetries,
	}, nil
}

func (c *CloudTasksGateway) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		c.projectID, c.locationID, c.queueID)
}

func (c *CloudTasksGateway) taskID(deviceID, handle string) string {
	return fmt.Sprintf("%s--%s", deviceID, handle)
}

func (c *CloudTasksGateway) taskPath(deviceID, handle string) string {
	return fmt.Sprintf("%s/tasks/%s", c.queuePath(), c.taskID(deviceID, handle))
}

func (c *CloudTasksGateway) Schedule(ctx context.Context, deviceID string, content domain.NotificationContent, trigger domain.Trigger) (string, error) {
	handle := uuid.NewString()

	payload, err := json.Marshal(TaskPayload{
		DeviceID: deviceID,
		Handle:   handle,
		Content:  content,
		Trigger:  encodeTrigger(trigger),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := &taskspb.Task{
		Name: c.taskPath(deviceID, handle),
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}

	if trigger.Type == domain.TriggerOneShot && !trigger.At.IsZero() {
		task.ScheduleTime = timestamppb.New(trigger.At)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: c.queuePath(),
		Task:   task,
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying notification task creation",
				slog.String("device_id", deviceID),
				slog.String("handle", handle),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		created, err := c.client.CreateTask(ctx, req)
		if err == nil {
			slog.Info("notification task registered to Cloud Tasks",
				slog.String("task_name", created.Name),
				slog.String("device_id", deviceID),
				slog.String("handle", handle),
			)
			return handle, nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for notification task creation",
		slog.String("device_id", deviceID),
		slog.String("handle", handle),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return "", fmt.Errorf("failed to create task after %d retries: %w", c.maxRetries, lastErr)
}

func (c *CloudTasksGateway) Cancel(ctx context.Context, deviceID, handle string) error {
	req := &taskspb.DeleteTaskRequest{
		Name: c.taskPath(deviceID, handle),
	}

	if err := c.client.DeleteTask(ctx, req); err != nil {
		if status.Code(err) == codes.NotFound {
			slog.Info("task not found in Cloud Tasks (may have fired)",
				slog.String("device_id", deviceID),
				slog.String("handle", handle),
			)
			return nil
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	slog.Info("notification task deleted from Cloud Tasks",
		slog.String("device_id", deviceID),
		slog.String("handle", handle),
	)
	return nil
}

func (c *CloudTasksGateway) ListScheduled(ctx context.Context, deviceID string) ([]domain.ScheduledNotification, error) {
	prefix := fmt.Sprintf("%s/tasks/%s--", c.queuePath(), deviceID)

	req := &taskspb.ListTasksRequest{
		Parent:       c.queuePath(),
		ResponseView: taskspb.Task_FULL,
	}

	var scheduled []domain.ScheduledNotification
	it := c.client.ListTasks(ctx, req)
	for {
		task, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		if !strings.HasPrefix(task.Name, prefix) {
			continue
		}

		var payload TaskPayload
		if err := json.Unmarshal(task.GetHttpRequest().GetBody(), &payload); err != nil {
			slog.Warn("skipping task with undecodable payload",
				slog.String("task_name", task.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		scheduled = append(scheduled, domain.ScheduledNotification{
			Handle:  payload.Handle,
			Content: payload.Content,
		})
	}
	return scheduled, nil
}

func (c *CloudTasksGateway) HasPermission(ctx context.Context, deviceID string) (bool, error) {
	url := fmt.Sprintf("%s/v1/devices/%s/permission", c.permissionURL, deviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var permResp PushPermissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&permResp); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return permResp.Granted, nil
}

func (c *CloudTasksGateway) Close() error {
	return c.client.Close()
}
