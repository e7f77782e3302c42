//go:build !gcloud

package devicegw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
)

type PushGatewayClient struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

func NewPushGatewayClient(baseURL string, maxRetries int) *PushGatewayClient {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &PushGatewayClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (c *PushGatewayClient) Schedule(ctx context.Context, deviceID string, content domain.NotificationContent, trigger domain.Trigger) (string, error) {
	reqBody, err := json.Marshal(PushScheduleRequest{
		Content: content,
		Trigger: encodeTrigger(trigger),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal schedule request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/devices/%s/notifications", c.baseURL, deviceID)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying notification schedule",
				slog.String("device_id", deviceID),
				slog.Int64("template_id", content.Data.TemplateID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		handle, err := c.doSchedule(ctx, url, reqBody, deviceID)
		if err == nil {
			return handle, nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for notification schedule",
		slog.String("device_id", deviceID),
		slog.Int64("template_id", content.Data.TemplateID),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return "", fmt.Errorf("failed to schedule notification after %d retries: %w", c.maxRetries, lastErr)
}

func (c *PushGatewayClient) doSchedule(ctx context.Context, url string, reqBody []byte, deviceID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("failed to send schedule request to push gateway",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.Warn("unexpected status code from push gateway",
			slog.String("device_id", deviceID),
			slog.Int("status_code", resp.StatusCode),
		)
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var scheduleResp PushScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&scheduleResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	slog.Info("notification registered to push gateway",
		slog.String("device_id", deviceID),
		slog.String("handle", scheduleResp.Handle),
	)
	return scheduleResp.Handle, nil
}

func (c *PushGatewayClient) Cancel(ctx context.Context, deviceID, handle string) error {
	url := fmt.Sprintf("%s/v1/devices/%s/notifications/%s", c.baseURL, deviceID, handle)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		slog.Info("handle not found on push gateway (may have fired)",
			slog.String("device_id", deviceID),
			slog.String("handle", handle),
		)
		return nil
	default:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

func (c *PushGatewayClient) ListScheduled(ctx context.Context, deviceID string) ([]domain.ScheduledNotification, error) {
	url := fmt.Sprintf("%s/v1/devices/%s/notifications", c.baseURL, deviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var listResp PushListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduled := make([]domain.ScheduledNotification, 0, len(listResp.Notifications))
	for _, item := range listResp.Notifications {
		scheduled = append(scheduled, domain.ScheduledNotification{
			Handle:  item.Handle,
			Content: item.Content,
		})
	}
	return scheduled, nil
}

func (c *PushGatewayClient) HasPermission(ctx context.Context, deviceID string) (bool, error) {
	url := fmt.Sprintf("%s/v1/devices/%s/permission", c.baseURL, deviceID)

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
