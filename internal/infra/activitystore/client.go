// Package activitystore is the HTTP client for the Vetly app backend,
// which owns pets and activity templates.
package activitystore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/observability/logging"
	"github.com/vetly/activity-scheduling/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	codec      *localtime.Codec
}

func NewClient(baseURL string, codec *localtime.Codec) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		codec: codec,
	}
}

func (c *Client) Create(ctx context.Context, input CreateActivityInput) (*domain.ActivityTemplate, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create request: %w", err)
	}

	slog.DebugContext(ctx, "creating activity in store",
		slog.Int64("pet_id", input.PetID),
		slog.String("category", input.Category),
	)

	respBody, err := c.do(ctx, http.MethodPost, "/api/v1/activities", nil, body, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var created ActivityResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("failed to decode create response: %w", err)
	}

	template, err := created.ToDomain(c.codec)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "activity created in store",
		slog.Int64("activity_id", template.ID),
	)
	return &template, nil
}

func (c *Client) Update(ctx context.Context, id int64, patch UpdateActivityInput) (*domain.ActivityTemplate, error) {
	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update request: %w", err)
	}

	path := fmt.Sprintf("/api/v1/activities/%d", id)
	respBody, err := c.do(ctx, http.MethodPatch, path, nil, body, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var updated ActivityResponse
	if err := json.Unmarshal(respBody, &updated); err != nil {
		return nil, fmt.Errorf("failed to decode update response: %w", err)
	}

	template, err := updated.ToDomain(c.codec)
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/v1/activities/%d", id)
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusOK, http.StatusNoContent)
	return err
}

func (c *Client) List(ctx context.Context, petID *int64) ([]domain.ActivityTemplate, error) {
	var query url.Values
	if petID != nil {
		query = url.Values{}
		query.Set("pet_id", strconv.FormatInt(*petID, 10))
	}

	respBody, err := c.do(ctx, http.MethodGet, "/api/v1/activities", query, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var listResp ActivityListResponse
	if err := json.Unmarshal(respBody, &listResp); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}

	templates := make([]domain.ActivityTemplate, 0, len(listResp.Activities))
	for _, activity := range listResp.Activities {
		template, err := activity.ToDomain(c.codec)
		if err != nil {
			slog.WarnContext(ctx, "skipping activity with malformed repeat rule",
				slog.Int64("activity_id", activity.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		templates = append(templates, template)
	}

	slog.DebugContext(ctx, "fetched activities from store",
		slog.Int("count", len(templates)),
	)
	return templates, nil
}

func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	respBody, err := c.do(ctx, http.MethodGet, "/api/v1/pets", nil, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var listResp PetListResponse
	if err := json.Unmarshal(respBody, &listResp); err != nil {
		return nil, fmt.Errorf("failed to decode pet list response: %w", err)
	}
	return listResp.Pets, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, okStatuses ...int) ([]byte, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	ctx, span := tracing.StartExternalAPISpan(ctx, method+" "+path, u.String())
	defer span.End()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to send request to activity store",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	ok := false
	for _, status := range okStatuses {
		if resp.StatusCode == status {
			ok = true
			break
		}
	}
	if !ok {
		slog.ErrorContext(ctx, "unexpected status code from activity store",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return respBody, nil
}
