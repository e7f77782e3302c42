package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vetly/activity-scheduling/internal/domain"
)

const (
	promptKeyPrefix = "schedule:prompts:"

	// Devices poll on foreground; a queue untouched for this long belongs
	// to an abandoned install.
	promptQueueTTL = 90 * 24 * time.Hour

	// Prompts the user never answered stop being offered after this.
	promptRetention = 30 * 24 * time.Hour
)

type promptRecord struct {
	TemplateID    int64     `json:"template_id"`
	TemplateTitle string    `json:"template_title"`
	RepeatUnit    string    `json:"repeat_unit"`
	Interval      int       `json:"interval"`
	PetID         int64     `json:"pet_id"`
	Category      string    `json:"category"`
	ScheduledDate time.Time `json:"scheduled_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type promptStore struct {
	client *redis.Client
}

func NewPromptStore(client *redis.Client) domain.PromptStore {
	return &promptStore{
		client: client,
	}
}

func (s *promptStore) Enqueue(ctx context.Context, deviceID string, prompt domain.ExtensionPrompt) error {
	key := promptKeyPrefix + deviceID

	record := promptRecord{
		TemplateID:    prompt.TemplateID,
		TemplateTitle: prompt.TemplateTitle,
		RepeatUnit:    prompt.RepeatUnit.String(),
		Interval:      prompt.Interval,
		PetID:         prompt.PetID,
		Category:      string(prompt.Category),
		ScheduledDate: prompt.ScheduledDate,
		CreatedAt:     prompt.CreatedAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidPromptData
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, prompt.Key(), data)
	pipe.Expire(ctx, key, promptQueueTTL)

	_, err = pipe.Exec(ctx)
	return err
}

func (s *promptStore) Pending(ctx context.Context, deviceID string, now time.Time) ([]domain.ExtensionPrompt, error) {
	prompts, err := s.loadAll(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	pending := make([]domain.ExtensionPrompt, 0, len(prompts))
	for _, p := range prompts {
		if p.Due(now) && now.Sub(p.CreatedAt) <= promptRetention {
			pending = append(pending, p)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].ScheduledDate.Before(pending[j].ScheduledDate)
	})

	return pending, nil
}

func (s *promptStore) Remove(ctx context.Context, deviceID string, templateID int64, scheduledDate time.Time) error {
	key := promptKeyPrefix + deviceID
	return s.client.HDel(ctx, key, domain.PromptKey(templateID, scheduledDate)).Err()
}

func (s *promptStore) RemoveAllForTemplate(ctx context.Context, deviceID string, templateID int64) error {
	prompts, err := s.loadAll(ctx, deviceID)
	if err != nil {
		return err
	}

	fields := make([]string, 0, len(prompts))
	for _, p := range prompts {
		if p.TemplateID == templateID {
			fields = append(fields, p.Key())
		}
	}
	if len(fields) == 0 {
		return nil
	}

	key := promptKeyPrefix + deviceID
	return s.client.HDel(ctx, key, fields...).Err()
}

func (s *promptStore) CleanupExpired(ctx context.Context, deviceID string, now time.Time) (int, error) {
	prompts, err := s.loadAll(ctx, deviceID)
	if err != nil {
		return 0, err
	}

	fields := make([]string, 0)
	for _, p := range prompts {
		if now.Sub(p.CreatedAt) > promptRetention {
			fields = append(fields, p.Key())
		}
	}
	if len(fields) == 0 {
		return 0, nil
	}

	key := promptKeyPrefix + deviceID
	if err := s.client.HDel(ctx, key, fields...).Err(); err != nil {
		return 0, err
	}

	return len(fields), nil
}

func (s *promptStore) loadAll(ctx context.Context, deviceID string) ([]domain.ExtensionPrompt, error) {
	key := promptKeyPrefix + deviceID

	values, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	prompts := make([]domain.ExtensionPrompt, 0, len(values))
	for _, raw := range values {
		var record promptRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, ErrInvalidPromptData
		}
		prompts = append(prompts, domain.ExtensionPrompt{
			TemplateID:    record.TemplateID,
			TemplateTitle: record.TemplateTitle,
			RepeatUnit:    domain.RepeatUnit(record.RepeatUnit),
			Interval:      record.Interval,
			PetID:         record.PetID,
			Category:      domain.Category(record.Category),
			ScheduledDate: record.ScheduledDate,
			CreatedAt:     record.CreatedAt,
		})
	}

	return prompts, nil
}
