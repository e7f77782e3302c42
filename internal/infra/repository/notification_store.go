package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vetly/activity-scheduling/internal/domain"
)

const (
	recordKeyPrefix = "schedule:records:"

	recordMapTTL = 90 * 24 * time.Hour
)

type notificationRecord struct {
	TemplateID  int64     `json:"template_id"`
	Handle      string    `json:"handle"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type notificationStore struct {
	client *redis.Client
}

func NewNotificationStore(client *redis.Client) domain.NotificationStore {
	return &notificationStore{
		client: client,
	}
}

func (s *notificationStore) Save(ctx context.Context, deviceID string, record domain.NotificationRecord) error {
	key := recordKeyPrefix + deviceID

	data, err := json.Marshal(notificationRecord{
		TemplateID:  record.TemplateID,
		Handle:      record.Handle,
		ScheduledAt: record.ScheduledAt,
		CreatedAt:   record.CreatedAt,
	})
	if err != nil {
		return ErrInvalidRecordData
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, recordField(record.TemplateID), data)
	pipe.Expire(ctx, key, recordMapTTL)

	_, err = pipe.Exec(ctx)
	return err
}

func (s *notificationStore) Get(ctx context.Context, deviceID string, templateID int64) (*domain.NotificationRecord, error) {
	key := recordKeyPrefix + deviceID

	data, err := s.client.HGet(ctx, key, recordField(templateID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	var record notificationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidRecordData
	}

	return &domain.NotificationRecord{
		TemplateID:  record.TemplateID,
		Handle:      record.Handle,
		ScheduledAt: record.ScheduledAt,
		CreatedAt:   record.CreatedAt,
	}, nil
}

func (s *notificationStore) Delete(ctx context.Context, deviceID string, templateID int64) error {
	key := recordKeyPrefix + deviceID
	return s.client.HDel(ctx, key, recordField(templateID)).Err()
}

func (s *notificationStore) List(ctx context.Context, deviceID string) ([]domain.NotificationRecord, error) {
	key := recordKeyPrefix + deviceID

	values, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	records := make([]domain.NotificationRecord, 0, len(values))
	for _, raw := range values {
		var record notificationRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, ErrInvalidRecordData
		}
		records = append(records, domain.NotificationRecord{
			TemplateID:  record.TemplateID,
			Handle:      record.Handle,
			ScheduledAt: record.ScheduledAt,
			CreatedAt:   record.CreatedAt,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].TemplateID < records[j].TemplateID
	})

	return records, nil
}

func recordField(templateID int64) string {
	return strconv.FormatInt(templateID, 10)
}
