package stub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/infra/devicegw"
)

type scheduledEntry struct {
	Handle  string
	Request devicegw.PushScheduleRequest
}

// Storage is the in-memory backing for the stub server. It stands in for
// both the app backend (pets, activity templates) and the device push
// gateway during local runs.
type Storage struct {
	mu            sync.RWMutex
	pets          map[int64]activitystore.Pet
	activities    map[int64]activitystore.ActivityResponse
	nextID        int64
	notifications map[string][]scheduledEntry // deviceID -> scheduled
	permissions   map[string]bool             // deviceID -> granted
}

func NewStorage() *Storage {
	s := &Storage{}
	s.reset()
	return s
}

func (s *Storage) reset() {
	s.pets = make(map[int64]activitystore.Pet)
	s.activities = make(map[int64]activitystore.ActivityResponse)
	s.nextID = 1
	s.notifications = make(map[string][]scheduledEntry)
	s.permissions = make(map[string]bool)
}

func (s *Storage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Storage) Seed(req SeedRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pet := range req.Pets {
		s.pets[pet.ID] = pet
	}
	for _, activity := range req.Activities {
		s.activities[activity.ID] = activity
		if activity.ID >= s.nextID {
			s.nextID = activity.ID + 1
		}
	}
	for deviceID, device := range req.Devices {
		s.permissions[deviceID] = device.PermissionGranted
	}
}

func (s *Storage) ListPets() []activitystore.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pets := make([]activitystore.Pet, 0, len(s.pets))
	for _, pet := range s.pets {
		pets = append(pets, pet)
	}
	return pets
}

func (s *Storage) ListActivities(petID *int64) []activitystore.ActivityResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]activitystore.ActivityResponse, 0, len(s.activities))
	for _, activity := range s.activities {
		if petID != nil && activity.PetID != *petID {
			continue
		}
		activities = append(activities, activity)
	}
	return activities
}

func (s *Storage) CreateActivity(input activitystore.CreateActivityInput) activitystore.ActivityResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := activitystore.ActivityResponse{
		ID:             s.nextID,
		PetID:          input.PetID,
		Category:       input.Category,
		Title:          input.Title,
		Notes:          input.Notes,
		FoodType:       input.FoodType,
		Quantity:       input.Quantity,
		Duration:       input.Duration,
		Date:           input.Date,
		Time:           input.Time,
		Notify:         input.Notify,
		RepeatType:     input.RepeatType,
		RepeatInterval: input.RepeatInterval,
		RepeatEndDate:  input.RepeatEndDate,
		RepeatCount:    input.RepeatCount,
	}
	s.nextID++
	s.activities[created.ID] = created
	return created
}

func (s *Storage) UpdateActivity(id int64, patch activitystore.UpdateActivityInput) (activitystore.ActivityResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[id]
	if !ok {
		return activitystore.ActivityResponse{}, false
	}
	if patch.Title != nil {
		activity.Title = *patch.Title
	}
	if patch.Notes != nil {
		activity.Notes = *patch.Notes
	}
	if patch.Date != nil {
		activity.Date = *patch.Date
	}
	if patch.Time != nil {
		activity.Time = *patch.Time
	}
	if patch.Notify != nil {
		activity.Notify = *patch.Notify
	}
	s.activities[id] = activity
	return activity, true
}

func (s *Storage) DeleteActivity(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.activities[id]
	delete(s.activities, id)
	return ok
}

func (s *Storage) AddNotification(deviceID string, req devicegw.PushScheduleRequest) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := uuid.New().String()
	s.notifications[deviceID] = append(s.notifications[deviceID], scheduledEntry{
		Handle:  handle,
		Request: req,
	})
	return handle
}

func (s *Storage) RemoveNotification(deviceID, handle string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.notifications[deviceID]
	for i, entry := range entries {
		if entry.Handle == handle {
			s.notifications[deviceID] = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Storage) ListNotifications(deviceID string) []devicegw.PushScheduledItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]devicegw.PushScheduledItem, 0, len(s.notifications[deviceID]))
	for _, entry := range s.notifications[deviceID] {
		items = append(items, devicegw.PushScheduledItem{
			Handle:  entry.Handle,
			Content: entry.Request.Content,
		})
	}
	return items
}

func (s *Storage) SetPermission(deviceID string, granted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissions[deviceID] = granted
}

func (s *Storage) Permission(deviceID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	granted, ok := s.permissions[deviceID]
	if !ok {
		// unseeded devices default to granted so simple runs need no setup
		return true
	}
	return granted
}
