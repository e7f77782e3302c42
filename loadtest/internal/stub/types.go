package stub

import (
	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
)

type SeedRequest struct {
	Pets       []activitystore.Pet              `json:"pets,omitempty"`
	Activities []activitystore.ActivityResponse `json:"activities,omitempty"`
	Devices    map[string]SeedDevice            `json:"devices,omitempty"`
}

type SeedDevice struct {
	PermissionGranted bool `json:"permission_granted"`
}

type SetPermissionRequest struct {
	Granted bool `json:"granted"`
}
