// Package stub is an in-memory stand-in for the app backend and the device
// push gateway, used when running the scheduler locally or under load
// without the real services.
package stub

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/infra/devicegw"
)

type Handler struct {
	storage *Storage
}

func NewHandler(storage *Storage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) Register(router *gin.Engine) {
	router.POST("/stub/seed", h.HandleSeed)
	router.POST("/stub/reset", h.HandleReset)
	router.PUT("/stub/devices/:device_id/permission", h.HandleSetPermission)

	router.GET("/api/v1/pets", h.HandleListPets)
	router.GET("/api/v1/activities", h.HandleListActivities)
	router.POST("/api/v1/activities", h.HandleCreateActivity)
	router.PATCH("/api/v1/activities/:id", h.HandleUpdateActivity)
	router.DELETE("/api/v1/activities/:id", h.HandleDeleteActivity)

	router.POST("/v1/devices/:device_id/notifications", h.HandleScheduleNotification)
	router.GET("/v1/devices/:device_id/notifications", h.HandleListNotifications)
	router.DELETE("/v1/devices/:device_id/notifications/:handle", h.HandleCancelNotification)
	router.GET("/v1/devices/:device_id/permission", h.HandlePermission)
}

func (h *Handler) HandleSeed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.storage.Seed(req)

	slog.Info("seeded stub data",
		slog.Int("pets", len(req.Pets)),
		slog.Int("activities", len(req.Activities)),
		slog.Int("devices", len(req.Devices)),
	)

	c.JSON(http.StatusOK, gin.H{"status": "seed complete"})
}

func (h *Handler) HandleReset(c *gin.Context) {
	h.storage.Reset()

	slog.Info("reset stub data")

	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}

func (h *Handler) HandleSetPermission(c *gin.Context) {
	var req SetPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.storage.SetPermission(c.Param("device_id"), req.Granted)
	c.JSON(http.StatusOK, gin.H{"granted": req.Granted})
}

func (h *Handler) HandleListPets(c *gin.Context) {
	c.JSON(http.StatusOK, activitystore.PetListResponse{Pets: h.storage.ListPets()})
}

func (h *Handler) HandleListActivities(c *gin.Context) {
	var petID *int64
	if raw := c.Query("pet_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet_id: " + raw})
			return
		}
		petID = &id
	}

	activities := h.storage.ListActivities(petID)
	c.JSON(http.StatusOK, activitystore.ActivityListResponse{
		Activities: activities,
		Count:      len(activities),
	})
}

func (h *Handler) HandleCreateActivity(c *gin.Context) {
	var input activitystore.CreateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := h.storage.CreateActivity(input)
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) HandleUpdateActivity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	var patch activitystore.UpdateActivityInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, ok := h.storage.UpdateActivity(id, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) HandleDeleteActivity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	if !h.storage.DeleteActivity(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleScheduleNotification(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req devicegw.PushScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	handle := h.storage.AddNotification(deviceID, req)

	slog.Debug("stub scheduled notification",
		slog.String("device_id", deviceID),
		slog.String("handle", handle),
		slog.String("trigger_type", req.Trigger.Type),
	)

	c.JSON(http.StatusCreated, devicegw.PushScheduleResponse{Handle: handle})
}

func (h *Handler) HandleListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, devicegw.PushListResponse{
		Notifications: h.storage.ListNotifications(c.Param("device_id")),
	})
}

func (h *Handler) HandleCancelNotification(c *gin.Context) {
	deviceID := c.Param("device_id")
	handle := c.Param("handle")

	if !h.storage.RemoveNotification(deviceID, handle) {
		c.JSON(http.StatusNotFound, gin.H{"error": "handle not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandlePermission(c *gin.Context) {
	c.JSON(http.StatusOK, devicegw.PushPermissionResponse{
		Granted: h.storage.Permission(c.Param("device_id")),
	})
}
