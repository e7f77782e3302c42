package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/service/notify"
)

type TemplateHandler struct {
	store     activitystore.ActivityStore
	scheduler notify.Scheduler
	prompts   domain.PromptStore
}

func NewTemplateHandler(
	store activitystore.ActivityStore,
	scheduler notify.Scheduler,
	prompts domain.PromptStore,
) *TemplateHandler {
	return &TemplateHandler{
		store:     store,
		scheduler: scheduler,
		prompts:   prompts,
	}
}

// HandleDelete removes a template and everything hanging off it: device
// notifications of both classes, queued prompts, then the stored record.
// Cleanup failures are logged but do not block the delete.
func (h *TemplateHandler) HandleDelete(c *gin.Context) {
	ctx := c.Request.Context()

	templateID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "template id must be an integer")
		return
	}

	deviceID := c.Query("device_id")
	if deviceID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "device_id query parameter is required")
		return
	}

	if err := h.scheduler.PurgeTemplate(ctx, deviceID, templateID); err != nil {
		slog.WarnContext(ctx, "failed to purge notifications for deleted template",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", templateID),
			slog.String("error", err.Error()),
		)
	}

	if err := h.prompts.RemoveAllForTemplate(ctx, deviceID, templateID); err != nil {
		slog.WarnContext(ctx, "failed to remove prompts for deleted template",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", templateID),
			slog.String("error", err.Error()),
		)
	}

	if err := h.store.Delete(ctx, templateID); err != nil {
		slog.ErrorContext(ctx, "failed to delete template",
			slog.Int64("template_id", templateID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "store_error", "failed to delete template")
		return
	}

	slog.InfoContext(ctx, "template deleted",
		slog.String("device_id", deviceID),
		slog.Int64("template_id", templateID),
	)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
