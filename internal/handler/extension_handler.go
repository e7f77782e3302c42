package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/service/extension"
	"github.com/vetly/activity-scheduling/internal/service/notify"
)

type ExtensionHandler struct {
	orchestrator  extension.Orchestrator
	prompts       domain.PromptStore
	scheduler     notify.Scheduler
	clock         domain.Clock
	auditRecorder domain.ScheduleAuditRecorder
}

func NewExtensionHandler(
	orchestrator extension.Orchestrator,
	prompts domain.PromptStore,
	scheduler notify.Scheduler,
	clock domain.Clock,
	auditRecorder domain.ScheduleAuditRecorder,
) *ExtensionHandler {
	return &ExtensionHandler{
		orchestrator:  orchestrator,
		prompts:       prompts,
		scheduler:     scheduler,
		clock:         clock,
		auditRecorder: auditRecorder,
	}
}

type pendingResponse struct {
	Prompts []domain.ExtensionPrompt `json:"prompts"`
	Count   int                      `json:"count"`
}

type acceptRequest struct {
	DeviceID string                 `json:"device_id" binding:"required"`
	Prompt   domain.ExtensionPrompt `json:"prompt" binding:"required"`
}

type acceptResponse struct {
	CreatedCount   int      `json:"created_count"`
	ScheduledCount int      `json:"scheduled_count"`
	ReminderHandle string   `json:"reminder_handle,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

type dismissRequest struct {
	DeviceID      string    `json:"device_id" binding:"required"`
	TemplateID    int64     `json:"template_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

// HandlePending sweeps expired state for the device before listing, the
// way the app did on foreground.
func (h *ExtensionHandler) HandlePending(c *gin.Context) {
	ctx := c.Request.Context()

	deviceID := c.Query("device_id")
	if deviceID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "device_id query parameter is required")
		return
	}

	now := h.clock.Now()

	if removed, err := h.prompts.CleanupExpired(ctx, deviceID, now); err != nil {
		slog.WarnContext(ctx, "prompt cleanup failed",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
	} else if removed > 0 {
		slog.InfoContext(ctx, "stale extension prompts removed",
			slog.String("device_id", deviceID),
			slog.Int("removed", removed),
		)
	}

	if removed, err := h.scheduler.CleanupExpired(ctx, deviceID); err != nil {
		slog.WarnContext(ctx, "notification record cleanup failed",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
	} else if removed > 0 {
		slog.InfoContext(ctx, "expired notification records removed",
			slog.String("device_id", deviceID),
			slog.Int("removed", removed),
		)
	}

	prompts, err := h.prompts.Pending(ctx, deviceID, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list pending prompts",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to list pending prompts")
		return
	}

	if prompts == nil {
		prompts = []domain.ExtensionPrompt{}
	}
	c.JSON(http.StatusOK, pendingResponse{
		Prompts: prompts,
		Count:   len(prompts),
	})
}

func (h *ExtensionHandler) HandleAccept(c *gin.Context) {
	ctx := c.Request.Context()

	var req acceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.orchestrator.Accept(ctx, req.DeviceID, req.Prompt)
	if err != nil {
		h.audit(ctx, req.DeviceID, "extension_accept", req.Prompt.TemplateID, "failed", err.Error())

		switch {
		case errors.Is(err, domain.ErrPetNotFound):
			respondError(c, http.StatusNotFound, "pet_not_found", "the pet behind this prompt no longer exists")
		case errors.Is(err, domain.ErrNothingExtended):
			respondError(c, http.StatusUnprocessableEntity, "nothing_extended", err.Error())
		default:
			slog.ErrorContext(ctx, "extension accept failed",
				slog.String("device_id", req.DeviceID),
				slog.Int64("template_id", req.Prompt.TemplateID),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "processing_error", "failed to extend series")
		}
		return
	}

	h.audit(ctx, req.DeviceID, "extension_accept", req.Prompt.TemplateID, "accepted", "")

	c.JSON(http.StatusOK, acceptResponse{
		CreatedCount:   len(result.CreatedTemplates),
		ScheduledCount: result.ScheduledCount,
		ReminderHandle: result.ReminderHandle,
		Errors:         result.Errors,
	})
}

func (h *ExtensionHandler) HandleDismiss(c *gin.Context) {
	ctx := c.Request.Context()

	var req dismissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.orchestrator.Dismiss(ctx, req.DeviceID, req.TemplateID, req.ScheduledDate); err != nil {
		slog.ErrorContext(ctx, "extension dismiss failed",
			slog.String("device_id", req.DeviceID),
			slog.Int64("template_id", req.TemplateID),
			slog.String("error", err.Error()),
		)
		h.audit(ctx, req.DeviceID, "extension_dismiss", req.TemplateID, "failed", err.Error())
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to dismiss prompt")
		return
	}

	h.audit(ctx, req.DeviceID, "extension_dismiss", req.TemplateID, "dismissed", "")

	c.JSON(http.StatusOK, gin.H{"dismissed": true})
}

func (h *ExtensionHandler) audit(ctx context.Context, deviceID, operation string, templateID int64, outcome, reason string) {
	if h.auditRecorder == nil {
		return
	}
	record := domain.ScheduleAuditRecord{
		DeviceID:   deviceID,
		Operation:  operation,
		TemplateID: templateID,
		Outcome:    outcome,
		Reason:     reason,
		OccurredAt: h.clock.Now(),
	}
	if err := h.auditRecorder.RecordBatch(ctx, []domain.ScheduleAuditRecord{record}); err != nil {
		slog.WarnContext(ctx, "failed to record schedule audit",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
	}
}
