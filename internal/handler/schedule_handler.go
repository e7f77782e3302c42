package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/observability/tracing"
	"github.com/vetly/activity-scheduling/internal/service/extension"
	"github.com/vetly/activity-scheduling/internal/service/notify"
)

type ScheduleHandler struct {
	scheduler     notify.Scheduler
	planner       extension.Planner
	codec         *localtime.Codec
	clock         domain.Clock
	auditRecorder domain.ScheduleAuditRecorder
}

func NewScheduleHandler(
	scheduler notify.Scheduler,
	planner extension.Planner,
	codec *localtime.Codec,
	clock domain.Clock,
	auditRecorder domain.ScheduleAuditRecorder,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduler:     scheduler,
		planner:       planner,
		codec:         codec,
		clock:         clock,
		auditRecorder: auditRecorder,
	}
}

type scheduleRequest struct {
	DeviceID string                         `json:"device_id" binding:"required"`
	PetName  string                         `json:"pet_name"`
	Activity activitystore.ActivityResponse `json:"activity" binding:"required"`
}

type scheduleResponse struct {
	Scheduled bool   `json:"scheduled"`
	Handle    string `json:"handle,omitempty"`
}

type cancelRequest struct {
	DeviceID   string `json:"device_id" binding:"required"`
	TemplateID int64  `json:"template_id" binding:"required"`
}

func (h *ScheduleHandler) HandleSchedule(c *gin.Context) {
	h.schedule(c, false)
}

// HandleReschedule always tears down the template's previous schedule,
// even when the replacement ends up skipped.
func (h *ScheduleHandler) HandleReschedule(c *gin.Context) {
	h.schedule(c, true)
}

func (h *ScheduleHandler) schedule(c *gin.Context, replace bool) {
	ctx := c.Request.Context()

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	template, err := req.Activity.ToDomain(h.codec)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	occ := domain.TemplateOccurrence(template)

	ctx, span := tracing.StartScheduleSpan(ctx, req.DeviceID, template.ID)
	defer span.End()

	operation := "schedule"
	scheduleFn := h.scheduler.Schedule
	if replace {
		operation = "reschedule"
		scheduleFn = h.scheduler.Reschedule
	}

	handle, err := scheduleFn(ctx, req.DeviceID, occ, req.PetName)
	if err != nil {
		slog.ErrorContext(ctx, "failed to schedule notification",
			slog.String("device_id", req.DeviceID),
			slog.Int64("template_id", template.ID),
			slog.String("error", err.Error()),
		)
		h.audit(ctx, req.DeviceID, operation, template.ID, "failed", err.Error())
		respondError(c, http.StatusBadGateway, "gateway_error", "failed to schedule notification")
		return
	}

	outcome := "scheduled"
	if handle == "" {
		outcome = "skipped"
	}
	h.audit(ctx, req.DeviceID, operation, template.ID, outcome, "")

	// A live schedule on a simple repeating template also arms the
	// series-exhaustion reminder. Best-effort: the notification above is
	// already placed.
	if handle != "" && template.Repeat.IsSimple() {
		if _, err := h.planner.Plan(ctx, req.DeviceID, template); err != nil {
			slog.WarnContext(ctx, "failed to arm extension reminder",
				slog.String("device_id", req.DeviceID),
				slog.Int64("template_id", template.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	c.JSON(http.StatusOK, scheduleResponse{
		Scheduled: handle != "",
		Handle:    handle,
	})
}

func (h *ScheduleHandler) HandleCancel(c *gin.Context) {
	ctx := c.Request.Context()

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.scheduler.CancelAllForTemplate(ctx, req.DeviceID, req.TemplateID); err != nil {
		slog.ErrorContext(ctx, "failed to cancel notifications",
			slog.String("device_id", req.DeviceID),
			slog.Int64("template_id", req.TemplateID),
			slog.String("error", err.Error()),
		)
		h.audit(ctx, req.DeviceID, "cancel", req.TemplateID, "failed", err.Error())
		respondError(c, http.StatusBadGateway, "gateway_error", "failed to cancel notifications")
		return
	}

	h.audit(ctx, req.DeviceID, "cancel", req.TemplateID, "cancelled", "")

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *ScheduleHandler) audit(ctx context.Context, deviceID, operation string, templateID int64, outcome, reason string) {
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
