package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/observability/metrics"
	"github.com/vetly/activity-scheduling/internal/observability/tracing"
	"github.com/vetly/activity-scheduling/internal/service/virtual"
)

type OccurrenceHandler struct {
	generator       virtual.Generator
	codec           *localtime.Codec
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewOccurrenceHandler(
	generator virtual.Generator,
	codec *localtime.Codec,
	scheduleMetrics *metrics.ScheduleMetrics,
) *OccurrenceHandler {
	return &OccurrenceHandler{
		generator:       generator,
		codec:           codec,
		scheduleMetrics: scheduleMetrics,
	}
}

type expandRequest struct {
	Activities []activitystore.ActivityResponse `json:"activities"`

	// Optional filters; date takes precedence over the range pair.
	Date       string `json:"date,omitempty"`
	RangeStart string `json:"range_start,omitempty"`
	RangeEnd   string `json:"range_end,omitempty"`
}

type occurrenceResponse struct {
	activitystore.ActivityResponse

	IsVirtual          bool  `json:"is_virtual"`
	OriginalActivityID int64 `json:"original_activity_id,omitempty"`
	VirtualIndex       int   `json:"virtual_index"`
}

type expandResponse struct {
	Occurrences []occurrenceResponse `json:"occurrences"`
	Count       int                  `json:"count"`
}

func (h *OccurrenceHandler) HandleExpand(c *gin.Context) {
	ctx := c.Request.Context()

	var req expandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	templates := make([]domain.ActivityTemplate, 0, len(req.Activities))
	for _, activity := range req.Activities {
		template, err := activity.ToDomain(h.codec)
		if err != nil {
			slog.WarnContext(ctx, "request activity rejected",
				slog.Int64("activity_id", activity.ID),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		templates = append(templates, template)
	}

	ctx, span := tracing.StartExpansionSpan(ctx, len(templates))
	defer span.End()

	start := time.Now()
	occurrences := h.generator.ExpandList(templates)

	if req.Date != "" {
		date, err := h.codec.ParseDate(req.Date)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid date filter: "+err.Error())
			return
		}
		occurrences = h.generator.FilterByDate(occurrences, date)
	} else if req.RangeStart != "" && req.RangeEnd != "" {
		rangeStart, err := h.codec.ParseDate(req.RangeStart)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid range_start filter: "+err.Error())
			return
		}
		rangeEnd, err := h.codec.ParseDate(req.RangeEnd)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid range_end filter: "+err.Error())
			return
		}
		occurrences = h.generator.FilterByRange(occurrences, rangeStart, rangeEnd)
	}

	duration := time.Since(start)
	if h.scheduleMetrics != nil {
		byUnit := make(map[string]int)
		for _, occ := range occurrences {
			byUnit[occ.Repeat.Kind.String()]++
		}
		for unit, count := range byUnit {
			h.scheduleMetrics.RecordOccurrencesGenerated(ctx, unit, count)
		}
		h.scheduleMetrics.RecordExpansionDuration(ctx, duration)
	}
	tracing.RecordExpansionResult(span, len(occurrences), nil)

	slog.DebugContext(ctx, "occurrences expanded",
		slog.Int("templates", len(templates)),
		slog.Int("occurrences", len(occurrences)),
		slog.Duration("duration", duration),
	)

	c.JSON(http.StatusOK, expandResponse{
		Occurrences: toOccurrenceResponses(occurrences),
		Count:       len(occurrences),
	})
}

func toOccurrenceResponses(occurrences []domain.VirtualOccurrence) []occurrenceResponse {
	out := make([]occurrenceResponse, 0, len(occurrences))
	for _, occ := range occurrences {
		resp := occurrenceResponse{
			ActivityResponse: activitystore.ActivityResponse{
				ID:       occ.ID,
				PetID:    occ.PetID,
				Category: occ.Category.String(),
				Title:    occ.Title,
				Notes:    occ.Notes,
				FoodType: occ.FoodType,
				Quantity: occ.Quantity,
				Duration: occ.Duration,
				Date:     occ.Date,
				Time:     occ.Time,
				Notify:   occ.Notify,
			},
			IsVirtual:          occ.IsVirtual,
			OriginalActivityID: occ.OriginalActivityID,
			VirtualIndex:       occ.VirtualIndex,
		}
		resp.RepeatType = occ.Repeat.Kind.String()
		if occ.Repeat.IsRepeating() {
			resp.RepeatInterval = occ.Repeat.Interval
		}
		out = append(out, resp)
	}
	return out
}
