package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/observability/metrics"
	"github.com/vetly/activity-scheduling/internal/service/recurrence"
	"github.com/vetly/activity-scheduling/internal/service/virtual"
)

func newExpandRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec := localtime.NewCodec(time.UTC)
	generator := virtual.NewGenerator(recurrence.NewExpander(), codec)

	// Real instruments against the global (noop) meter provider, so the
	// recording path runs end to end.
	scheduleMetrics, err := metrics.NewScheduleMetrics()
	if err != nil {
		t.Fatalf("NewScheduleMetrics() error = %v", err)
	}

	h := NewOccurrenceHandler(generator, codec, scheduleMetrics)

	r := gin.New()
	r.POST("/expand", h.HandleExpand)
	return r
}

func postExpand(t *testing.T, r *gin.Engine, req expandRequest) (*httptest.ResponseRecorder, expandResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/expand", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)

	var resp expandResponse
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
	}
	return w, resp
}

func TestHandleExpandMixedUnits(t *testing.T) {
	r := newExpandRouter(t)

	w, resp := postExpand(t, r, expandRequest{
		Activities: []activitystore.ActivityResponse{
			{
				ID:             1,
				PetID:          9,
				Category:       "FEEDING",
				Title:          "Breakfast",
				Date:           "2024-01-01T08:00:00",
				Time:           "2024-01-01T08:00:00",
				Notify:         true,
				RepeatType:     "day",
				RepeatInterval: 1,
			},
			{
				ID:         2,
				PetID:      9,
				Category:   "CARE",
				Title:      "Vet visit",
				Date:       "2024-02-01T10:00:00",
				Time:       "2024-02-01T10:00:00",
				RepeatType: "none",
			},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	// Daily default horizon is 7 generated occurrences plus the template
	// itself; the non-repeating template contributes only itself.
	if resp.Count != 9 || len(resp.Occurrences) != 9 {
		t.Fatalf("count = %d, occurrences = %d, want 9", resp.Count, len(resp.Occurrences))
	}

	first := resp.Occurrences[0]
	if first.IsVirtual || first.ID != 1 || first.VirtualIndex != 0 {
		t.Errorf("occurrence 0 = %+v, want the template itself", first)
	}

	second := resp.Occurrences[1]
	if !second.IsVirtual || second.ID != 1_000_001 || second.OriginalActivityID != 1 || second.VirtualIndex != 1 {
		t.Errorf("occurrence 1 = %+v, want first derived occurrence of template 1", second)
	}
	if second.Date != "2024-01-02T08:00:00" {
		t.Errorf("occurrence 1 date = %q, want 2024-01-02T08:00:00", second.Date)
	}

	last := resp.Occurrences[8]
	if last.IsVirtual || last.ID != 2 {
		t.Errorf("occurrence 8 = %+v, want the non-repeating template", last)
	}
}

func TestHandleExpandDateFilter(t *testing.T) {
	r := newExpandRouter(t)

	w, resp := postExpand(t, r, expandRequest{
		Activities: []activitystore.ActivityResponse{
			{
				ID:             1,
				PetID:          9,
				Category:       "FEEDING",
				Title:          "Breakfast",
				Date:           "2024-01-01T08:00:00",
				Time:           "2024-01-01T08:00:00",
				Notify:         true,
				RepeatType:     "day",
				RepeatInterval: 1,
			},
		},
		Date: "2024-01-03T00:00:00",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if resp.Count != 1 {
		t.Fatalf("count = %d, want 1", resp.Count)
	}
	if got := resp.Occurrences[0].Date; got != "2024-01-03T08:00:00" {
		t.Errorf("filtered occurrence date = %q, want 2024-01-03T08:00:00", got)
	}
}

func TestHandleExpandRejectsMalformedRepeatRule(t *testing.T) {
	r := newExpandRouter(t)

	w, _ := postExpand(t, r, expandRequest{
		Activities: []activitystore.ActivityResponse{
			{
				ID:            1,
				PetID:         9,
				Category:      "FEEDING",
				Title:         "Breakfast",
				Date:          "2024-01-01T08:00:00",
				Time:          "2024-01-01T08:00:00",
				RepeatType:    "day",
				RepeatEndDate: "not-a-date",
			},
		},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
