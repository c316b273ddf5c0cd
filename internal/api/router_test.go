package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/veldrin/notable2zim/internal/models"
)

func TestHealthLive(t *testing.T) {
	r := NewRouter(NewStatus())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestStatus_BeforeFirstRun(t *testing.T) {
	r := NewRouter(NewStatus())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if string(body["last_run"]) != "null" {
		t.Errorf("last_run = %s", body["last_run"])
	}
}

func TestStatus_AfterRun(t *testing.T) {
	status := NewStatus()
	status.Set(RunStatus{
		StartedAt:  time.Now().Add(-time.Second),
		FinishedAt: time.Now(),
		Summary:    models.Summary{Total: 3, Imported: 2, Skipped: 1},
	})
	r := NewRouter(status)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var body struct {
		LastRun *RunStatus `json:"last_run"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.LastRun == nil {
		t.Fatal("last_run missing")
	}
	if body.LastRun.Summary.Imported != 2 {
		t.Errorf("summary = %+v", body.LastRun.Summary)
	}
}

func TestStatus_LastReturnsCopy(t *testing.T) {
	status := NewStatus()
	status.Set(RunStatus{Summary: models.Summary{Total: 1}})

	got := status.Last()
	got.Summary.Total = 99

	if status.Last().Summary.Total != 1 {
		t.Error("Last must return a copy, not the shared record")
	}
}
