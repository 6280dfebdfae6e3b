// ABOUTME: Tests for the rack-space availability endpoint
// ABOUTME: Covers verdicts, wire formats, validation errors, and snapshot failures

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/markalston/assetdex-dcim/metrics"
	"github.com/markalston/assetdex-dcim/models"
	"github.com/markalston/assetdex-dcim/store"
)

func newScenarioEnv(t *testing.T) (*testEnv, models.Server) {
	t.Helper()
	env := newTestEnv(t)
	env.seedRack(t, "R01", 42)
	web := env.seedServer(t, "web-01", "R01", 1, 2)
	env.seedServer(t, "db-01", "R01", 40, 3)
	return env, web
}

func TestCheckRackSpace_ConflictWithSuggestion(t *testing.T) {
	env, web := newScenarioEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/rack-space/check",
		`{"rack":"R01","position":"U1","unitHeight":4}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[models.AvailabilityResponse](t, w)

	if resp.Available {
		t.Fatal("Expected placement to be unavailable")
	}
	if len(resp.ConflictingServers) != 1 {
		t.Fatalf("Expected 1 conflict, got %+v", resp.ConflictingServers)
	}
	got := resp.ConflictingServers[0]
	if got.ID != web.ID || got.Hostname != "web-01" || got.Unit != "U1" || got.UnitHeight != 2 {
		t.Errorf("Unexpected conflict %+v", got)
	}

	want := []models.FreeSpace{{StartUnit: 39, EndUnit: 3, Size: 37}}
	if fmt.Sprint(resp.AvailableSpaces) != fmt.Sprint(want) {
		t.Errorf("Expected free spaces %v, got %v", want, resp.AvailableSpaces)
	}

	if resp.Suggestion == nil {
		t.Fatal("Expected a suggestion")
	}
	if resp.Suggestion.StartUnit != 36 {
		t.Errorf("Expected suggestion U36, got U%d", resp.Suggestion.StartUnit)
	}
	if !strings.Contains(resp.Suggestion.Reason, "U39-U3") {
		t.Errorf("Expected reason to name the free run, got %q", resp.Suggestion.Reason)
	}
}

func TestCheckRackSpace_Available(t *testing.T) {
	env, _ := newScenarioEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/rack-space/check",
		map[string]any{"rack": "R01", "position": 5, "unitHeight": 10})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	resp := decode[models.AvailabilityResponse](t, w)

	if !resp.Available {
		t.Error("Expected placement to be available")
	}
	if resp.Suggestion != nil {
		t.Errorf("Expected no suggestion, got %+v", resp.Suggestion)
	}
	if len(resp.AvailableSpaces) != 1 {
		t.Errorf("Expected free spaces to be reported, got %v", resp.AvailableSpaces)
	}
	if strings.Contains(body, "conflictingServers") {
		t.Errorf("conflictingServers should be omitted when available: %s", body)
	}
	assertCheckCount(t, env, "available", 1)
}

func TestCheckRackSpace_ExcludeSelf(t *testing.T) {
	env, web := newScenarioEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/rack-space/check", models.AvailabilityRequest{
		Rack: "R01", Position: 2, UnitHeight: 2, ExcludeServerID: web.ID,
	})

	resp := decode[models.AvailabilityResponse](t, w)
	if !resp.Available {
		t.Errorf("Moving a server onto its own units should be available, got %+v", resp)
	}
}

func TestCheckRackSpace_BadRequests(t *testing.T) {
	env, _ := newScenarioEnv(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed JSON", `{"rack":`, http.StatusBadRequest},
		{"bad unit string", `{"rack":"R01","position":"rack-five","unitHeight":1}`, http.StatusBadRequest},
		{"zero unit string", `{"rack":"R01","position":"U0","unitHeight":1}`, http.StatusBadRequest},
		{"missing rack", `{"position":1,"unitHeight":1}`, http.StatusBadRequest},
		{"zero height", `{"rack":"R01","position":1,"unitHeight":0}`, http.StatusBadRequest},
		{"past top of rack", `{"rack":"R01","position":41,"unitHeight":4}`, http.StatusBadRequest},
		{"unknown rack", `{"rack":"R99","position":1,"unitHeight":1}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/rack-space/check", tt.body)
			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
			resp := decode[models.ErrorResponse](t, w)
			if resp.Code != tt.want || resp.Error == "" {
				t.Errorf("Unexpected error body %+v", resp)
			}
		})
	}
}

func TestCheckRackSpace_BodyTooLarge(t *testing.T) {
	env, _ := newScenarioEnv(t)

	body := `{"rack":"` + strings.Repeat("R", maxRequestBodySize) + `"}`
	w := env.do(t, http.MethodPost, "/api/v1/rack-space/check", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	resp := decode[models.ErrorResponse](t, w)
	if resp.Error != "Request body too large" {
		t.Errorf("Expected body size error, got %q", resp.Error)
	}
}

func TestCheckRackSpace_SnapshotUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := NewMockInventory(ctrl)
	inv.EXPECT().Snapshot(gomock.Any(), "R01").
		Return(models.RackSnapshot{}, fmt.Errorf("%w: disk I/O error", store.ErrSnapshotUnavailable))
	env := newTestEnvWith(t, inv, nil, metrics.New(), nil)

	w := env.do(t, http.MethodPost, "/api/v1/rack-space/check",
		`{"rack":"R01","position":1,"unitHeight":1}`)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "available\":") {
		t.Errorf("No verdict may be returned when occupancy is unknown: %s", body)
	}
	resp := decode[models.ErrorResponse](t, w)
	if resp.Error != "could not check availability" {
		t.Errorf("Unexpected error %q", resp.Error)
	}
	assertCheckCount(t, env, "unavailable", 1)
}

// scrapeMetrics renders the environment's registry in exposition format.
func scrapeMetrics(t *testing.T, env *testEnv) string {
	t.Helper()
	w := httptest.NewRecorder()
	env.metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func assertCheckCount(t *testing.T, env *testEnv, result string, want int) {
	t.Helper()
	line := fmt.Sprintf(`assetdex_availability_checks_total{result=%q} %d`, result, want)
	if body := scrapeMetrics(t, env); !strings.Contains(body, line) {
		t.Errorf("Expected %q in metrics, got:\n%s", line, body)
	}
}
