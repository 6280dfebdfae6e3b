// ABOUTME: Tests for server inventory and placement handlers
// ABOUTME: Verifies write-time conflict rejection, self-exclusion on moves, and unracking

package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/markalston/assetdex-dcim/models"
)

func TestCreateServer_Unracked(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/servers", models.CreateServerRequest{
		Hostname: "spare-01", Model: "R650", Serial: "SN123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	srv := decode[models.Server](t, w)
	if srv.ID == "" || srv.Racked() || srv.UnitHeight != 1 {
		t.Errorf("Unexpected server %+v", srv)
	}
}

func TestCreateServer_Conflict(t *testing.T) {
	env, _ := newScenarioEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/servers", map[string]any{
		"hostname": "web-02", "rack": "R01", "position": "U1", "unitHeight": 4,
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("Expected status 409, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[models.AvailabilityResponse](t, w)
	if resp.Available || len(resp.ConflictingServers) != 1 {
		t.Errorf("Expected conflict verdict, got %+v", resp)
	}
	if resp.Suggestion == nil || resp.Suggestion.StartUnit != 36 {
		t.Errorf("Expected suggestion U36, got %+v", resp.Suggestion)
	}
	if !strings.Contains(scrapeMetrics(t, env), `assetdex_placement_writes_total{operation="create",result="conflict"} 1`) {
		t.Error("Expected conflicting create to be counted")
	}
}

func TestCreateServer_Validation(t *testing.T) {
	env, _ := newScenarioEnv(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing hostname", `{"unitHeight":1}`, http.StatusBadRequest},
		{"invalid hostname", `{"hostname":"web 01"}`, http.StatusBadRequest},
		{"rack without position", `{"hostname":"web-03","rack":"R01"}`, http.StatusBadRequest},
		{"position without rack", `{"hostname":"web-03","position":"U5"}`, http.StatusBadRequest},
		{"negative height", `{"hostname":"web-03","unitHeight":-2}`, http.StatusBadRequest},
		{"taller than any rack", `{"hostname":"web-03","unitHeight":101}`, http.StatusBadRequest},
		{"overflowing height", `{"hostname":"web-03","unitHeight":1000000000000000000}`, http.StatusBadRequest},
		{"out of bounds", `{"hostname":"web-03","rack":"R01","position":42,"unitHeight":2}`, http.StatusBadRequest},
		{"unknown rack", `{"hostname":"web-03","rack":"R99","position":1}`, http.StatusNotFound},
		{"duplicate hostname", `{"hostname":"web-01"}`, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/servers", tt.body)
			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestPlaceServer_MoveWithinOwnUnits(t *testing.T) {
	env, web := newScenarioEnv(t)

	// web-01 occupies U1-U2; growing it to U1-U2 plus U3 only overlaps itself.
	w := env.do(t, http.MethodPut, "/api/v1/servers/"+web.ID+"/placement", `{"rack":"R01","position":"U1","unitHeight":3}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	srv := decode[models.Server](t, w)
	if srv.Unit != 1 || srv.UnitHeight != 3 {
		t.Errorf("Unexpected placement %+v", srv)
	}
}

func TestPlaceServer_KeepsHeightWhenOmitted(t *testing.T) {
	env, web := newScenarioEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/servers/"+web.ID+"/placement", `{"rack":"R01","position":20}`)

	srv := decode[models.Server](t, w)
	if srv.Unit != 20 || srv.UnitHeight != 2 {
		t.Errorf("Expected U20 with height 2, got %+v", srv)
	}
}

func TestPlaceServer_Errors(t *testing.T) {
	env, web := newScenarioEnv(t)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"onto another server", "/api/v1/servers/" + web.ID + "/placement", `{"rack":"R01","position":39,"unitHeight":2}`, http.StatusConflict},
		{"unknown server", "/api/v1/servers/nope/placement", `{"rack":"R01","position":10}`, http.StatusNotFound},
		{"unknown rack", "/api/v1/servers/" + web.ID + "/placement", `{"rack":"R99","position":10}`, http.StatusNotFound},
		{"missing rack", "/api/v1/servers/" + web.ID + "/placement", `{"position":10}`, http.StatusBadRequest},
		{"bad unit", "/api/v1/servers/" + web.ID + "/placement", `{"rack":"R01","position":"top"}`, http.StatusBadRequest},
		{"past top", "/api/v1/servers/" + web.ID + "/placement", `{"rack":"R01","position":42}`, http.StatusBadRequest},
		{"negative height", "/api/v1/servers/" + web.ID + "/placement", `{"rack":"R01","position":10,"unitHeight":-1}`, http.StatusBadRequest},
		{"max int height", "/api/v1/servers/" + web.ID + "/placement", `{"rack":"R01","position":2,"unitHeight":9223372036854775807}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPut, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestUnrackAndDeleteServer(t *testing.T) {
	env, web := newScenarioEnv(t)

	w := env.do(t, http.MethodDelete, "/api/v1/servers/"+web.ID+"/placement", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if srv := decode[models.Server](t, w); srv.Racked() {
		t.Errorf("Expected server unracked, got %+v", srv)
	}

	// The freed units are now available.
	w = env.do(t, http.MethodPost, "/api/v1/rack-space/check", `{"rack":"R01","position":1,"unitHeight":2}`)
	if resp := decode[models.AvailabilityResponse](t, w); !resp.Available {
		t.Errorf("Expected U1-U2 free after unrack, got %+v", resp)
	}

	w = env.do(t, http.MethodDelete, "/api/v1/servers/"+web.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}
	w = env.do(t, http.MethodGet, "/api/v1/servers/"+web.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", w.Code)
	}
}

func TestListServers_FilterByRack(t *testing.T) {
	env, _ := newScenarioEnv(t)
	env.seedServer(t, "spare-01", "", 0, 1)

	all := decode[[]models.Server](t, env.do(t, http.MethodGet, "/api/v1/servers", nil))
	if len(all) != 3 {
		t.Errorf("Expected 3 servers, got %d", len(all))
	}

	inRack := decode[[]models.Server](t, env.do(t, http.MethodGet, "/api/v1/servers?rack=R01", nil))
	if len(inRack) != 2 {
		t.Errorf("Expected 2 servers in R01, got %d", len(inRack))
	}
}
