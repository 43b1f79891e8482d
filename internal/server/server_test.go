package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollwise/rollcut/internal/engine"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validRequest() map[string]interface{} {
	return map[string]interface{}{
		"roll": map[string]float64{"width": 200, "length": 300},
		"pieces": []map[string]interface{}{
			{"label": "A", "width": 100, "length": 150, "quantity": 2},
		},
	}
}

func TestHealthz(t *testing.T) {
	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestOptimize(t *testing.T) {
	router := NewRouter()

	w := postJSON(t, router, "/api/optimize", validRequest())

	require.Equal(t, http.StatusOK, w.Code)

	var resp OptimizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.PlacedCount)
	assert.Equal(t, 0, resp.UnplacedCount)
	assert.InDelta(t, 50.0, resp.Plan.WastePercent, 1e-6)
	assert.Len(t, resp.Plan.Placements, 2)
}

func TestOptimize_ForceHorizontal(t *testing.T) {
	router := NewRouter()

	body := validRequest()
	body["settings"] = map[string]interface{}{
		"force_horizontal": true,
		"grid_step":        1.0,
		"min_free_dim":     0.1,
	}
	w := postJSON(t, router, "/api/optimize", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp OptimizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.PlacedCount)
}

func TestOptimize_InvalidBody(t *testing.T) {
	router := NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptimize_InvalidRoll(t *testing.T) {
	router := NewRouter()

	body := validRequest()
	body["roll"] = map[string]float64{"width": 0, "length": 300}
	w := postJSON(t, router, "/api/optimize", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "roll width and length")
}

func TestOptimize_InvalidPiece(t *testing.T) {
	router := NewRouter()

	body := validRequest()
	body["pieces"] = []map[string]interface{}{
		{"label": "Bad", "width": -5, "length": 150, "quantity": 1},
	}
	w := postJSON(t, router, "/api/optimize", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRender_ReturnsPNG(t *testing.T) {
	router := NewRouter()

	w := postJSON(t, router, "/api/render", validRequest())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	// PNG magic bytes
	body := w.Body.Bytes()
	require.Greater(t, len(body), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}

func TestRender_NothingPlaced(t *testing.T) {
	router := NewRouter()

	body := validRequest()
	body["pieces"] = []map[string]interface{}{
		{"label": "Huge", "width": 500, "length": 500, "quantity": 1},
	}
	w := postJSON(t, router, "/api/render", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCompare(t *testing.T) {
	router := NewRouter()

	w := postJSON(t, router, "/api/compare", validRequest())

	require.Equal(t, http.StatusOK, w.Code)

	var results []engine.ComparisonResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "Current Settings", results[0].Scenario.Name)
	for _, r := range results {
		assert.Equal(t, r.PlacedCount+r.UnplacedCount, 2)
	}
}

func TestCompareChart_ReturnsHTML(t *testing.T) {
	router := NewRouter()

	w := postJSON(t, router, "/api/compare/chart", validRequest())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Scenario Comparison")
}
