// file: internals/features/hse/kpi/controller/kpi_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "hseplan_backend/internals/features/hse/kpi/model"
	"hseplan_backend/internals/helpers/docstore"
)

func newKPITestApp(t *testing.T) (*fiber.App, *docstore.Store) {
	t.Helper()

	store := docstore.New(t.TempDir())
	ctl := NewKPIController(store)
	app := fiber.New()
	app.Get("/kpi", ctl.Get)
	app.Put("/kpi/:year", ctl.UpdateYear)
	return app, store
}

func kpiReq(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestKPIGetEmptyDocument(t *testing.T) {
	app, _ := newKPITestApp(t)

	resp, body := kpiReq(t, app, http.MethodGet, "/kpi", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["man_hours"])
	assert.Empty(t, body["kpi"])
}

func TestKPIUpdateYearLazyInitsAllMetrics(t *testing.T) {
	app, store := newKPITestApp(t)

	resp, body := kpiReq(t, app, http.MethodPut, "/kpi/2026", map[string]any{
		"man_hours":   120000.0,
		"trir_target": 0.5,
		"trir_result": 0.3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "KPI data for 2026 updated successfully", body["message"])

	var doc model.KPIDocument
	ok, err := store.Load("kpi_data.json", &doc)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 120000.0, doc.ManHours["2026"])
	assert.Equal(t, model.Metric{Target: 0.5, Result: 0.3}, doc.KPI["2026"]["trir"])
	// metric yang tidak dikirim tetap ada dengan nilai nol
	for _, key := range model.MetricKeys {
		_, exists := doc.KPI["2026"][key]
		assert.True(t, exists, key)
	}
}

func TestKPIUpdateIsPartialAcrossCalls(t *testing.T) {
	app, store := newKPITestApp(t)

	kpiReq(t, app, http.MethodPut, "/kpi/2026", map[string]any{"fatality_target": 1.0})
	kpiReq(t, app, http.MethodPut, "/kpi/2026", map[string]any{"fire_result": 2.0})

	var doc model.KPIDocument
	_, err := store.Load("kpi_data.json", &doc)
	require.NoError(t, err)

	// update kedua tidak menghapus hasil update pertama
	assert.Equal(t, 1.0, doc.KPI["2026"]["fatality"].Target)
	assert.Equal(t, 2.0, doc.KPI["2026"]["fire"].Result)
}
