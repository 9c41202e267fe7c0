// file: internals/features/hse/tasks/controller/task_controller_test.go
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

	"hseplan_backend/internals/helpers/docstore"
)

func newTaskTestApp(t *testing.T) *fiber.App {
	t.Helper()

	ctl := NewTaskController(docstore.New(t.TempDir()))
	app := fiber.New()
	app.Get("/tasks", ctl.List)
	app.Post("/tasks", ctl.Create)
	app.Put("/tasks/:id", ctl.Update)
	return app
}

func taskReq(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
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
	return resp, raw
}

func TestTaskCreateAssignsSequentialIDs(t *testing.T) {
	app := newTaskTestApp(t)

	resp, raw := taskReq(t, app, http.MethodPost, "/tasks", map[string]any{
		"project_id": "10", "code": "T-1", "title": "Siapkan APD",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first map[string]any
	require.NoError(t, json.Unmarshal(raw, &first))
	assert.Equal(t, "1", first["id"])
	assert.Equal(t, "once", first["frequency"])
	assert.Equal(t, "Upcoming", first["status"])

	_, raw = taskReq(t, app, http.MethodPost, "/tasks", map[string]any{
		"project_id": "10", "code": "T-2", "title": "Inspeksi alat",
	})
	var second map[string]any
	require.NoError(t, json.Unmarshal(raw, &second))
	assert.Equal(t, "2", second["id"])
}

func TestTaskListReturnsAll(t *testing.T) {
	app := newTaskTestApp(t)

	taskReq(t, app, http.MethodPost, "/tasks", map[string]any{"project_id": "1", "code": "A", "title": "a"})
	taskReq(t, app, http.MethodPost, "/tasks", map[string]any{"project_id": "1", "code": "B", "title": "b"})

	resp, raw := taskReq(t, app, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(raw, &tasks))
	require.Len(t, tasks, 2)
}

func TestTaskUpdateStatusAndWpts(t *testing.T) {
	app := newTaskTestApp(t)

	taskReq(t, app, http.MethodPost, "/tasks", map[string]any{"project_id": "1", "code": "A", "title": "a"})

	resp, raw := taskReq(t, app, http.MethodPut, "/tasks/1", map[string]any{
		"status": "Done", "wpts_id": "WPTS-9",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Done", updated["status"])
	assert.Equal(t, "WPTS-9", updated["wpts_id"])
}

func TestTaskUpdateMissingReturns404(t *testing.T) {
	app := newTaskTestApp(t)

	resp, raw := taskReq(t, app, http.MethodPut, "/tasks/99", map[string]any{"status": "Done"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Task not found", body["error"])
}
