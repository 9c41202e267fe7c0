// file: internals/features/hse/datasets/controller/otp_controller_test.go
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

	model "hseplan_backend/internals/features/hse/datasets/model"
	service "hseplan_backend/internals/features/hse/datasets/service"
	"hseplan_backend/internals/helpers/docstore"
)

func newDatasetTestApp(t *testing.T) (*fiber.App, *service.DatasetService) {
	t.Helper()

	store := docstore.New(t.TempDir())
	svc := service.NewDatasetService(store)

	otpCtl := NewOTPController(svc, false)
	asiaCtl := NewOTPController(svc, true)
	matrixCtl := NewMatrixController(svc)

	app := fiber.New()
	app.Get("/otp", otpCtl.List)
	app.Post("/otp", otpCtl.Create)
	app.Put("/otp/year/:year", otpCtl.UpdateYear)
	app.Get("/otp/:id", otpCtl.GetByID)
	app.Put("/otp/:id/month/:month", otpCtl.UpdateMonth)
	app.Put("/otp/:id", otpCtl.UpdateMeta)
	app.Delete("/otp/:id", otpCtl.Delete)

	app.Get("/otp-asia/:id", asiaCtl.GetByID)

	app.Get("/matrix", matrixCtl.List)
	app.Put("/matrix/:id/month/:month", matrixCtl.UpdateMonth)
	return app, svc
}

func doReq(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
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
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func seedOTPBase(t *testing.T, svc *service.DatasetService, base string, programs ...model.Program) {
	t.Helper()
	require.NoError(t, svc.SaveOTP(base, model.Document{Year: 2026, Programs: programs}))
}

func TestOTPCreateAssignsIDAndSkeleton(t *testing.T) {
	app, _ := newDatasetTestApp(t)

	resp, body := doReq(t, app, http.MethodPost, "/otp", map[string]any{"name": "Safety Campaign"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OTP program created successfully", body["message"])

	prog := body["program"].(map[string]any)
	assert.EqualValues(t, 1, prog["id"])
	assert.Equal(t, "Annually", prog["plan_type"])
	assert.Len(t, prog["months"].(map[string]any), 12)
}

func TestOTPMonthUpdateIsPartial(t *testing.T) {
	app, svc := newDatasetTestApp(t)

	prog := model.NewProgram(1, "Toolbox Meeting", "", "Monthly", nil)
	prog.Months["jan"] = model.MonthEntry{Plan: 4, Actual: 1, PicName: "Budi"}
	seedOTPBase(t, svc, "narogong", prog)

	resp, body := doReq(t, app, http.MethodPut, "/otp/1/month/jan?base=narogong", map[string]any{
		"actual": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := body["program"].(map[string]any)
	jan := updated["months"].(map[string]any)["jan"].(map[string]any)
	assert.EqualValues(t, 2, jan["actual"])
	// field lain tidak tersentuh
	assert.EqualValues(t, 4, jan["plan"])
	assert.Equal(t, "Budi", jan["pic_name"])

	// progress ikut dihitung ulang: 2/4 = 50
	assert.EqualValues(t, 50, updated["progress"])

	// idempoten: apply ulang payload yang sama, hasil identik
	resp, body2 := doReq(t, app, http.MethodPut, "/otp/1/month/jan?base=narogong", map[string]any{
		"actual": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, body["program"], body2["program"])
}

func TestOTPMonthUpdateInvalidMonth(t *testing.T) {
	app, svc := newDatasetTestApp(t)
	seedOTPBase(t, svc, "narogong", model.NewProgram(1, "X", "", "Monthly", nil))

	resp, body := doReq(t, app, http.MethodPut, "/otp/1/month/januari?base=narogong", map[string]any{"plan": 1})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "Invalid month")
}

func TestOTPMonthUpdateAllBases(t *testing.T) {
	app, svc := newDatasetTestApp(t)
	for _, base := range service.IndonesiaBases {
		seedOTPBase(t, svc, base, model.NewProgram(1, "Drill", "", "Monthly", nil))
	}

	resp, _ := doReq(t, app, http.MethodPut, "/otp/1/month/mar?base=all", map[string]any{"plan": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// ketiga file base ikut berubah
	for _, base := range service.IndonesiaBases {
		doc, err := svc.LoadOTP(base)
		require.NoError(t, err)
		assert.EqualValues(t, 2, doc.Programs[0].Months["mar"].Plan, base)
	}
}

func TestOTPDeleteNotFound(t *testing.T) {
	app, _ := newDatasetTestApp(t)

	resp, body := doReq(t, app, http.MethodDelete, "/otp/42", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "OTP program not found", body["error"])
}

func TestOTPAsiaNotFoundMessage(t *testing.T) {
	app, _ := newDatasetTestApp(t)

	resp, body := doReq(t, app, http.MethodGet, "/otp-asia/9", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "OTP ASIA program not found", body["error"])
}

func TestOTPListRecomputesProgress(t *testing.T) {
	app, svc := newDatasetTestApp(t)

	// tanpa plan sama sekali → family OTP menganggap 100%
	prog := model.NewProgram(1, "Kosong", "", "Monthly", nil)
	prog.Progress = 55 // nilai basi di file harus ditimpa saat dibaca
	seedOTPBase(t, svc, "narogong", prog)

	resp, body := doReq(t, app, http.MethodGet, "/otp?base=narogong", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	programs := body["programs"].([]any)
	require.Len(t, programs, 1)
	assert.EqualValues(t, 100, programs[0].(map[string]any)["progress"])
}

func TestOTPUpdateYear(t *testing.T) {
	app, svc := newDatasetTestApp(t)

	resp, body := doReq(t, app, http.MethodPut, "/otp/year/2027", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["status"])

	doc, err := svc.LoadOTP("")
	require.NoError(t, err)
	assert.Equal(t, 2027, doc.Year)
}

func TestMatrixInvalidCategory(t *testing.T) {
	app, _ := newDatasetTestApp(t)

	resp, body := doReq(t, app, http.MethodGet, "/matrix?category=safety", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "Invalid category")
}

func TestMatrixListZeroPlanIsZeroProgress(t *testing.T) {
	app, svc := newDatasetTestApp(t)

	// kontras dengan OTP: tanpa plan, family Matrix = 0%
	prog := model.NewProgram(1, "Audit Internal", "ISO-45001", "Monthly", nil)
	require.NoError(t, svc.SaveMatrix("audit", "indonesia", "narogong", model.Document{
		Year: 2026, Category: "audit", Region: "indonesia", Programs: []model.Program{prog},
	}))

	resp, body := doReq(t, app, http.MethodGet, "/matrix?category=audit&region=indonesia&base=narogong", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	programs := body["programs"].([]any)
	require.Len(t, programs, 1)
	assert.EqualValues(t, 0, programs[0].(map[string]any)["progress"])
}

func TestMatrixMonthUpdateAllBases(t *testing.T) {
	app, svc := newDatasetTestApp(t)
	for _, base := range service.IndonesiaBases {
		require.NoError(t, svc.SaveMatrix("training", "indonesia", base, model.Document{
			Year: 2026, Category: "training", Region: "indonesia",
			Programs: []model.Program{model.NewProgram(3, "Fire Training", "", "Monthly", nil)},
		}))
	}

	resp, _ := doReq(t, app, http.MethodPut, "/matrix/3/month/sep?category=training&base=all", map[string]any{
		"plan": 1, "plan_date": "2026-09-10",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, base := range service.IndonesiaBases {
		doc, err := svc.LoadMatrix("training", "indonesia", base)
		require.NoError(t, err)
		sep := doc.Programs[0].Months["sep"]
		assert.EqualValues(t, 1, sep.Plan, base)
		assert.Equal(t, "2026-09-10", sep.PlanDate, base)
	}
}
