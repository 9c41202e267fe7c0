// file: internals/features/hse/calendar/controller/calendar_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dsmodel "hseplan_backend/internals/features/hse/datasets/model"
	"hseplan_backend/internals/features/hse/datasets/service"
	"hseplan_backend/internals/helpers/docstore"
)

func newCalendarTestApp(t *testing.T) (*fiber.App, *service.DatasetService) {
	t.Helper()

	svc := service.NewDatasetService(docstore.New(t.TempDir()))
	app := fiber.New()
	app.Get("/calendar-events", NewCalendarController(svc).List)
	return app, svc
}

func getEvents(t *testing.T, app *fiber.App) []CalendarEvent {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/calendar-events", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Events []CalendarEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Events
}

func TestCalendarEmptyStore(t *testing.T) {
	app, _ := newCalendarTestApp(t)
	assert.Empty(t, getEvents(t, app))
}

func TestCalendarCollectsDatedMonthsOnly(t *testing.T) {
	app, svc := newCalendarTestApp(t)

	prog := dsmodel.NewProgram(1, "Toolbox Meeting", "", "Monthly", nil)
	prog.Months["jan"] = dsmodel.MonthEntry{Plan: 1, PlanDate: "2026-01-12", PicName: "Budi"}
	prog.Months["feb"] = dsmodel.MonthEntry{Plan: 1} // tanpa tanggal → tidak muncul
	require.NoError(t, svc.SaveOTP("narogong", dsmodel.Document{Year: 2026, Programs: []dsmodel.Program{prog}}))

	events := getEvents(t, app)
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "otp", ev.Source)
	assert.Equal(t, "indonesia", ev.Region)
	require.NotNil(t, ev.Base)
	assert.Equal(t, "narogong", *ev.Base)
	assert.Nil(t, ev.Category)
	assert.Equal(t, "jan", ev.Month)
	assert.Equal(t, "2026-01-12", ev.PlanDate)
	assert.Equal(t, "Budi", ev.PicName)
}

func TestCalendarIncludesAsiaAndMatrix(t *testing.T) {
	app, svc := newCalendarTestApp(t)

	asia := dsmodel.NewProgram(2, "Regional Audit", "", "Annually", nil)
	asia.Months["may"] = dsmodel.MonthEntry{ImplDate: "2026-05-20"}
	require.NoError(t, svc.SaveOTPAsia(dsmodel.Document{Year: 2026, Programs: []dsmodel.Program{asia}}))

	drill := dsmodel.NewProgram(3, "Fire Drill", "", "Monthly", nil)
	drill.Months["jun"] = dsmodel.MonthEntry{PlanDate: "2026-06-01"}
	require.NoError(t, svc.SaveMatrix("drill", service.RegionIndonesia, "duri", dsmodel.Document{
		Year: 2026, Category: "drill", Region: "indonesia", Programs: []dsmodel.Program{drill},
	}))

	events := getEvents(t, app)
	require.Len(t, events, 2)

	assert.Equal(t, "asia", events[0].Region)
	assert.Nil(t, events[0].Base)
	assert.Equal(t, "2026-05-20", events[0].ImplDate)

	assert.Equal(t, "matrix", events[1].Source)
	require.NotNil(t, events[1].Category)
	assert.Equal(t, "drill", *events[1].Category)
}
