// file: internals/route/index.go
package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarController "hseplan_backend/internals/features/hse/calendar/controller"
	datasetRoute "hseplan_backend/internals/features/hse/datasets/route"
	datasetService "hseplan_backend/internals/features/hse/datasets/service"
	indicatorController "hseplan_backend/internals/features/hse/indicators/controller"
	kpiController "hseplan_backend/internals/features/hse/kpi/controller"
	programRoute "hseplan_backend/internals/features/hse/programs/route"
	"hseplan_backend/internals/features/hse/reminder"
	taskController "hseplan_backend/internals/features/hse/tasks/controller"
	"hseplan_backend/internals/helpers/docstore"
)

// SetupRoutes daftarkan semua endpoint aplikasi di root router.
func SetupRoutes(app *fiber.App, db *gorm.DB, store *docstore.Store, svc *reminder.Service) {
	// deskriptor service (dipakai health-check platform)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "HSE Plan Management System",
			"version": "2.0.0",
		})
	})

	// ===== Program HSE (DB) + legacy project/schedule view =====
	programRoute.ProgramRoutes(app, db)

	// ===== Dataset OTP / OTP Asia / Matrix (docstore) =====
	datasetRoute.DatasetRoutes(app, store)

	// ===== KPI =====
	kpiCtl := kpiController.NewKPIController(store)
	app.Get("/kpi", kpiCtl.Get)
	app.Put("/kpi/:year", kpiCtl.UpdateYear)

	// ===== LL Indicator =====
	llCtl := indicatorController.NewLLIndicatorController(store)
	app.Get("/ll-indicator", llCtl.Get)
	app.Put("/ll-indicator", llCtl.Update)
	app.Put("/ll-indicator/year/:year", llCtl.UpdateYear)

	// ===== Tasks =====
	taskCtl := taskController.NewTaskController(store)
	app.Get("/tasks", taskCtl.List)
	app.Post("/tasks", taskCtl.Create)
	app.Put("/tasks/:id", taskCtl.Update)

	// ===== Calendar =====
	calCtl := calendarController.NewCalendarController(datasetService.NewDatasetService(store))
	app.Get("/calendar-events", calCtl.List)

	// ===== Trigger manual reminder (testing) =====
	app.Post("/test-reminder", func(c *fiber.Ctx) error {
		svc.CheckProgramReminders()
		return c.JSON(fiber.Map{"message": "Reminder check executed"})
	})
	app.Post("/test-reminders", func(c *fiber.Ctx) error {
		sent := svc.CheckDatasetReminders()
		return c.JSON(fiber.Map{
			"status":         "completed",
			"reminders_sent": sent,
			"message":        fmt.Sprintf("Checked all OTP and Matrix data. Sent %d reminder emails.", sent),
		})
	})
}
