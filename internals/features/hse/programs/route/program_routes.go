// file: internals/features/hse/programs/route/program_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	programController "hseplan_backend/internals/features/hse/programs/controller"
)

func ProgramRoutes(r fiber.Router, db *gorm.DB) {
	ctl := programController.NewProgramController(db)

	r.Get("/program-types", ctl.ProgramTypes)
	r.Get("/statistics", ctl.Statistics)

	programs := r.Group("/programs")
	{
		programs.Get("/", ctl.List)
		programs.Post("/", ctl.Create)
		programs.Get("/:id", ctl.GetByID)
		programs.Put("/:id", ctl.UpdateFull)
		programs.Delete("/:id", ctl.Delete)
	}

	// path lama dipertahankan untuk kompatibilitas frontend
	r.Post("/update-program/:id", ctl.UpdateStatus)

	// ===== legacy (project/schedule view) =====
	r.Get("/projects", ctl.ListProjects)
	r.Post("/projects", ctl.CreateProject)
	r.Delete("/projects/:id", ctl.DeleteProject)
	r.Get("/schedules", ctl.ListSchedules)
}
