// file: internals/features/hse/programs/controller/legacy_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hseplan_backend/internals/configs"
	dto "hseplan_backend/internals/features/hse/programs/dto"
	model "hseplan_backend/internals/features/hse/programs/model"
)

/* =========================================================
   Endpoint legacy untuk frontend lama: program dipetakan ke
   bentuk "project" dan "schedule". Jangan dipakai client baru.
   ========================================================= */

// mapping kategori form legacy → program_type
var legacyCategoryMap = map[string]string{
	"hse-training":     "safety_training",
	"emergency-drill":  "hse_plan",
	"observation-card": "inspection",
	"safety-meeting":   "hse_committee",
	"inspection":       "inspection",
	"other":            "hse_plan",
}

// mapping status form legacy → status program
var legacyStatusMap = map[string]string{
	"Upcoming":   model.StatusPending,
	"InProgress": model.StatusPending,
	"Completed":  model.StatusClosed,
	"OnHold":     model.StatusPending,
	"Canceled":   model.StatusClosed,
}

// ========== GET /projects ==========
func (ctl *ProgramController) ListProjects(c *fiber.Ctx) error {
	var programs []model.HSEProgram
	if err := ctl.DB.Order("planned_date ASC").Find(&programs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]fiber.Map, 0, len(programs))
	for _, p := range programs {
		status := p.Status
		if status == model.StatusPending {
			status = "Upcoming"
		}
		out = append(out, fiber.Map{
			"id":          p.ID,
			"name":        p.Title,
			"title":       p.Title,
			"status":      status,
			"start_date":  p.PlannedDate.Format("2006-01-02"),
			"end_date":    formatDatePtr(p.ActualDate),
			"rig_down":    formatDatePtr(p.ActualDate),
			"category":    p.ProgramType,
			"well_name":   "",
			"kontrak_no":  "",
			"assigned_to": derefOr(p.PicName, ""),
			"pic_email":   p.ManagerEmail,
		})
	}
	return c.JSON(out)
}

// ========== POST /projects ==========
func (ctl *ProgramController) CreateProject(c *fiber.Ctx) error {
	var req dto.LegacyProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	plannedDate := time.Now()
	if req.StartDate != "" {
		if t, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			plannedDate = t
		}
	}

	programType, ok := legacyCategoryMap[req.Category]
	if !ok {
		programType = "hse_plan"
	}
	status, ok := legacyStatusMap[req.Status]
	if !ok {
		status = model.StatusPending
	}

	managerEmail := req.PicEmail
	if managerEmail == "" {
		managerEmail = configs.DefaultManagerEmail
	}

	p := &model.HSEProgram{
		Title:        req.Name,
		ProgramType:  programType,
		PlannedDate:  plannedDate,
		Status:       status,
		ManagerEmail: managerEmail,
		CreatedAt:    time.Now().UTC(),
	}
	if req.AssignedTo != "" {
		p.PicName = &req.AssignedTo
	}

	if err := ctl.DB.Create(p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"id":      p.ID,
		"name":    p.Title,
		"status":  req.Status,
		"message": "HSE Program created successfully",
	})
}

// ========== DELETE /projects/:id ==========
func (ctl *ProgramController) DeleteProject(c *fiber.Ctx) error {
	p, err := ctl.findByParam(c)
	if p == nil {
		return err
	}
	if err := ctl.DB.Delete(p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Program deleted successfully"})
}

// ========== GET /schedules ==========
func (ctl *ProgramController) ListSchedules(c *fiber.Ctx) error {
	var programs []model.HSEProgram
	if err := ctl.DB.Order("planned_date ASC").Find(&programs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]fiber.Map, 0, len(programs))
	for _, p := range programs {
		out = append(out, fiber.Map{
			"id":     p.ID,
			"title":  p.Title,
			"type":   p.ProgramType,
			"date":   p.PlannedDate.Format("2006-01-02"),
			"status": p.Status,
		})
	}
	return c.JSON(out)
}

func formatDatePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
