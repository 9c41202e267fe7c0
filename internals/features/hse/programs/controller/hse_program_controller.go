// file: internals/features/hse/programs/controller/hse_program_controller.go
package controller

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hseplan_backend/internals/configs"
	"hseplan_backend/internals/constants"
	dto "hseplan_backend/internals/features/hse/programs/dto"
	model "hseplan_backend/internals/features/hse/programs/model"
	helper "hseplan_backend/internals/helpers"
)

type ProgramController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== List (filter opsional, urut planned_date ASC) ==========
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.HSEProgram{})

	if pt := strings.TrimSpace(c.Query("program_type")); pt != "" {
		q = q.Where("program_type = ?", pt)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("status = ?", st)
	}

	var programs []model.HSEProgram
	if err := q.Order("planned_date ASC").Find(&programs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(programs)
}

// ========== Create ==========
func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	p := req.ToModel(constants.DefaultProgramType, configs.DefaultManagerEmail)
	if err := ctl.DB.Create(p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ========== Get by ID ==========
func (ctl *ProgramController) GetByID(c *fiber.Ctx) error {
	p, err := ctl.findByParam(c)
	if p == nil {
		return err
	}
	return c.JSON(p)
}

// ========== Status update (WPTS number wajib) ==========
func (ctl *ProgramController) UpdateStatus(c *fiber.Ctx) error {
	p, err := ctl.findByParam(c)
	if p == nil {
		return err
	}

	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if strings.TrimSpace(req.WptsNumber) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "WPTS Number is required"})
	}

	p.ActualDate = &req.ActualDate
	p.Status = req.Status
	p.WptsNumber = &req.WptsNumber
	p.EvidenceLink = req.EvidenceLink

	if err := ctl.DB.Save(p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(p)
}

// ========== Full update (partial semantics) ==========
func (ctl *ProgramController) UpdateFull(c *fiber.Ctx) error {
	p, err := ctl.findByParam(c)
	if p == nil {
		return err
	}

	var req dto.FullUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(p)
	if err := ctl.DB.Save(p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(p)
}

// ========== Delete ==========
func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	p, err := ctl.findByParam(c)
	if p == nil {
		return err
	}
	if err := ctl.DB.Delete(p).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Program deleted successfully"})
}

// ========== Program types (katalog label + warna) ==========
func (ctl *ProgramController) ProgramTypes(c *fiber.Ctx) error {
	return c.JSON(constants.ProgramTypes)
}

// ========== Statistics dashboard ==========
func (ctl *ProgramController) Statistics(c *fiber.Ctx) error {
	var stats dto.StatisticsResponse

	base := func() *gorm.DB { return ctl.DB.Model(&model.HSEProgram{}) }

	if err := base().Count(&stats.TotalPrograms).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := base().Where("status = ?", model.StatusClosed).Count(&stats.Completed).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := base().Where("status <> ?", model.StatusClosed).Count(&stats.Pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// bulan kalender berjalan
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfNext := firstOfMonth.AddDate(0, 1, 0)
	if err := base().
		Where("planned_date >= ? AND planned_date < ?", firstOfMonth, firstOfNext).
		Count(&stats.ThisMonth).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// 30 hari ke depan, belum Closed
	if err := base().
		Where("planned_date >= ? AND planned_date <= ? AND status <> ?",
			now, now.AddDate(0, 0, 30), model.StatusClosed).
		Count(&stats.Upcoming).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	stats.ByType = make(map[string]int64, len(constants.ProgramTypeKeys))
	for _, ptype := range constants.ProgramTypeKeys {
		var n int64
		if err := base().Where("program_type = ?", ptype).Count(&n).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		stats.ByType[ptype] = n
	}

	// completion rate 1 desimal; 0.0 saat tabel kosong (bukan NaN)
	if stats.TotalPrograms > 0 {
		rate := float64(stats.Completed) / float64(stats.TotalPrograms) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}

	return c.JSON(stats)
}

// findByParam ambil program dari path :id; 404 bila tidak ada.
func (ctl *ProgramController) findByParam(c *fiber.Ctx) (*model.HSEProgram, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "program id invalid"})
	}

	var p model.HSEProgram
	if err := ctl.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return &p, nil
}
