// file: internals/features/hse/datasets/controller/matrix_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "hseplan_backend/internals/features/hse/datasets/dto"
	model "hseplan_backend/internals/features/hse/datasets/model"
	service "hseplan_backend/internals/features/hse/datasets/service"
	helper "hseplan_backend/internals/helpers"
)

// MatrixController melayani family Matrix: kategori audit/training/drill/meeting,
// region indonesia (per-base) atau asia (dokumen gabungan).
type MatrixController struct {
	Svc       *service.DatasetService
	Validator *validator.Validate
}

func NewMatrixController(svc *service.DatasetService) *MatrixController {
	return &MatrixController{
		Svc:       svc,
		Validator: validator.New(),
	}
}

// scope baca category/region dari query (default audit/indonesia) + validasi.
// Return ok=false bila response 400 sudah ditulis.
func (ctl *MatrixController) scope(c *fiber.Ctx) (category, region string, ok bool, err error) {
	category = c.Query("category", "audit")
	region = c.Query("region", service.RegionIndonesia)

	if !service.IsMatrixCategory(category) {
		return "", "", false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid category. Must be one of: %s", strings.Join(service.MatrixCategories, ", ")),
		})
	}
	if !service.IsMatrixRegion(region) {
		return "", "", false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid region. Must be one of: %s", strings.Join(service.MatrixRegions, ", ")),
		})
	}
	return category, region, true, nil
}

func matrixNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Matrix program not found"})
}

// ========== List ==========
func (ctl *MatrixController) List(c *fiber.Ctx) error {
	category, region, ok, err := ctl.scope(c)
	if !ok {
		return err
	}
	doc, err := ctl.Svc.LoadMatrix(category, region, c.Query("base"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	for i := range doc.Programs {
		doc.Programs[i].Progress = model.ProgressMatrix(&doc.Programs[i])
	}
	return c.JSON(doc)
}

// ========== Get by ID ==========
func (ctl *MatrixController) GetByID(c *fiber.Ctx) error {
	category, region, ok, err := ctl.scope(c)
	if !ok {
		return err
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "program id invalid"})
	}
	doc, err := ctl.Svc.LoadMatrix(category, region, c.Query("base"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	idx := model.FindProgram(doc.Programs, id)
	if idx < 0 {
		return matrixNotFound(c)
	}
	doc.Programs[idx].Progress = model.ProgressMatrix(&doc.Programs[idx])
	return c.JSON(doc.Programs[idx])
}

// ========== Update satu bulan ==========
// base=all (region indonesia) → update diterapkan ke tiga base sekaligus.
func (ctl *MatrixController) UpdateMonth(c *fiber.Ctx) error {
	category, region, ok, err := ctl.scope(c)
	if !ok {
		return err
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "program id invalid"})
	}
	month := strings.ToLower(c.Params("month"))
	if !model.IsValidMonth(month) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid month. Must be one of: %s", strings.Join(model.MonthKeys, ", ")),
		})
	}

	var req dto.MonthUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := c.Query("base")
	if region == service.RegionIndonesia && base == service.BaseAll {
		var updated *model.Program
		for _, b := range service.IndonesiaBases {
			prog, err := ctl.applyMonthUpdate(category, region, b, id, month, &req)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			if prog != nil {
				updated = prog
			}
		}
		if updated == nil {
			return matrixNotFound(c)
		}
		return c.JSON(fiber.Map{"message": "Matrix month updated in all bases", "program": updated})
	}

	prog, err := ctl.applyMonthUpdate(category, region, base, id, month, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if prog == nil {
		return matrixNotFound(c)
	}
	return c.JSON(fiber.Map{"message": "Matrix month updated", "program": prog})
}

func (ctl *MatrixController) applyMonthUpdate(category, region, base string, id int, month string, req *dto.MonthUpdateRequest) (*model.Program, error) {
	file := service.MatrixFile(category, region, base)
	var updated *model.Program
	err := ctl.Svc.Store.WithLock(file, func() error {
		doc, err := ctl.Svc.LoadMatrix(category, region, base)
		if err != nil {
			return err
		}
		idx := model.FindProgram(doc.Programs, id)
		if idx < 0 {
			return nil
		}
		prog := &doc.Programs[idx]
		if prog.Months == nil {
			prog.Months = make(map[string]model.MonthEntry)
		}
		entry := prog.Months[month]
		req.ApplyTo(&entry)
		prog.Months[month] = entry
		prog.Progress = model.ProgressMatrix(prog)
		if err := ctl.Svc.SaveMatrix(category, region, base, doc); err != nil {
			return err
		}
		cp := *prog
		updated = &cp
		return nil
	})
	return updated, err
}

// ========== Create ==========
// Create/meta/delete beroperasi di dokumen gabungan (tanpa base), perilaku lama.
func (ctl *MatrixController) Create(c *fiber.Ctx) error {
	category, region, ok, err := ctl.scope(c)
	if !ok {
		return err
	}

	var req dto.ProgramCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	planType := "Monthly"
	if req.PlanType != nil && *req.PlanType != "" {
		planType = *req.PlanType
	}
	reference := ""
	if req.Reference != nil {
		reference = *req.Reference
	}

	file := service.MatrixFile(category, region, "")
	var created model.Program
	err = ctl.Svc.Store.WithLock(file, func() error {
		doc, err := ctl.Svc.LoadMatrix(category, region, "")
		if err != nil {
			return err
		}
		created = model.NewProgram(model.NextID(doc.Programs), req.Name, reference, planType, req.DueDate)
		doc.Programs = append(doc.Programs, created)
		return ctl.Svc.SaveMatrix(category, region, "", doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Matrix program created", "program": created})
}

// ========== Update metadata ==========
func (ctl *MatrixController) UpdateMeta(c *fiber.Ctx) error {
	category, region, ok, err := ctl.scope(c)
	if !ok {
		return err
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "program id invalid"})
	}

	var req dto.ProgramMetaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	file := service.MatrixFile(category, region, "")
	var updated *model.Program
	err = ctl.Svc.Store.WithLock(file, func() error {
		doc, err := ctl.Svc.LoadMatrix(category, region, "")
		if err != nil {
			return err
		}
		idx := model.FindProgram(doc.Programs, id)
		if idx < 0 {
			return nil
		}
		req.ApplyTo(&doc.Programs[idx])
		if err := ctl.Svc.SaveMatrix(category, region, "", doc); err != nil {
			return err
		}
		cp := doc.Programs[idx]
		updated = &cp
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if updated == nil {
		return matrixNotFound(c)
	}
	return c.JSON(fiber.Map{"message": "Matrix program updated", "program": updated})
}

// ========== Delete ==========
func (ctl *MatrixController) Delete(c *fiber.Ctx) error {
	category, region, ok, err := ctl.scope(c)
	if !ok {
		return err
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "program id invalid"})
	}

	file := service.MatrixFile(category, region, "")
	removed := false
	err = ctl.Svc.Store.WithLock(file, func() error {
		doc, err := ctl.Svc.LoadMatrix(category, region, "")
		if err != nil {
			return err
		}
		kept := doc.Programs[:0]
		for _, p := range doc.Programs {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		if !removed {
			return nil
		}
		doc.Programs = kept
		return ctl.Svc.SaveMatrix(category, region, "", doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !removed {
		return matrixNotFound(c)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Matrix program %d deleted successfully", id)})
}
