// file: internals/features/hse/datasets/controller/otp_controller.go
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

// OTPController melayani family OTP. Satu instance untuk region Indonesia
// (per-base + selector "all") dan satu untuk varian Asia (dokumen tunggal).
type OTPController struct {
	Svc       *service.DatasetService
	Validator *validator.Validate

	// true → dokumen gabungan Asia; query base diabaikan
	Asia bool
}

func NewOTPController(svc *service.DatasetService, asia bool) *OTPController {
	return &OTPController{
		Svc:       svc,
		Validator: validator.New(),
		Asia:      asia,
	}
}

func (ctl *OTPController) notFound(c *fiber.Ctx) error {
	msg := "OTP program not found"
	if ctl.Asia {
		msg = "OTP ASIA program not found"
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func (ctl *OTPController) load(base string) (model.Document, error) {
	if ctl.Asia {
		return ctl.Svc.LoadOTPAsia()
	}
	return ctl.Svc.LoadOTP(base)
}

func (ctl *OTPController) save(base string, doc model.Document) error {
	if ctl.Asia {
		return ctl.Svc.SaveOTPAsia(doc)
	}
	return ctl.Svc.SaveOTP(base, doc)
}

func (ctl *OTPController) file(base string) string {
	if ctl.Asia {
		return service.OTPAsiaFile
	}
	return service.OTPFile(base)
}

// ========== List ==========
// base=narogong|duri|balikpapan|all (Indonesia); kosong → dokumen default.
func (ctl *OTPController) List(c *fiber.Ctx) error {
	doc, err := ctl.load(c.Query("base"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	for i := range doc.Programs {
		doc.Programs[i].Progress = model.ProgressOTP(&doc.Programs[i])
	}
	return c.JSON(doc)
}

// ========== Get by ID ==========
func (ctl *OTPController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "program id invalid"})
	}
	doc, err := ctl.load(c.Query("base"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	idx := model.FindProgram(doc.Programs, id)
	if idx < 0 {
		return ctl.notFound(c)
	}
	doc.Programs[idx].Progress = model.ProgressOTP(&doc.Programs[idx])
	return c.JSON(doc.Programs[idx])
}

// ========== Update satu bulan ==========
// base=all → update yang sama diterapkan ke tiga base Indonesia sekaligus.
func (ctl *OTPController) UpdateMonth(c *fiber.Ctx) error {
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
	if !ctl.Asia && base == service.BaseAll {
		var updated *model.Program
		for _, b := range service.IndonesiaBases {
			prog, err := ctl.applyMonthUpdate(b, id, month, &req)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			if prog != nil {
				updated = prog
			}
		}
		if updated == nil {
			return ctl.notFound(c)
		}
		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("OTP program %d month %s updated in all bases", id, month),
			"program": updated,
		})
	}

	prog, err := ctl.applyMonthUpdate(base, id, month, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if prog == nil {
		return ctl.notFound(c)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("OTP program %d month %s updated", id, month),
		"program": prog,
	})
}

// applyMonthUpdate: read-modify-write satu dokumen di bawah lock per-file.
// Return nil (tanpa error) bila program tidak ada di dokumen itu.
func (ctl *OTPController) applyMonthUpdate(base string, id int, month string, req *dto.MonthUpdateRequest) (*model.Program, error) {
	var updated *model.Program
	err := ctl.Svc.Store.WithLock(ctl.file(base), func() error {
		doc, err := ctl.load(base)
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
		prog.Progress = model.ProgressOTP(prog)
		if err := ctl.save(base, doc); err != nil {
			return err
		}
		cp := *prog
		updated = &cp
		return nil
	})
	return updated, err
}

// ========== Create ==========
// Catatan: create/meta/delete/year beroperasi di dokumen default
// (perilaku lama dipertahankan; hanya month-update yang base-aware).
func (ctl *OTPController) Create(c *fiber.Ctx) error {
	var req dto.ProgramCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	planType := "Annually"
	if req.PlanType != nil && *req.PlanType != "" {
		planType = *req.PlanType
	}

	var created model.Program
	err := ctl.Svc.Store.WithLock(ctl.file(""), func() error {
		doc, err := ctl.load("")
		if err != nil {
			return err
		}
		created = model.NewProgram(model.NextID(doc.Programs), req.Name, "", planType, req.DueDate)
		doc.Programs = append(doc.Programs, created)
		return ctl.save("", doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "OTP program created successfully", "program": created})
}

// ========== Update metadata ==========
func (ctl *OTPController) UpdateMeta(c *fiber.Ctx) error {
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

	var updated *model.Program
	err = ctl.Svc.Store.WithLock(ctl.file(""), func() error {
		doc, err := ctl.load("")
		if err != nil {
			return err
		}
		idx := model.FindProgram(doc.Programs, id)
		if idx < 0 {
			return nil
		}
		req.ApplyTo(&doc.Programs[idx])
		if err := ctl.save("", doc); err != nil {
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
		return ctl.notFound(c)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("OTP program %d updated", id),
		"program": updated,
	})
}

// ========== Delete ==========
func (ctl *OTPController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "program id invalid"})
	}

	removed := false
	err = ctl.Svc.Store.WithLock(ctl.file(""), func() error {
		doc, err := ctl.load("")
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
		return ctl.save("", doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !removed {
		return ctl.notFound(c)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("OTP program %d deleted successfully", id)})
}

// ========== Update tahun dokumen ==========
func (ctl *OTPController) UpdateYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "year invalid"})
	}

	err = ctl.Svc.Store.WithLock(ctl.file(""), func() error {
		doc, err := ctl.load("")
		if err != nil {
			return err
		}
		doc.Year = year
		return ctl.save("", doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return helper.Success(c, fmt.Sprintf("OTP year updated to %d", year), nil)
}
