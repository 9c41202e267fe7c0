// file: internals/features/hse/kpi/controller/kpi_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "hseplan_backend/internals/features/hse/kpi/dto"
	model "hseplan_backend/internals/features/hse/kpi/model"
	helper "hseplan_backend/internals/helpers"
	"hseplan_backend/internals/helpers/docstore"
)

const kpiFile = "kpi_data.json"

type KPIController struct {
	Store     *docstore.Store
	Validator *validator.Validate
}

func NewKPIController(store *docstore.Store) *KPIController {
	return &KPIController{
		Store:     store,
		Validator: validator.New(),
	}
}

// ========== GET /kpi ==========
func (ctl *KPIController) Get(c *fiber.Ctx) error {
	doc := model.NewKPIDocument()
	if _, err := ctl.Store.Load(kpiFile, &doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc)
}

// ========== PUT /kpi/:year ==========
func (ctl *KPIController) UpdateYear(c *fiber.Ctx) error {
	year := strings.TrimSpace(c.Params("year"))
	if year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "year invalid"})
	}

	var req dto.KPIYearUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var doc model.KPIDocument
	err := ctl.Store.WithLock(kpiFile, func() error {
		doc = model.NewKPIDocument()
		if _, err := ctl.Store.Load(kpiFile, &doc); err != nil {
			return err
		}
		doc.EnsureYear(year)

		if req.ManHours != nil {
			doc.ManHours[year] = *req.ManHours
		}
		for _, pair := range req.MetricPairs() {
			metric := doc.KPI[year][pair.Key]
			if pair.Target != nil {
				metric.Target = *pair.Target
			}
			if pair.Result != nil {
				metric.Result = *pair.Result
			}
			doc.KPI[year][pair.Key] = metric
		}

		return ctl.Store.Save(kpiFile, doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("KPI data for %s updated successfully", year),
		"data":    doc,
	})
}
