// file: internals/features/hse/indicators/controller/ll_indicator_controller.go
package controller

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "hseplan_backend/internals/features/hse/indicators/dto"
	model "hseplan_backend/internals/features/hse/indicators/model"
	helper "hseplan_backend/internals/helpers"
	"hseplan_backend/internals/helpers/docstore"
)

const llFile = "ll_indicator.json"

type LLIndicatorController struct {
	Store     *docstore.Store
	Validator *validator.Validate
}

func NewLLIndicatorController(store *docstore.Store) *LLIndicatorController {
	return &LLIndicatorController{
		Store:     store,
		Validator: validator.New(),
	}
}

// ========== GET /ll-indicator ==========
func (ctl *LLIndicatorController) Get(c *fiber.Ctx) error {
	doc := model.NewLLDocument()
	if _, err := ctl.Store.Load(llFile, &doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc)
}

// ========== PUT /ll-indicator ==========
func (ctl *LLIndicatorController) Update(c *fiber.Ctx) error {
	var req dto.LLIndicatorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var doc model.LLDocument
	err := ctl.Store.WithLock(llFile, func() error {
		doc = model.NewLLDocument()
		if _, err := ctl.Store.Load(llFile, &doc); err != nil {
			return err
		}

		indicators := doc.Lagging
		if req.IndicatorType == "leading" {
			indicators = doc.Leading
		}
		for i := range indicators {
			if indicators[i].ID == req.IndicatorID {
				if req.Target != nil {
					indicators[i].Target = *req.Target
				}
				if req.Actual != nil {
					indicators[i].Actual = *req.Actual
				}
				break
			}
		}

		return ctl.Store.Save(llFile, doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "LL Indicator updated successfully", "data": doc})
}

// ========== PUT /ll-indicator/year/:year ==========
func (ctl *LLIndicatorController) UpdateYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "year invalid"})
	}

	err = ctl.Store.WithLock(llFile, func() error {
		doc := model.NewLLDocument()
		if _, err := ctl.Store.Load(llFile, &doc); err != nil {
			return err
		}
		doc.Year = year
		return ctl.Store.Save(llFile, doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return helper.Success(c, fmt.Sprintf("LL Indicator year updated to %d", year), nil)
}
