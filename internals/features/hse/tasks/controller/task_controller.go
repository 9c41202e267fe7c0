// file: internals/features/hse/tasks/controller/task_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "hseplan_backend/internals/features/hse/tasks/dto"
	model "hseplan_backend/internals/features/hse/tasks/model"
	helper "hseplan_backend/internals/helpers"
	"hseplan_backend/internals/helpers/docstore"
)

const taskFile = "tasks.json"

type TaskController struct {
	Store     *docstore.Store
	Validator *validator.Validate
}

func NewTaskController(store *docstore.Store) *TaskController {
	return &TaskController{
		Store:     store,
		Validator: validator.New(),
	}
}

// ========== GET /tasks ==========
func (ctl *TaskController) List(c *fiber.Ctx) error {
	doc := model.NewTaskDocument()
	if _, err := ctl.Store.Load(taskFile, &doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc.Tasks)
}

// ========== POST /tasks ==========
func (ctl *TaskController) Create(c *fiber.Ctx) error {
	var req dto.TaskCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var task model.Task
	err := ctl.Store.WithLock(taskFile, func() error {
		doc := model.NewTaskDocument()
		if _, err := ctl.Store.Load(taskFile, &doc); err != nil {
			return err
		}
		task = req.ToModel(doc.TakeID())
		doc.Tasks = append(doc.Tasks, task)
		return ctl.Store.Save(taskFile, doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// ========== PUT /tasks/:id ==========
func (ctl *TaskController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var task *model.Task
	err := ctl.Store.WithLock(taskFile, func() error {
		doc := model.NewTaskDocument()
		if _, err := ctl.Store.Load(taskFile, &doc); err != nil {
			return err
		}
		idx := doc.FindTask(id)
		if idx < 0 {
			return nil
		}
		if req.Status != nil && *req.Status != "" {
			doc.Tasks[idx].Status = *req.Status
		}
		if req.WptsID != nil {
			doc.Tasks[idx].WptsID = *req.WptsID
		}
		copied := doc.Tasks[idx]
		task = &copied
		return ctl.Store.Save(taskFile, doc)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if task == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	return c.JSON(task)
}
