// file: internals/features/hse/datasets/route/dataset_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	datasetController "hseplan_backend/internals/features/hse/datasets/controller"
	datasetService "hseplan_backend/internals/features/hse/datasets/service"
	"hseplan_backend/internals/helpers/docstore"
)

func DatasetRoutes(r fiber.Router, store *docstore.Store) {
	svc := datasetService.NewDatasetService(store)

	otpCtl := datasetController.NewOTPController(svc, false)
	otp := r.Group("/otp")
	{
		otp.Get("/", otpCtl.List)
		otp.Post("/", otpCtl.Create)
		// "year" harus terdaftar sebelum ":id"
		otp.Put("/year/:year", otpCtl.UpdateYear)
		otp.Get("/:id", otpCtl.GetByID)
		otp.Put("/:id/month/:month", otpCtl.UpdateMonth)
		otp.Put("/:id", otpCtl.UpdateMeta)
		otp.Delete("/:id", otpCtl.Delete)
	}

	otpAsiaCtl := datasetController.NewOTPController(svc, true)
	otpAsia := r.Group("/otp-asia")
	{
		otpAsia.Get("/", otpAsiaCtl.List)
		otpAsia.Post("/", otpAsiaCtl.Create)
		otpAsia.Put("/year/:year", otpAsiaCtl.UpdateYear)
		otpAsia.Get("/:id", otpAsiaCtl.GetByID)
		otpAsia.Put("/:id/month/:month", otpAsiaCtl.UpdateMonth)
		otpAsia.Put("/:id", otpAsiaCtl.UpdateMeta)
		otpAsia.Delete("/:id", otpAsiaCtl.Delete)
	}

	matrixCtl := datasetController.NewMatrixController(svc)
	matrix := r.Group("/matrix")
	{
		matrix.Get("/", matrixCtl.List)
		matrix.Post("/", matrixCtl.Create)
		matrix.Get("/:id", matrixCtl.GetByID)
		matrix.Put("/:id/month/:month", matrixCtl.UpdateMonth)
		matrix.Put("/:id", matrixCtl.UpdateMeta)
		matrix.Delete("/:id", matrixCtl.Delete)
	}
}
