// file: internals/features/hse/calendar/controller/calendar_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	dsmodel "hseplan_backend/internals/features/hse/datasets/model"
	"hseplan_backend/internals/features/hse/datasets/service"
)

// CalendarEvent: satu entri bulan dari OTP/Matrix yang punya tanggal.
type CalendarEvent struct {
	ID          int     `json:"id"`
	Source      string  `json:"source"`
	Region      string  `json:"region"`
	Base        *string `json:"base"`
	Category    *string `json:"category"`
	ProgramName string  `json:"program_name"`
	Month       string  `json:"month"`
	PlanDate    string  `json:"plan_date"`
	ImplDate    string  `json:"impl_date"`
	PicName     string  `json:"pic_name"`
	PlanType    string  `json:"plan_type"`
}

type CalendarController struct {
	Svc *service.DatasetService
}

func NewCalendarController(svc *service.DatasetService) *CalendarController {
	return &CalendarController{Svc: svc}
}

// ========== GET /calendar-events ==========
// Agregasi read-only dari semua file OTP & Matrix; file yang gagal
// dibaca dilewati supaya kalender tetap tampil.
func (ctl *CalendarController) List(c *fiber.Ctx) error {
	events := []CalendarEvent{}

	// OTP Indonesia, per base
	for _, base := range service.IndonesiaBases {
		doc, err := ctl.Svc.LoadOTP(base)
		if err != nil {
			log.Printf("[CALENDAR] gagal baca OTP %s: %v", base, err)
			continue
		}
		b := base
		events = appendEvents(events, doc, "otp", service.RegionIndonesia, &b, nil)
	}

	// OTP Asia
	if doc, err := ctl.Svc.LoadOTPAsia(); err != nil {
		log.Printf("[CALENDAR] gagal baca OTP Asia: %v", err)
	} else {
		events = appendEvents(events, doc, "otp", service.RegionAsia, nil, nil)
	}

	// Matrix Indonesia, per kategori per base
	for _, category := range service.MatrixCategories {
		for _, base := range service.IndonesiaBases {
			doc, err := ctl.Svc.LoadMatrix(category, service.RegionIndonesia, base)
			if err != nil {
				log.Printf("[CALENDAR] gagal baca Matrix %s/%s: %v", category, base, err)
				continue
			}
			b, cat := base, category
			events = appendEvents(events, doc, "matrix", service.RegionIndonesia, &b, &cat)
		}
	}

	return c.JSON(fiber.Map{"events": events})
}

func appendEvents(events []CalendarEvent, doc dsmodel.Document, source, region string, base, category *string) []CalendarEvent {
	for _, prog := range doc.Programs {
		for _, month := range dsmodel.MonthKeys {
			entry, ok := prog.Months[month]
			if !ok {
				continue
			}
			if entry.PlanDate == "" && entry.ImplDate == "" {
				continue
			}
			events = append(events, CalendarEvent{
				ID:          prog.ID,
				Source:      source,
				Region:      region,
				Base:        base,
				Category:    category,
				ProgramName: prog.Name,
				Month:       month,
				PlanDate:    entry.PlanDate,
				ImplDate:    entry.ImplDate,
				PicName:     entry.PicName,
				PlanType:    prog.PlanType,
			})
		}
	}
	return events
}
