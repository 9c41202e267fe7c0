// file: internals/features/hse/programs/dto/hse_program_dto.go
package dto

import (
	"time"

	model "hseplan_backend/internals/features/hse/programs/model"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateProgramRequest struct {
	Title       string    `json:"title" validate:"required"`
	ProgramType *string   `json:"program_type"`
	PlannedDate time.Time `json:"planned_date" validate:"required"`
	PicName     *string   `json:"pic_name"`

	// kosong → fallback ke configs.DefaultManagerEmail
	ManagerEmail *string `json:"manager_email" validate:"omitempty,email"`
}

func (r *CreateProgramRequest) ToModel(defaultType, defaultManagerEmail string) *model.HSEProgram {
	p := &model.HSEProgram{
		Title:        r.Title,
		ProgramType:  defaultType,
		PlannedDate:  r.PlannedDate,
		Status:       model.StatusPending,
		PicName:      r.PicName,
		ManagerEmail: defaultManagerEmail,
		CreatedAt:    time.Now().UTC(),
	}
	if r.ProgramType != nil && *r.ProgramType != "" {
		p.ProgramType = *r.ProgramType
	}
	if r.ManagerEmail != nil && *r.ManagerEmail != "" {
		p.ManagerEmail = *r.ManagerEmail
	}
	return p
}

/* =========================================================
   REQUEST: Status update (butuh WPTS number)
   ========================================================= */

type StatusUpdateRequest struct {
	ActualDate   time.Time `json:"actual_date" validate:"required"`
	Status       string    `json:"status" validate:"required"`
	WptsNumber   string    `json:"wpts_number"`
	EvidenceLink *string   `json:"evidence_link"`
}

/* =========================================================
   REQUEST: Full update (partial; hanya field yang dikirim)
   ========================================================= */

type FullUpdateRequest struct {
	Title        *string    `json:"title"`
	ProgramType  *string    `json:"program_type"`
	PlannedDate  *time.Time `json:"planned_date"`
	ActualDate   *time.Time `json:"actual_date"`
	Status       *string    `json:"status"`
	WptsNumber   *string    `json:"wpts_number"`
	EvidenceLink *string    `json:"evidence_link"`
	PicName      *string    `json:"pic_name"`
	ManagerEmail *string    `json:"manager_email" validate:"omitempty,email"`
}

// ApplyTo menimpa hanya field yang hadir di request (created_at tidak tersentuh).
func (r *FullUpdateRequest) ApplyTo(p *model.HSEProgram) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.ProgramType != nil {
		p.ProgramType = *r.ProgramType
	}
	if r.PlannedDate != nil {
		p.PlannedDate = *r.PlannedDate
	}
	if r.ActualDate != nil {
		p.ActualDate = r.ActualDate
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.WptsNumber != nil {
		p.WptsNumber = r.WptsNumber
	}
	if r.EvidenceLink != nil {
		p.EvidenceLink = r.EvidenceLink
	}
	if r.PicName != nil {
		p.PicName = r.PicName
	}
	if r.ManagerEmail != nil {
		p.ManagerEmail = *r.ManagerEmail
	}
}

/* =========================================================
   RESPONSE: Statistics dashboard
   ========================================================= */

type StatisticsResponse struct {
	TotalPrograms  int64            `json:"total_programs"`
	Completed      int64            `json:"completed"`
	Pending        int64            `json:"pending"`
	ThisMonth      int64            `json:"this_month"`
	Upcoming       int64            `json:"upcoming"`
	CompletionRate float64          `json:"completion_rate"`
	ByType         map[string]int64 `json:"by_type"`
}
