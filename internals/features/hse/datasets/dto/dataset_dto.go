// file: internals/features/hse/datasets/dto/dataset_dto.go
package dto

import (
	model "hseplan_backend/internals/features/hse/datasets/model"
)

/* =========================================================
   REQUEST: update satu bulan (partial; field absen tidak disentuh)
   ========================================================= */

type MonthUpdateRequest struct {
	Plan            *int    `json:"plan" validate:"omitempty,min=0"`
	Actual          *int    `json:"actual" validate:"omitempty,min=0"`
	WptsID          *string `json:"wpts_id"`
	PlanDate        *string `json:"plan_date" validate:"omitempty,datetime=2006-01-02"`
	ImplDate        *string `json:"impl_date" validate:"omitempty,datetime=2006-01-02"`
	PicName         *string `json:"pic_name"`
	PicManager      *string `json:"pic_manager"`
	PicEmail        *string `json:"pic_email" validate:"omitempty,email"`
	PicManagerEmail *string `json:"pic_manager_email" validate:"omitempty,email"`
}

// ApplyTo menimpa hanya field yang hadir di request.
func (r *MonthUpdateRequest) ApplyTo(m *model.MonthEntry) {
	if r.Plan != nil {
		m.Plan = *r.Plan
	}
	if r.Actual != nil {
		m.Actual = *r.Actual
	}
	if r.WptsID != nil {
		m.WptsID = *r.WptsID
	}
	if r.PlanDate != nil {
		m.PlanDate = *r.PlanDate
	}
	if r.ImplDate != nil {
		m.ImplDate = *r.ImplDate
	}
	if r.PicName != nil {
		m.PicName = *r.PicName
	}
	if r.PicManager != nil {
		m.PicManager = *r.PicManager
	}
	if r.PicEmail != nil {
		m.PicEmail = *r.PicEmail
	}
	if r.PicManagerEmail != nil {
		m.PicManagerEmail = *r.PicManagerEmail
	}
}

/* =========================================================
   REQUEST: create program
   ========================================================= */

type ProgramCreateRequest struct {
	Name      string  `json:"name" validate:"required"`
	Reference *string `json:"reference"`
	PlanType  *string `json:"plan_type"`
	DueDate   *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   REQUEST: update metadata program (partial)
   ========================================================= */

type ProgramMetaUpdateRequest struct {
	Name      *string `json:"name"`
	Reference *string `json:"reference"`
	PlanType  *string `json:"plan_type"`
	DueDate   *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// ApplyTo menimpa hanya field yang hadir di request.
func (r *ProgramMetaUpdateRequest) ApplyTo(p *model.Program) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Reference != nil {
		p.Reference = *r.Reference
	}
	if r.PlanType != nil {
		p.PlanType = *r.PlanType
	}
	if r.DueDate != nil {
		p.DueDate = r.DueDate
	}
}
