// file: internals/features/hse/programs/model/hse_program_model.go
package model

import (
	"time"
)

/* =========================
   Model: hse_programs
   ========================= */

// HSEProgram adalah aktivitas HSE terjadwal level organisasi
// (audit, training, drill, meeting) dengan tracking plan vs actual.
type HSEProgram struct {
	ID          uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"column:title;type:text;not null;index"`
	ProgramType string    `json:"program_type" gorm:"column:program_type;type:varchar(40);not null;default:hse_plan;index"`
	PlannedDate time.Time `json:"planned_date" gorm:"column:planned_date;not null"`

	// diisi saat program selesai
	ActualDate *time.Time `json:"actual_date" gorm:"column:actual_date"`

	// status bebas; hanya "Closed" yang berarti selesai
	Status string `json:"status" gorm:"column:status;type:varchar(40);not null;default:pending"`

	// wajib sebelum program bisa ditutup lewat update-status
	WptsNumber   *string `json:"wpts_number" gorm:"column:wpts_number;type:varchar(60)"`
	EvidenceLink *string `json:"evidence_link" gorm:"column:evidence_link;type:text"`

	PicName      *string `json:"pic_name" gorm:"column:pic_name;type:varchar(120)"`
	ManagerEmail string  `json:"manager_email" gorm:"column:manager_email;type:varchar(120);not null"`

	// diset sekali saat insert, tidak pernah diubah
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null"`
}

func (HSEProgram) TableName() string { return "hse_programs" }

// StatusClosed satu-satunya nilai status yang bermakna "selesai".
const StatusClosed = "Closed"

const StatusPending = "pending"
