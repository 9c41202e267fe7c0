// file: internals/features/hse/tasks/dto/task_dto.go
package dto

import model "hseplan_backend/internals/features/hse/tasks/model"

// TaskCreateRequest: payload pembuatan task baru.
type TaskCreateRequest struct {
	ProjectID          string  `json:"project_id" validate:"required"`
	Code               string  `json:"code" validate:"required"`
	Title              string  `json:"title" validate:"required"`
	ImplementationDate *string `json:"implementation_date"`
	Frequency          *string `json:"frequency"`
	PicName            *string `json:"pic_name"`
	PicEmail           *string `json:"pic_email"`
	Status             *string `json:"status"`
}

func (r *TaskCreateRequest) ToModel(id string) model.Task {
	frequency := "once"
	if r.Frequency != nil && *r.Frequency != "" {
		frequency = *r.Frequency
	}
	status := "Upcoming"
	if r.Status != nil && *r.Status != "" {
		status = *r.Status
	}
	return model.Task{
		ID:                 id,
		ProjectID:          r.ProjectID,
		Code:               r.Code,
		Title:              r.Title,
		ImplementationDate: r.ImplementationDate,
		Frequency:          frequency,
		PicName:            r.PicName,
		PicEmail:           r.PicEmail,
		Status:             status,
		Attachments:        []string{},
	}
}

// TaskUpdateRequest: partial update; hanya field terisi yang di-apply.
type TaskUpdateRequest struct {
	Status *string `json:"status"`
	WptsID *string `json:"wpts_id"`
}
