// file: internals/features/hse/programs/dto/legacy_dto.go
package dto

// LegacyProjectCreateRequest: bentuk form "project" dari frontend lama.
type LegacyProjectCreateRequest struct {
	Name            string `json:"name" validate:"required"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	WellName        string `json:"well_name"`
	KontrakNo       string `json:"kontrak_no"`
	Status          string `json:"status"`
	StartDate       string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate         string `json:"end_date"`
	RigDown         string `json:"rig_down"`
	AssignedTo      string `json:"assigned_to"`
	PicEmail        string `json:"pic_email" validate:"omitempty,email"`
	PicManagerEmail string `json:"pic_manager_email" validate:"omitempty,email"`
}
