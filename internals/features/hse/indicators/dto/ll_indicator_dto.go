// file: internals/features/hse/indicators/dto/ll_indicator_dto.go
package dto

// LLIndicatorUpdateRequest: update satu indikator (partial).
type LLIndicatorUpdateRequest struct {
	IndicatorType string  `json:"indicator_type" validate:"required,oneof=lagging leading"`
	IndicatorID   int     `json:"indicator_id" validate:"required,min=1"`
	Target        *string `json:"target"`
	Actual        *string `json:"actual"`
}
