// file: internals/features/hse/kpi/dto/kpi_dto.go
package dto

// KPIYearUpdateRequest: field datar per metric, semua opsional —
// hanya yang dikirim yang di-apply.
type KPIYearUpdateRequest struct {
	ManHours *float64 `json:"man_hours" validate:"omitempty,min=0"`

	FatalityTarget     *float64 `json:"fatality_target"`
	FatalityResult     *float64 `json:"fatality_result"`
	TrirTarget         *float64 `json:"trir_target"`
	TrirResult         *float64 `json:"trir_result"`
	PvirTarget         *float64 `json:"pvir_target"`
	PvirResult         *float64 `json:"pvir_result"`
	EnvironmentTarget  *float64 `json:"environment_target"`
	EnvironmentResult  *float64 `json:"environment_result"`
	FireTarget         *float64 `json:"fire_target"`
	FireResult         *float64 `json:"fire_result"`
	FirstaidTarget     *float64 `json:"firstaid_target"`
	FirstaidResult     *float64 `json:"firstaid_result"`
	OccupationalTarget *float64 `json:"occupational_target"`
	OccupationalResult *float64 `json:"occupational_result"`
}

// MetricPair supaya controller bisa loop tanpa reflection.
type MetricPair struct {
	Key    string
	Target *float64
	Result *float64
}

func (r *KPIYearUpdateRequest) MetricPairs() []MetricPair {
	return []MetricPair{
		{"fatality", r.FatalityTarget, r.FatalityResult},
		{"trir", r.TrirTarget, r.TrirResult},
		{"pvir", r.PvirTarget, r.PvirResult},
		{"environment", r.EnvironmentTarget, r.EnvironmentResult},
		{"fire", r.FireTarget, r.FireResult},
		{"firstaid", r.FirstaidTarget, r.FirstaidResult},
		{"occupational", r.OccupationalTarget, r.OccupationalResult},
	}
}
