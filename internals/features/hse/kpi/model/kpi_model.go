// file: internals/features/hse/kpi/model/kpi_model.go
package model

// Metric: sepasang target vs realisasi untuk satu indikator safety.
type Metric struct {
	Target float64 `json:"target"`
	Result float64 `json:"result"`
}

// KPIDocument: satu file JSON, keyed by string tahun.
type KPIDocument struct {
	ManHours map[string]float64           `json:"man_hours"`
	KPI      map[string]map[string]Metric `json:"kpi"`
}

func NewKPIDocument() KPIDocument {
	return KPIDocument{
		ManHours: map[string]float64{},
		KPI:      map[string]map[string]Metric{},
	}
}

// MetricKeys: indikator yang ditrack per tahun.
var MetricKeys = []string{"fatality", "trir", "pvir", "environment", "fire", "firstaid", "occupational"}

// EnsureYear lazy-init entri tahun + semua metric {0,0}.
func (d *KPIDocument) EnsureYear(year string) {
	if d.ManHours == nil {
		d.ManHours = map[string]float64{}
	}
	if d.KPI == nil {
		d.KPI = map[string]map[string]Metric{}
	}
	if _, ok := d.ManHours[year]; !ok {
		d.ManHours[year] = 0
	}
	if _, ok := d.KPI[year]; !ok {
		d.KPI[year] = map[string]Metric{}
	}
	for _, m := range MetricKeys {
		if _, ok := d.KPI[year][m]; !ok {
			d.KPI[year][m] = Metric{}
		}
	}
}
