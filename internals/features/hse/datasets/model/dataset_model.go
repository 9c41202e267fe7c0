// file: internals/features/hse/datasets/model/dataset_model.go
package model

import "math"

/* =========================
   Month keys
   ========================= */

var MonthKeys = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

func IsValidMonth(m string) bool {
	for _, k := range MonthKeys {
		if k == m {
			return true
		}
	}
	return false
}

/* =========================
   Dataset document (satu file JSON per kombinasi)
   ========================= */

// MonthEntry: data satu bulan untuk satu program.
// Field angka default 0, field teks default kosong (dan di-omit saat kosong
// supaya file JSON tetap mirip bentuk aslinya).
type MonthEntry struct {
	Plan            int    `json:"plan"`
	Actual          int    `json:"actual"`
	WptsID          string `json:"wpts_id,omitempty"`
	PlanDate        string `json:"plan_date,omitempty"`
	ImplDate        string `json:"impl_date,omitempty"`
	PicName         string `json:"pic_name,omitempty"`
	PicManager      string `json:"pic_manager,omitempty"`
	PicEmail        string `json:"pic_email,omitempty"`
	PicManagerEmail string `json:"pic_manager_email,omitempty"`
}

// Program: satu baris program dalam dokumen OTP/Matrix.
// Reference hanya dipakai family Matrix.
type Program struct {
	ID        int                   `json:"id"`
	Name      string                `json:"name"`
	Reference string                `json:"reference,omitempty"`
	PlanType  string                `json:"plan_type,omitempty"`
	DueDate   *string               `json:"due_date"`
	Months    map[string]MonthEntry `json:"months"`
	Progress  int                   `json:"progress"`
}

// Document: isi utuh satu file dataset.
type Document struct {
	Year     int       `json:"year"`
	Category string    `json:"category,omitempty"`
	Region   string    `json:"region,omitempty"`
	Programs []Program `json:"programs"`
}

// NewProgram membuat program baru dengan kerangka 12 bulan plan/actual nol.
func NewProgram(id int, name, reference, planType string, dueDate *string) Program {
	months := make(map[string]MonthEntry, len(MonthKeys))
	for _, m := range MonthKeys {
		months[m] = MonthEntry{}
	}
	return Program{
		ID:        id,
		Name:      name,
		Reference: reference,
		PlanType:  planType,
		DueDate:   dueDate,
		Months:    months,
	}
}

// NextID: max id existing + 1 (mulai dari 1 untuk dokumen kosong).
func NextID(programs []Program) int {
	max := 0
	for _, p := range programs {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// FindProgram cari program by id; return index -1 bila tidak ada.
func FindProgram(programs []Program, id int) int {
	for i := range programs {
		if programs[i].ID == id {
			return i
		}
	}
	return -1
}

/* =========================
   Progress
   ========================= */

// Dua rumus progress ini sengaja TIDAK disamakan: family OTP menganggap
// total plan 0 sebagai 100%, family Matrix menganggapnya 0%. Divergensi
// bawaan data lama — jangan "diperbaiki" diam-diam (lihat DESIGN.md).

// ProgressOTP: round(actual/plan*100), cap 100; plan 0 → 100.
func ProgressOTP(p *Program) int {
	totalPlan, totalActual := totals(p)
	if totalPlan == 0 {
		if totalActual >= 0 {
			return 100
		}
		return 0
	}
	pct := int(math.Round(float64(totalActual) / float64(totalPlan) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// ProgressMatrix: truncate(actual/plan*100), cap 100; plan 0 → 0.
func ProgressMatrix(p *Program) int {
	totalPlan, totalActual := totals(p)
	if totalPlan == 0 {
		return 0
	}
	pct := int(float64(totalActual) / float64(totalPlan) * 100)
	if pct > 100 {
		return 100
	}
	return pct
}

func totals(p *Program) (plan, actual int) {
	for _, m := range p.Months {
		plan += m.Plan
		actual += m.Actual
	}
	return
}

/* =========================
   Merge lintas base (selector "all")
   ========================= */

// MergePrograms menggabungkan program dari beberapa dokumen base, keyed by id.
// Field skalar milik dokumen yang pertama terlihat menang; field bulan dari
// dokumen berikutnya hanya disalin bila nilai sebelumnya falsy (0 / "").
func MergePrograms(docs []Document) []Program {
	var order []int
	byID := make(map[int]*Program)

	for _, doc := range docs {
		for i := range doc.Programs {
			src := doc.Programs[i]
			existing, ok := byID[src.ID]
			if !ok {
				cp := src
				cp.Months = make(map[string]MonthEntry, len(src.Months))
				for k, v := range src.Months {
					cp.Months[k] = v
				}
				byID[src.ID] = &cp
				order = append(order, src.ID)
				continue
			}
			for monthKey, srcMonth := range src.Months {
				dstMonth, found := existing.Months[monthKey]
				if !found {
					existing.Months[monthKey] = srcMonth
					continue
				}
				mergeMonthFields(&dstMonth, srcMonth)
				existing.Months[monthKey] = dstMonth
			}
		}
	}

	out := make([]Program, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

func mergeMonthFields(dst *MonthEntry, src MonthEntry) {
	if src.Plan != 0 && dst.Plan == 0 {
		dst.Plan = src.Plan
	}
	if src.Actual != 0 && dst.Actual == 0 {
		dst.Actual = src.Actual
	}
	if src.WptsID != "" && dst.WptsID == "" {
		dst.WptsID = src.WptsID
	}
	if src.PlanDate != "" && dst.PlanDate == "" {
		dst.PlanDate = src.PlanDate
	}
	if src.ImplDate != "" && dst.ImplDate == "" {
		dst.ImplDate = src.ImplDate
	}
	if src.PicName != "" && dst.PicName == "" {
		dst.PicName = src.PicName
	}
	if src.PicManager != "" && dst.PicManager == "" {
		dst.PicManager = src.PicManager
	}
	if src.PicEmail != "" && dst.PicEmail == "" {
		dst.PicEmail = src.PicEmail
	}
	if src.PicManagerEmail != "" && dst.PicManagerEmail == "" {
		dst.PicManagerEmail = src.PicManagerEmail
	}
}
