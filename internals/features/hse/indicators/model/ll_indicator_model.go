// file: internals/features/hse/indicators/model/ll_indicator_model.go
package model

// Indicator: satu baris indikator lagging/leading (target & actual teks bebas).
type Indicator struct {
	ID     int    `json:"id"`
	Target string `json:"target"`
	Actual string `json:"actual"`
}

// LLDocument: satu file JSON, diganti utuh setiap tulis.
type LLDocument struct {
	Year    int         `json:"year"`
	Lagging []Indicator `json:"lagging"`
	Leading []Indicator `json:"leading"`
}

func NewLLDocument() LLDocument {
	return LLDocument{
		Year:    2025,
		Lagging: []Indicator{},
		Leading: []Indicator{},
	}
}
