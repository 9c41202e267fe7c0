// file: internals/features/hse/datasets/service/dataset_service.go
package service

import (
	"fmt"

	model "hseplan_backend/internals/features/hse/datasets/model"
	"hseplan_backend/internals/helpers/docstore"
)

/* =========================
   Konstanta region/base/kategori (mengikuti data lama)
   ========================= */

const (
	RegionIndonesia = "indonesia"
	RegionAsia      = "asia"
	BaseAll         = "all"
)

var IndonesiaBases = []string{"narogong", "duri", "balikpapan"}

var MatrixCategories = []string{"audit", "training", "drill", "meeting"}

var MatrixRegions = []string{RegionIndonesia, RegionAsia}

func IsIndonesiaBase(b string) bool {
	for _, x := range IndonesiaBases {
		if x == b {
			return true
		}
	}
	return false
}

func IsMatrixCategory(c string) bool {
	for _, x := range MatrixCategories {
		if x == c {
			return true
		}
	}
	return false
}

func IsMatrixRegion(r string) bool {
	for _, x := range MatrixRegions {
		if x == r {
			return true
		}
	}
	return false
}

/* =========================
   DatasetService
   ========================= */

// DatasetService: akses dokumen OTP/Matrix di atas docstore.
// Satu dokumen per (family, kategori, region, base); selector base "all"
// dibaca sebagai merge read-time dari tiga base Indonesia.
type DatasetService struct {
	Store *docstore.Store
}

func NewDatasetService(store *docstore.Store) *DatasetService {
	return &DatasetService{Store: store}
}

/* ===== Penamaan file (identik dengan data lama) ===== */

func OTPFile(base string) string {
	if base != "" && base != BaseAll {
		return fmt.Sprintf("otp_indonesia_%s.json", base)
	}
	return "otp_data.json"
}

const OTPAsiaFile = "otp_asia_data.json"

func MatrixFile(category, region, base string) string {
	if region == RegionIndonesia && base != "" && base != BaseAll {
		return fmt.Sprintf("matrix_%s_%s_%s.json", category, region, base)
	}
	return fmt.Sprintf("matrix_%s_%s.json", category, region)
}

/* ===== OTP ===== */

// LoadOTP baca dokumen OTP; base "all" → merge tiga base Indonesia.
func (s *DatasetService) LoadOTP(base string) (model.Document, error) {
	if base == BaseAll {
		var docs []model.Document
		for _, b := range IndonesiaBases {
			doc, err := s.loadFile(OTPFile(b), model.Document{Year: 2026})
			if err != nil {
				return model.Document{}, err
			}
			docs = append(docs, doc)
		}
		return model.Document{Year: 2026, Programs: model.MergePrograms(docs)}, nil
	}
	return s.loadFile(OTPFile(base), model.Document{Year: 2026})
}

func (s *DatasetService) SaveOTP(base string, doc model.Document) error {
	return s.Store.Save(OTPFile(base), doc)
}

func (s *DatasetService) LoadOTPAsia() (model.Document, error) {
	return s.loadFile(OTPAsiaFile, model.Document{Year: 2026})
}

func (s *DatasetService) SaveOTPAsia(doc model.Document) error {
	return s.Store.Save(OTPAsiaFile, doc)
}

/* ===== Matrix ===== */

func (s *DatasetService) LoadMatrix(category, region, base string) (model.Document, error) {
	empty := model.Document{Year: 2026, Category: category, Region: region}
	if region == RegionIndonesia && base == BaseAll {
		var docs []model.Document
		for _, b := range IndonesiaBases {
			doc, err := s.loadFile(MatrixFile(category, region, b), empty)
			if err != nil {
				return model.Document{}, err
			}
			docs = append(docs, doc)
		}
		empty.Programs = model.MergePrograms(docs)
		return empty, nil
	}
	return s.loadFile(MatrixFile(category, region, base), empty)
}

func (s *DatasetService) SaveMatrix(category, region, base string, doc model.Document) error {
	return s.Store.Save(MatrixFile(category, region, base), doc)
}

/* ===== internal ===== */

func (s *DatasetService) loadFile(name string, empty model.Document) (model.Document, error) {
	doc := empty
	ok, err := s.Store.Load(name, &doc)
	if err != nil {
		return model.Document{}, err
	}
	if !ok {
		return empty, nil
	}
	return doc, nil
}
