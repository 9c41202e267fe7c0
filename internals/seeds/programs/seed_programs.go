// file: internals/seeds/programs/seed_programs.go
package programs

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"hseplan_backend/internals/configs"
	"hseplan_backend/internals/constants"
	"hseplan_backend/internals/features/hse/programs/model"
)

type ProgramSeed struct {
	Title        string  `json:"title"`
	ProgramType  string  `json:"program_type"`
	PlannedDate  string  `json:"planned_date"`
	PicName      *string `json:"pic_name"`
	ManagerEmail string  `json:"manager_email"`
}

// SeedProgramsFromJSON isi tabel hse_programs dari file JSON.
// Judul yang sudah ada dilewati supaya seed aman diulang.
func SeedProgramsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file program:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []ProgramSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.HSEProgram
		if err := db.Where("title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Program '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		planned, err := time.Parse("2006-01-02", data.PlannedDate)
		if err != nil {
			log.Printf("❌ planned_date '%s' tidak valid untuk '%s': %v", data.PlannedDate, data.Title, err)
			continue
		}

		programType := data.ProgramType
		if programType == "" {
			programType = constants.DefaultProgramType
		}
		managerEmail := data.ManagerEmail
		if managerEmail == "" {
			managerEmail = configs.DefaultManagerEmail
		}

		program := model.HSEProgram{
			Title:        data.Title,
			ProgramType:  programType,
			PlannedDate:  planned,
			Status:       model.StatusPending,
			PicName:      data.PicName,
			ManagerEmail: managerEmail,
			CreatedAt:    time.Now().UTC(),
		}
		if err := db.Create(&program).Error; err != nil {
			log.Printf("❌ Gagal insert program '%s': %v", data.Title, err)
			continue
		}
		log.Printf("✅ Program '%s' berhasil di-seed.", data.Title)
	}
}
