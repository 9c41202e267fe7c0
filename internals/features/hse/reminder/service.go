// file: internals/features/hse/reminder/service.go
package reminder

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	dsmodel "hseplan_backend/internals/features/hse/datasets/model"
	"hseplan_backend/internals/features/hse/datasets/service"
	programModel "hseplan_backend/internals/features/hse/programs/model"
	"hseplan_backend/internals/helpers/docstore"
	"hseplan_backend/internals/helpers/mailer"
)

// Service menjalankan sweep reminder harian: program HSE dari DB dan
// dataset OTP/Matrix dari docstore. Now di-inject supaya window tanggal
// bisa dites deterministik.
type Service struct {
	DB    *gorm.DB
	Store *docstore.Store
	Mail  mailer.Sender
	Now   func() time.Time
}

func NewService(db *gorm.DB, store *docstore.Store, mail mailer.Sender) *Service {
	return &Service{DB: db, Store: store, Mail: mail, Now: time.Now}
}

// today: tanggal kalender dari Now (jam dibuang).
func (s *Service) today() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

/* =========================
   Sweep 1: program HSE (DB)
   ========================= */

// CheckProgramReminders kirim dua gelombang email:
//   - H-30 (apa pun statusnya): notifikasi 1 bulan
//   - H-14 dan status belum Closed: peringatan URGENT
//
// Window dihitung per hari kalender: [target 00:00, target+1d 00:00).
func (s *Service) CheckProgramReminders() {
	today := s.today()

	oneMonth := today.AddDate(0, 0, 30)
	var programs1m []programModel.HSEProgram
	if err := s.DB.
		Where("planned_date >= ? AND planned_date < ?", oneMonth, oneMonth.AddDate(0, 0, 1)).
		Find(&programs1m).Error; err != nil {
		log.Printf("[REMINDER ERROR] Gagal query program H-30: %v", err)
	}
	for _, prog := range programs1m {
		s.Mail.Send(
			prog.ManagerEmail,
			fmt.Sprintf("Upcoming HSE Program: %s due in 1 Month", prog.Title),
			fmt.Sprintf("Reminder: The HSE program '%s' is scheduled for %s.", prog.Title, prog.PlannedDate.Format("2006-01-02")),
		)
		log.Printf("[REMINDER] Sent 1-month warning for: %s", prog.Title)
	}

	twoWeeks := today.AddDate(0, 0, 14)
	var programs2w []programModel.HSEProgram
	if err := s.DB.
		Where("planned_date >= ? AND planned_date < ? AND status != ?",
			twoWeeks, twoWeeks.AddDate(0, 0, 1), programModel.StatusClosed).
		Find(&programs2w).Error; err != nil {
		log.Printf("[REMINDER ERROR] Gagal query program H-14: %v", err)
	}
	for _, prog := range programs2w {
		s.Mail.Send(
			prog.ManagerEmail,
			fmt.Sprintf("URGENT: HSE Program %s due in 2 Weeks!", prog.Title),
			fmt.Sprintf("URGENT: The HSE program '%s' is due on %s and is still pending.", prog.Title, prog.PlannedDate.Format("2006-01-02")),
		)
		log.Printf("[URGENT] Sent 2-week warning for: %s", prog.Title)
	}
}

/* =========================
   Sweep 2: dataset OTP/Matrix (docstore)
   ========================= */

type datasetSource struct {
	Name string
	File string
}

// datasetSources: semua file per-base yang disisir sweep (selector "all"
// sengaja tidak ikut — isinya turunan dari file per-base ini).
func datasetSources() []datasetSource {
	sources := []datasetSource{
		{"OTP Indonesia (Narogong)", service.OTPFile("narogong")},
		{"OTP Indonesia (Duri)", service.OTPFile("duri")},
		{"OTP Indonesia (Balikpapan)", service.OTPFile("balikpapan")},
		{"OTP Asia", service.OTPAsiaFile},
	}
	for _, cat := range service.MatrixCategories {
		for _, base := range service.IndonesiaBases {
			sources = append(sources, datasetSource{
				Name: fmt.Sprintf("Matrix %s (%s)", title(cat), title(base)),
				File: service.MatrixFile(cat, service.RegionIndonesia, base),
			})
		}
	}
	return sources
}

// CheckDatasetReminders sisir plan_date semua bulan di semua file dataset:
// H-14 reminder biasa, H-7 URGENT. Email ke pic_email, plus tembusan ke
// pic_manager_email kalau berbeda. Return jumlah email yang terkirim.
func (s *Service) CheckDatasetReminders() int {
	today := s.today()
	twoWeeksStr := today.AddDate(0, 0, 14).Format("2006-01-02")
	oneWeekStr := today.AddDate(0, 0, 7).Format("2006-01-02")

	remindersSent := 0

	for _, src := range datasetSources() {
		var doc dsmodel.Document
		ok, err := s.Store.Load(src.File, &doc)
		if err != nil {
			log.Printf("[REMINDER ERROR] Failed to process %s: %v", src.File, err)
			continue
		}
		if !ok {
			continue
		}

		for _, prog := range doc.Programs {
			programName := prog.Name
			if programName == "" {
				programName = "Unknown Program"
			}

			for _, monthKey := range dsmodel.MonthKeys {
				month, found := prog.Months[monthKey]
				if !found || month.PlanDate == "" {
					continue
				}

				daysRemaining := 0
				switch month.PlanDate {
				case twoWeeksStr:
					daysRemaining = 14
				case oneWeekStr:
					daysRemaining = 7
				default:
					continue
				}

				picName := month.PicName
				if picName == "" {
					picName = "N/A"
				}

				subject := fmt.Sprintf("HSE Reminder: %s - %d days remaining", programName, daysRemaining)
				if daysRemaining == 7 {
					subject = "⚠️ URGENT: " + subject
				}
				htmlBody := mailer.ReminderHTML(daysRemaining, programName, src.Name, month.PlanDate, monthKey, picName)

				if month.PicEmail != "" {
					if s.Mail.Send(month.PicEmail, subject, htmlBody) {
						remindersSent++
					}
				}
				if month.PicManagerEmail != "" && month.PicManagerEmail != month.PicEmail {
					if s.Mail.Send(month.PicManagerEmail, "[Manager Copy] "+subject, htmlBody) {
						remindersSent++
					}
				}
			}
		}
	}

	log.Printf("[REMINDER CHECK] Completed. Sent %d reminder emails.", remindersSent)
	return remindersSent
}

// title: kapital huruf pertama saja ("narogong" → "Narogong").
func title(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
