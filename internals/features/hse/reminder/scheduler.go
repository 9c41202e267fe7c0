// file: internals/features/hse/reminder/scheduler.go
package reminder

import (
	"log"
	"time"
)

// StartReminderScheduler jalankan dua sweep harian di background:
// 08:00 WIB untuk program HSE, 08:05 WIB untuk dataset OTP/Matrix.
func StartReminderScheduler(svc *Service) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.FixedZone("WIB", 7*3600)
	}

	go runDaily(loc, 8, 0, func() {
		log.Println("[REMINDER] Menjalankan sweep program HSE...")
		svc.CheckProgramReminders()
	})
	go runDaily(loc, 8, 5, func() {
		log.Println("[REMINDER] Menjalankan sweep OTP/Matrix...")
		svc.CheckDatasetReminders()
	})

	log.Println("[STARTUP] Scheduler started - daily checks at 08:00 (HSE Programs) and 08:05 (OTP/Matrix)")
}

// runDaily tidur sampai jam:menit berikutnya di zona loc, jalankan job,
// lalu ulang tiap 24 jam.
func runDaily(loc *time.Location, hour, minute int, job func()) {
	for {
		now := time.Now().In(loc)
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		time.Sleep(time.Until(next))
		job()
	}
}
