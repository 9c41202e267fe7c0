// file: internals/features/hse/reminder/service_test.go
package reminder

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dsmodel "hseplan_backend/internals/features/hse/datasets/model"
	"hseplan_backend/internals/features/hse/datasets/service"
	programModel "hseplan_backend/internals/features/hse/programs/model"
	"hseplan_backend/internals/helpers/docstore"
)

type sentMail struct {
	To      string
	Subject string
}

// fakeSender merekam semua kiriman; alamat kosong dianggap gagal
// (mengikuti kontrak Sender).
type fakeSender struct {
	sent []sentMail
}

func (f *fakeSender) Send(toEmail, subject, htmlBody string) bool {
	if toEmail == "" {
		return false
	}
	f.sent = append(f.sent, sentMail{To: toEmail, Subject: subject})
	return true
}

func newReminderService(t *testing.T) (*Service, *fakeSender, *gorm.DB, *docstore.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&programModel.HSEProgram{}))

	store := docstore.New(t.TempDir())
	mail := &fakeSender{}

	svc := NewService(db, store, mail)
	// jam tetap supaya window tanggal deterministik
	svc.Now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	}
	return svc, mail, db, store
}

func mkProgram(t *testing.T, db *gorm.DB, title, status string, planned time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&programModel.HSEProgram{
		Title:        title,
		ProgramType:  "hse_plan",
		PlannedDate:  planned,
		Status:       status,
		ManagerEmail: "manager@example.com",
		CreatedAt:    time.Now(),
	}).Error)
}

func TestProgramReminderOneMonthWarning(t *testing.T) {
	svc, mail, db, _ := newReminderService(t)

	// today = 2026-03-01, H-30 = 2026-03-31
	mkProgram(t, db, "Audit Tahunan", programModel.StatusClosed, time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC))

	svc.CheckProgramReminders()

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "manager@example.com", mail.sent[0].To)
	assert.Equal(t, "Upcoming HSE Program: Audit Tahunan due in 1 Month", mail.sent[0].Subject)
}

func TestProgramReminderTwoWeekSkipsClosed(t *testing.T) {
	svc, mail, db, _ := newReminderService(t)

	// H-14 = 2026-03-15; yang Closed tidak dapat peringatan urgent
	mkProgram(t, db, "Sudah Selesai", programModel.StatusClosed, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	mkProgram(t, db, "Masih Pending", programModel.StatusPending, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	svc.CheckProgramReminders()

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "URGENT: HSE Program Masih Pending due in 2 Weeks!", mail.sent[0].Subject)
}

func TestProgramReminderOutsideWindowsIsSilent(t *testing.T) {
	svc, mail, db, _ := newReminderService(t)

	mkProgram(t, db, "Masih Jauh", programModel.StatusPending, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	mkProgram(t, db, "Sudah Lewat", programModel.StatusPending, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	svc.CheckProgramReminders()
	assert.Empty(t, mail.sent)
}

func seedDatasetFile(t *testing.T, store *docstore.Store, file string, entry dsmodel.MonthEntry) {
	t.Helper()
	prog := dsmodel.NewProgram(1, "Fire Drill", "", "Monthly", nil)
	prog.Months["mar"] = entry
	require.NoError(t, store.Save(file, dsmodel.Document{Year: 2026, Programs: []dsmodel.Program{prog}}))
}

func TestDatasetReminderTwoWeeksAndManagerCopy(t *testing.T) {
	svc, mail, _, store := newReminderService(t)

	// today+14 = 2026-03-15
	seedDatasetFile(t, store, service.OTPFile("narogong"), dsmodel.MonthEntry{
		Plan:            1,
		PlanDate:        "2026-03-15",
		PicName:         "Budi",
		PicEmail:        "budi@example.com",
		PicManagerEmail: "manager@example.com",
	})

	sent := svc.CheckDatasetReminders()

	assert.Equal(t, 2, sent)
	require.Len(t, mail.sent, 2)
	assert.Equal(t, "budi@example.com", mail.sent[0].To)
	assert.Equal(t, "HSE Reminder: Fire Drill - 14 days remaining", mail.sent[0].Subject)
	assert.Equal(t, "manager@example.com", mail.sent[1].To)
	assert.Equal(t, "[Manager Copy] HSE Reminder: Fire Drill - 14 days remaining", mail.sent[1].Subject)
}

func TestDatasetReminderOneWeekIsUrgent(t *testing.T) {
	svc, mail, _, store := newReminderService(t)

	// today+7 = 2026-03-08
	seedDatasetFile(t, store, service.MatrixFile("drill", service.RegionIndonesia, "duri"), dsmodel.MonthEntry{
		Plan:     1,
		PlanDate: "2026-03-08",
		PicEmail: "pic@example.com",
	})

	sent := svc.CheckDatasetReminders()

	assert.Equal(t, 1, sent)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "⚠️ URGENT: HSE Reminder: Fire Drill - 7 days remaining", mail.sent[0].Subject)
}

func TestDatasetReminderSkipsDuplicateManagerAndEmptyEmail(t *testing.T) {
	svc, mail, _, store := newReminderService(t)

	// pic == manager → satu email saja
	seedDatasetFile(t, store, service.OTPFile("duri"), dsmodel.MonthEntry{
		PlanDate:        "2026-03-15",
		PicEmail:        "same@example.com",
		PicManagerEmail: "same@example.com",
	})
	// tanpa alamat sama sekali → tidak dihitung
	seedDatasetFile(t, store, service.OTPFile("balikpapan"), dsmodel.MonthEntry{
		PlanDate: "2026-03-15",
	})

	sent := svc.CheckDatasetReminders()

	assert.Equal(t, 1, sent)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "same@example.com", mail.sent[0].To)
}

func TestDatasetReminderNoFilesIsZero(t *testing.T) {
	svc, mail, _, _ := newReminderService(t)

	assert.Equal(t, 0, svc.CheckDatasetReminders())
	assert.Empty(t, mail.sent)
}
