package CronJobs

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/krahulsahu/carevita-server/Models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	Models.DB = db
	Models.Migrate(db)
	return db
}

// displayTime renders an instant the way the registry stores appointment
// times. Parsing reads the string back as UTC, so it is formatted in UTC to
// keep round-trips exact.
func displayTime(at time.Time) string {
	return at.UTC().Format("02 Jan 2006, 03:04 PM")
}

func TestParseDateTime_BothHourLayouts(t *testing.T) {
	withZero, err := ParseDateTime("30 Apr 2025, 09:00 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withZero.Hour() != 9 {
		t.Errorf("expected hour 9, got %d", withZero.Hour())
	}

	withoutZero, err := ParseDateTime("30 Apr 2025, 9:00 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !withZero.Equal(withoutZero) {
		t.Errorf("expected both layouts to parse the same instant, got %v and %v", withZero, withoutZero)
	}

	if _, err := ParseDateTime("2025-04-30 09:00"); err == nil {
		t.Error("expected an error for an unknown layout")
	}
}

func TestSendAppointmentReminders_MarksOnlyDuePending(t *testing.T) {
	db := setupTestDB(t)
	reminder := NewAppointmentReminder(db)
	now := time.Now()

	due := Models.Appointment{PatientName: "Rahul", DateTime: displayTime(now.Add(time.Hour)), Status: Models.StatusPending}
	far := Models.Appointment{PatientName: "Priya Sharma", DateTime: displayTime(now.Add(5 * time.Hour)), Status: Models.StatusPending}
	settled := Models.Appointment{PatientName: "Amit Patel", DateTime: displayTime(now.Add(time.Hour)), Status: Models.StatusCompleted}
	past := Models.Appointment{PatientName: "Sneha Gupta", DateTime: displayTime(now.Add(-time.Hour)), Status: Models.StatusPending}
	for _, appointment := range []*Models.Appointment{&due, &far, &settled, &past} {
		if err := db.Create(appointment).Error; err != nil {
			t.Fatalf("failed to insert appointment: %v", err)
		}
	}

	if err := reminder.SendAppointmentReminders(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reloaded Models.Appointment
	db.First(&reloaded, due.ID)
	if !reloaded.ReminderSent {
		t.Error("expected the due appointment to be marked reminded")
	}
	for _, untouched := range []uint{far.ID, settled.ID, past.ID} {
		db.First(&reloaded, untouched)
		if reloaded.ReminderSent {
			t.Errorf("expected appointment %d to be left alone", untouched)
		}
	}

	var activities int64
	db.Model(&Models.Activity{}).Count(&activities)
	if activities != 1 {
		t.Errorf("expected one reminder activity, got %d", activities)
	}

	// A second sweep must not remind the same appointment again.
	if err := reminder.SendAppointmentReminders(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	db.Model(&Models.Activity{}).Count(&activities)
	if activities != 1 {
		t.Errorf("expected the sweep to be idempotent, got %d activities", activities)
	}
}

func TestSendAppointmentReminders_SkipsUnparseableDates(t *testing.T) {
	db := setupTestDB(t)
	reminder := NewAppointmentReminder(db)

	broken := Models.Appointment{PatientName: "Rahul", DateTime: "soon", Status: Models.StatusPending}
	if err := db.Create(&broken).Error; err != nil {
		t.Fatalf("failed to insert appointment: %v", err)
	}

	if err := reminder.SendAppointmentReminders(); err != nil {
		t.Fatalf("expected the sweep to carry on past a bad date, got %v", err)
	}

	var reloaded Models.Appointment
	db.First(&reloaded, broken.ID)
	if reloaded.ReminderSent {
		t.Error("expected the unparseable appointment to be left alone")
	}
}
