package CronJobs

import (
	"fmt"
	"log"
	"time"

	"github.com/krahulsahu/carevita-server/Models"
	"github.com/krahulsahu/carevita-server/Notifications"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// AppointmentReminder pushes a notification for appointments coming up in
// about three hours and records the nudge on the activity feed.
type AppointmentReminder struct {
	DB *gorm.DB
}

func NewAppointmentReminder(db *gorm.DB) *AppointmentReminder {
	return &AppointmentReminder{
		DB: db,
	}
}

// StartReminderCron starts the cron job that checks for appointments due a
// reminder.
func (ar *AppointmentReminder) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Minutes().Do(func() {
		if err := ar.SendAppointmentReminders(); err != nil {
			log.Printf("Error sending appointment reminders: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Appointment reminder cron job started")

	return scheduler
}

func (ar *AppointmentReminder) SendAppointmentReminders() error {
	now := time.Now()

	var appointments []Models.Appointment
	result := ar.DB.Where("status = ? AND reminder_sent = ?", Models.StatusPending, false).
		Find(&appointments)
	if result.Error != nil {
		return fmt.Errorf("failed to query pending appointments: %w", result.Error)
	}

	var tokens []string
	if err := ar.DB.Model(&Models.DeviceToken{}).Select("value").Find(&tokens).Error; err != nil {
		log.Printf("Failed to load device tokens: %v", err)
	}

	for _, appointment := range appointments {
		appointmentTime, err := ParseDateTime(appointment.DateTime)
		if err != nil {
			log.Printf("Failed to parse appointment time for ID %d: %v", appointment.ID, err)
			continue
		}

		until := appointmentTime.Sub(now)
		if until < 0 || until > 3*time.Hour {
			continue
		}

		if len(tokens) > 0 {
			message := fmt.Sprintf(
				"Upcoming appointment with %s at %s. Reason: %s",
				appointment.PatientName,
				appointmentTime.Format("3:04 PM"),
				appointment.Reason,
			)
			if err := Notifications.SendMessage(Models.NotificationRequest{Tokens: tokens, Title: "Appointment Reminder", Body: message}); err != nil {
				log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
				continue
			}
		}

		Models.RecordActivity(Models.ActivityAppointmentScheduled, appointment.PatientName,
			fmt.Sprintf("Appointment reminder sent for %s", appointment.DateTime))

		if err := ar.DB.Model(&Models.Appointment{}).Where("id = ?", appointment.ID).Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to mark reminder sent for appointment %d: %v", appointment.ID, err)
			continue
		}

		log.Printf("Reminder recorded for %s at %s", appointment.PatientName, appointment.DateTime)
	}

	return nil
}

// ParseDateTime reads the display format the registries carry, with and
// without a leading zero on the hour.
func ParseDateTime(dateTimeStr string) (time.Time, error) {
	layoutWithLeadingZero := "02 Jan 2006, 03:04 PM"
	layoutWithoutLeadingZero := "02 Jan 2006, 3:04 PM"

	parsed, err := time.Parse(layoutWithLeadingZero, dateTimeStr)
	if err != nil {
		parsed, err = time.Parse(layoutWithoutLeadingZero, dateTimeStr)
	}
	return parsed, err
}
