package Models

import (
	"gorm.io/gorm"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

const (
	PaymentCash = "CASH"
	PaymentCard = "CARD"
)

type Appointment struct {
	gorm.Model
	PatientName   string  `json:"patient_name"`
	PatientID     uint    `json:"patient_id"`
	PaymentMethod string  `json:"payment_method"`
	Age           int     `json:"age"`
	DateTime      string  `json:"date_time"`
	Fees          float64 `json:"fees"`
	Status        string  `json:"status"`
	Reason        string  `json:"reason"`
	ReminderSent  bool    `json:"reminder_sent"`
}

func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusCompleted || status == StatusCancelled
}

// Transition moves a Pending appointment to Completed or Cancelled and
// reports whether anything changed. Completed and Cancelled are terminal,
// so calling this on a non-Pending appointment is a no-op.
func (appointment *Appointment) Transition(target string) bool {
	if appointment.Status != StatusPending {
		return false
	}
	if target != StatusCompleted && target != StatusCancelled {
		return false
	}
	appointment.Status = target
	return true
}
