package Models

import (
	"log"
	"os"

	"gorm.io/gorm"
)

// Seed loads the registries the dashboard boots from. Each block is
// idempotent so a durable deployment keeps whatever it already has.
func Seed(db *gorm.DB) {
	seedPatients(db)
	seedAppointments(db)
	seedReports(db)
	seedActivities(db)
	seedProfile(db)
	seedUser(db)
}

func seedPatients(db *gorm.DB) {
	var count int64
	db.Model(&Patient{}).Count(&count)
	if count > 0 {
		return
	}

	// ids 2 and 3 both belong to Dinanath Kumar: the appointment registry
	// carries two visits for him under separate identifiers.
	patients := []Patient{
		{Name: "Rahul", Age: 18, Gender: "Male", Contact: "+91 9876543210", Email: "patient@example.com"},
		{Name: "Dinanath Kumar", Age: 18, Gender: "Male", Contact: "+91 9876543210", Email: "patient@example.com"},
		{Name: "Dinanath Kumar", Age: 18, Gender: "Male", Contact: "+91 9876543210", Email: "patient@example.com"},
		{Name: "Priya Sharma", Age: 35, Gender: "Female", Contact: "+91 9876543210", Email: "patient@example.com"},
		{Name: "Amit Patel", Age: 42, Gender: "Male", Contact: "+91 9876543210", Email: "patient@example.com"},
		{Name: "Sneha Gupta", Age: 28, Gender: "Female", Contact: "+91 9876543210", Email: "patient@example.com"},
		{Name: "Rajesh Singh", Age: 50, Gender: "Male", Contact: "+91 9876543210", Email: "patient@example.com"},
	}
	if err := db.Create(&patients).Error; err != nil {
		log.Println("failed to seed patients:", err)
	}
}

func seedAppointments(db *gorm.DB) {
	var count int64
	db.Model(&Appointment{}).Count(&count)
	if count > 0 {
		return
	}

	appointments := []Appointment{
		{PatientName: "Rahul", PatientID: 1, PaymentMethod: PaymentCash, Age: 18, DateTime: "30 Apr 2025, 11:00 AM", Fees: 31, Status: StatusCompleted, Reason: "Follow-up consultation"},
		{PatientName: "Dinanath Kumar", PatientID: 2, PaymentMethod: PaymentCash, Age: 18, DateTime: "29 Apr 2025, 05:30 PM", Fees: 31, Status: StatusCancelled},
		{PatientName: "Dinanath Kumar", PatientID: 3, PaymentMethod: PaymentCash, Age: 18, DateTime: "30 Apr 2025, 10:30 AM", Fees: 31, Status: StatusCompleted},
		{PatientName: "Priya Sharma", PatientID: 4, PaymentMethod: PaymentCard, Age: 35, DateTime: "01 May 2025, 09:00 AM", Fees: 45, Status: StatusPending, Reason: "Headache and fever"},
		{PatientName: "Amit Patel", PatientID: 5, PaymentMethod: PaymentCash, Age: 42, DateTime: "01 May 2025, 02:30 PM", Fees: 31, Status: StatusPending, Reason: "Diabetes check-up"},
		{PatientName: "Sneha Gupta", PatientID: 6, PaymentMethod: PaymentCard, Age: 28, DateTime: "02 May 2025, 11:30 AM", Fees: 45, Status: StatusPending, Reason: "General consultation"},
		{PatientName: "Rajesh Singh", PatientID: 7, PaymentMethod: PaymentCash, Age: 50, DateTime: "02 May 2025, 04:00 PM", Fees: 31, Status: StatusPending, Reason: "General consultation"},
	}
	if err := db.Create(&appointments).Error; err != nil {
		log.Println("failed to seed appointments:", err)
	}
}

func seedReports(db *gorm.DB) {
	var count int64
	db.Model(&Report{}).Count(&count)
	if count > 0 {
		return
	}

	reports := []Report{
		{PatientName: "Rahul", PatientID: 1, Date: "30 Apr 2025", Diagnosis: "Common Cold", Type: ReportTypeReport},
		{PatientName: "Dinanath Kumar", PatientID: 2, Date: "29 Apr 2025", Diagnosis: "Hypertension", Type: ReportTypePrescription},
		{PatientName: "Priya Sharma", PatientID: 4, Date: "28 Apr 2025", Diagnosis: "Migraine", Type: ReportTypeReport},
		{PatientName: "Amit Patel", PatientID: 5, Date: "27 Apr 2025", Diagnosis: "Diabetes Type 2", Type: ReportTypePrescription},
	}
	if err := db.Create(&reports).Error; err != nil {
		log.Println("failed to seed reports:", err)
	}
}

func seedActivities(db *gorm.DB) {
	var count int64
	db.Model(&Activity{}).Count(&count)
	if count > 0 {
		return
	}

	activities := []Activity{
		{Type: ActivityAppointmentCompleted, PatientName: "Rahul", DisplayTime: "1 hour ago", Description: "Appointment completed"},
		{Type: ActivityReportCreated, PatientName: "Dinanath Kumar", DisplayTime: "3 hours ago", Description: "Medical report created"},
		{Type: ActivityMessageReceived, PatientName: "Priya Sharma", DisplayTime: "Yesterday", Description: "New message received"},
		{Type: ActivityAppointmentCancelled, PatientName: "Sneha Gupta", DisplayTime: "Yesterday", Description: "Appointment cancelled"},
		{Type: ActivityAppointmentScheduled, PatientName: "Rajesh Singh", DisplayTime: "2 days ago", Description: "New appointment scheduled"},
	}
	if err := db.Create(&activities).Error; err != nil {
		log.Println("failed to seed activities:", err)
	}
}

func seedProfile(db *gorm.DB) {
	var count int64
	db.Model(&DoctorProfile{}).Count(&count)
	if count > 0 {
		return
	}

	profile := DoctorProfile{
		Name:            "Dr. John Doe",
		Email:           "john.doe@carevita.com",
		Phone:           "+1 (555) 123-4567",
		Specialization:  "Cardiology",
		Experience:      "10 years",
		Bio:             "Experienced cardiologist with a focus on preventive care and heart health management.",
		Education:       "MD in Cardiology, Harvard Medical School\nBSc in Medicine, Stanford University",
		Address:         "123 Medical Center Dr, Suite 456\nNew York, NY 10001",
		ConsultationFee: "45",
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Println("failed to seed profile:", err)
	}
}

func seedUser(db *gorm.DB) {
	var count int64
	db.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("DEFAULT_DOCTOR_PASSWORD")
	if password == "" {
		password = "carevita"
	}

	user := User{Name: "Dr. John Doe", Email: "doctor@carevita.com", Password: password}
	if _, err := user.SaveUser(); err != nil {
		log.Println("failed to seed doctor account:", err)
	}
}
