package Models

import (
	"gorm.io/gorm"
)

const (
	ReportTypeReport       = "Report"
	ReportTypePrescription = "Prescription"
)

// FollowUpPeriods are the scheduling hints the report form offers.
var FollowUpPeriods = []string{"1 week", "2 weeks", "1 month", "3 months", "none"}

type Report struct {
	gorm.Model
	PatientName string `json:"patient_name"`
	PatientID   uint   `json:"patient_id"`
	Date        string `json:"date"`
	Diagnosis   string `json:"diagnosis"`
	Type        string `json:"type"`
	Symptoms    string `json:"symptoms"`
	Tests       string `json:"tests"`
	Medications string `json:"medications"`
	Advice      string `json:"advice"`
	FollowUp    string `json:"follow_up"`
}

func ValidReportType(reportType string) bool {
	return reportType == ReportTypeReport || reportType == ReportTypePrescription
}

func ValidFollowUp(followUp string) bool {
	if followUp == "" {
		return true
	}
	for _, period := range FollowUpPeriods {
		if followUp == period {
			return true
		}
	}
	return false
}
