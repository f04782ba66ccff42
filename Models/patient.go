package Models

import (
	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// LookupPatient resolves a patient record from the directory. Unknown ids
// resolve to a placeholder record so screens that carry a stale identifier
// still render, matching the dashboard's behavior.
func LookupPatient(id uint) Patient {
	var patient Patient
	if err := DB.First(&patient, id).Error; err != nil {
		placeholder := Patient{Name: "Patient"}
		placeholder.ID = id
		return placeholder
	}
	return patient
}
