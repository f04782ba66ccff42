package Models

import (
	"gorm.io/gorm"
)

type DoctorProfile struct {
	gorm.Model
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Specialization  string `json:"specialization"`
	Experience      string `json:"experience"`
	Bio             string `json:"bio"`
	Education       string `json:"education"`
	Address         string `json:"address"`
	ConsultationFee string `json:"consultation_fee"`
}
