package Controllers

import (
	"log"
	"net/http"

	"github.com/krahulsahu/carevita-server/Models"

	"github.com/gin-gonic/gin"
)

func FetchProfile(c *gin.Context) {
	var profile Models.DoctorProfile
	if err := Models.DB.First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile saves the flat profile record edited in place on the
// profile screen.
func UpdateProfile(c *gin.Context) {
	var input struct {
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
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var profile Models.DoctorProfile
	if err := Models.DB.First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	profile.Name = input.Name
	profile.Email = input.Email
	profile.Phone = input.Phone
	profile.Specialization = input.Specialization
	profile.Experience = input.Experience
	profile.Bio = input.Bio
	profile.Education = input.Education
	profile.Address = input.Address
	profile.ConsultationFee = input.ConsultationFee

	if err := Models.DB.Save(&profile).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": profile})
}
