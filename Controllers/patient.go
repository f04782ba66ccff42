package Controllers

import (
	"net/http"
	"strconv"

	"github.com/krahulsahu/carevita-server/Models"

	"github.com/gin-gonic/gin"
)

func FetchPatients(c *gin.Context) {
	var patients []Models.Patient
	if err := Models.DB.Model(&Models.Patient{}).Order("id").Find(&patients).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// FetchPatient resolves one directory record. The report-creation screen
// re-derives the display name from the identifier it carries, so unknown
// ids answer a placeholder rather than 404.
func FetchPatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	c.JSON(http.StatusOK, Models.LookupPatient(uint(id)))
}
