package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/krahulsahu/carevita-server/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

func ExportAppointmentsExcel(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != "" && !Models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + input.Status})
		return
	}

	query := Models.DB.Model(&Models.Appointment{}).Order("id")
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}

	var appointments []Models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Date & Time",
		"B1": "Patient",
		"C1": "Payment Method",
		"D1": "Age",
		"E1": "Fees",
		"F1": "Status",
	}
	file := excelize.NewFile()
	sheet := "Appointments"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(appointments); i++ {
		appendRowAppointment(sheet, file, i, appointments)
	}
	var filename string = "./Appointments.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowAppointment(sheet string, file *excelize.File, index int, rows []Models.Appointment) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].DateTime)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].PatientName)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].PaymentMethod)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Age)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Fees)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].Status)
	return file
}

func ExportReportsExcel(c *gin.Context) {
	var reports []Models.Report
	if err := Models.DB.Model(&Models.Report{}).Order("id").Find(&reports).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Patient",
		"C1": "Diagnosis",
		"D1": "Type",
		"E1": "Follow-up",
	}

	file := excelize.NewFile()
	sheet := "Reports"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(reports); i++ {
		appendRowReport(sheet, file, i, reports)
	}
	var filename string = "./Reports.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowReport(sheet string, file *excelize.File, index int, rows []Models.Report) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Date)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].PatientName)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Diagnosis)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Type)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].FollowUp)
	return file
}
