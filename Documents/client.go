package Documents

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/krahulsahu/carevita-server/Models"
)

// The document service renders report PDFs and emails them to patients.
// Both stay external: this package is only the client seam.

var ErrNotConfigured = errors.New("document service not configured")

func serviceURL() string {
	return os.Getenv("DOCUMENT_SERVICE_URL")
}

type renderRequest struct {
	ReportID    uint   `json:"report_id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Diagnosis   string `json:"diagnosis"`
	Type        string `json:"type"`
	Symptoms    string `json:"symptoms"`
	Tests       string `json:"tests"`
	Medications string `json:"medications"`
	Advice      string `json:"advice"`
	FollowUp    string `json:"follow_up"`
}

type sendRequest struct {
	renderRequest
	Email string `json:"email"`
}

func buildRenderRequest(report Models.Report) renderRequest {
	return renderRequest{
		ReportID:    report.ID,
		PatientName: report.PatientName,
		Date:        report.Date,
		Diagnosis:   report.Diagnosis,
		Type:        report.Type,
		Symptoms:    report.Symptoms,
		Tests:       report.Tests,
		Medications: report.Medications,
		Advice:      report.Advice,
		FollowUp:    report.FollowUp,
	}
}

// RenderPDF asks the document service for a rendered PDF of the report.
func RenderPDF(report Models.Report) ([]byte, error) {
	base := serviceURL()
	if base == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(buildRenderRequest(report))
	if err != nil {
		return nil, err
	}

	res, err := http.Post(base+"/render", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("document service returned %d: %s", res.StatusCode, string(body))
	}

	return io.ReadAll(res.Body)
}

// SendToPatient asks the document service to email the report out.
func SendToPatient(report Models.Report, email string) error {
	base := serviceURL()
	if base == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{renderRequest: buildRenderRequest(report), Email: email})
	if err != nil {
		return err
	}

	res, err := http.Post(base+"/send", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("document service returned %d: %s", res.StatusCode, string(body))
	}
	return nil
}
