package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/krahulsahu/carevita-server/Models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB points Models.DB at a fresh seeded in-memory database named
// after the test, so tests don't see each other's writes.
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	Models.DB = db
	Models.Migrate(db)
	Models.Seed(db)
}

// testRouter mounts the API handlers without the auth middleware.
func testRouter() *gin.Engine {
	router := gin.New()
	router.GET("/FetchAppointments", FetchAppointments)
	router.GET("/FetchUpcomingAppointments", FetchUpcomingAppointments)
	router.POST("/CompleteAppointment", CompleteAppointment)
	router.POST("/CancelAppointment", CancelAppointment)
	router.GET("/FetchReports", FetchReports)
	router.GET("/FetchReport/:id", FetchReport)
	router.POST("/CreateReport", CreateReport)
	router.GET("/FetchPatients", FetchPatients)
	router.GET("/FetchPatient/:id", FetchPatient)
	router.GET("/chat/:patientId/messages", FetchChatMessages)
	router.POST("/chat/:patientId/messages", SendChatMessage)
	router.POST("/chat/:patientId/assist", RequestAIAssist)
	router.GET("/FetchDashboardStats", FetchDashboardStats)
	router.GET("/FetchActivities", FetchActivities)
	router.GET("/FetchProfile", FetchProfile)
	router.POST("/UpdateProfile", UpdateProfile)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
