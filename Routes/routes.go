package Routes

import (
	"github.com/krahulsahu/carevita-server/Controllers"
	"github.com/krahulsahu/carevita-server/Middleware"
	"github.com/krahulsahu/carevita-server/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/SaveFcmToken", Controllers.SaveFcmToken)

		// Appointment-related routes
		authorized.GET("/FetchAppointments", Controllers.FetchAppointments)
		authorized.GET("/FetchUpcomingAppointments", Controllers.FetchUpcomingAppointments)
		authorized.POST("/CompleteAppointment", Controllers.CompleteAppointment)
		authorized.POST("/CancelAppointment", Controllers.CancelAppointment)

		// Report-related routes
		authorized.GET("/FetchReports", Controllers.FetchReports)
		authorized.GET("/FetchReport/:id", Controllers.FetchReport)
		authorized.POST("/CreateReport", Controllers.CreateReport)
		authorized.GET("/DownloadReport/:id", Controllers.DownloadReport)
		authorized.POST("/SendReportToPatient", Controllers.SendReportToPatient)

		// Patient-related routes
		authorized.GET("/FetchPatients", Controllers.FetchPatients)
		authorized.GET("/FetchPatient/:id", Controllers.FetchPatient)

		// Chat-related routes
		authorized.GET("/chat/:patientId/messages", Controllers.FetchChatMessages)
		authorized.POST("/chat/:patientId/messages", Controllers.SendChatMessage)
		authorized.POST("/chat/:patientId/assist", Controllers.RequestAIAssist)
		authorized.GET("/chat/:patientId/stream", Controllers.ChatStream)

		// Dashboard-related routes
		authorized.GET("/FetchDashboardStats", Controllers.FetchDashboardStats)
		authorized.GET("/FetchActivities", Controllers.FetchActivities)

		// Profile-related routes
		authorized.GET("/FetchProfile", Controllers.FetchProfile)
		authorized.POST("/UpdateProfile", Controllers.UpdateProfile)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", func(c *gin.Context) {
			SSE.Stream(c, "refresh")
		})

		// Export-related routes
		authorized.POST("/ExportAppointmentsExcel", Controllers.ExportAppointmentsExcel)
		authorized.POST("/ExportReportsExcel", Controllers.ExportReportsExcel)
	}
}
