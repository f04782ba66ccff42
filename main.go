package main

import (
	"os"

	"github.com/krahulsahu/carevita-server/CronJobs"
	"github.com/krahulsahu/carevita-server/Models"
	"github.com/krahulsahu/carevita-server/Notifications"
	"github.com/krahulsahu/carevita-server/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	Notifications.Setup()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)
	reminderService := CronJobs.NewAppointmentReminder(Models.DB)
	scheduler := reminderService.StartReminderCron()
	_ = scheduler

	port := os.Getenv("PORT")
	if port == "" {
		port = "3005"
	}
	router.Run(":" + port)
}
