package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDataBase() {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var err error
	if os.Getenv("DB_DRIVER") == "postgres" {
		DbHost := os.Getenv("DB_HOST")
		DbUser := os.Getenv("DB_USER")
		DbPassword := os.Getenv("DB_PASSWORD")
		DbName := os.Getenv("DB_NAME")
		DbPort := os.Getenv("DB_PORT")

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		// Shared in-memory store: a restart resets every registry to its seed.
		DB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}

	if err != nil {
		log.Fatal("connection error:", err)
	}

	Migrate(DB)
	Seed(DB)
}

func Migrate(db *gorm.DB) {
	// First migrate models with no dependencies
	db.AutoMigrate(&User{})
	db.AutoMigrate(&DeviceToken{})
	db.AutoMigrate(&Patient{})

	// Then everything keyed on patients
	db.AutoMigrate(&Appointment{})
	db.AutoMigrate(&Report{})
	db.AutoMigrate(&ChatMessage{})
	db.AutoMigrate(&Activity{})
	db.AutoMigrate(&DoctorProfile{})
}
