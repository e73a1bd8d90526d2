package config

import (
	"fmt"
	"log"
	"os"

	"github.com/GivenCloud/Hotel-Manager/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) string {
	var user, password, host, port, name string

	switch env {
	case "dev":
		user = os.Getenv("DEV_DB_USER")
		password = os.Getenv("DEV_DB_PASSWORD")
		host = os.Getenv("DEV_DB_HOST")
		port = os.Getenv("DEV_DB_PORT")
		name = os.Getenv("DEV_DB_NAME")
	case "prod":
		user = os.Getenv("PROD_DB_USER")
		password = os.Getenv("PROD_DB_PASSWORD")
		host = os.Getenv("PROD_DB_HOST")
		port = os.Getenv("PROD_DB_PORT")
		name = os.Getenv("PROD_DB_NAME")
	default:
		log.Fatalf("Unknown environment: %s", env)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		host, user, password, name, port)
	return dsn
}

func ConnectDB() {
	var err error
	env := os.Getenv("ENV")
	dsn := getDBConfigByEnv(env)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB registers the booking row as the room<->guest join table and
// migrates the schema.
func MigrateDB() {
	if err := DB.SetupJoinTable(&models.Room{}, "Guests", &models.RoomGuest{}); err != nil {
		log.Fatalf("Failed to set up room_guests join table: %v", err)
	}
	if err := DB.SetupJoinTable(&models.Guest{}, "Rooms", &models.RoomGuest{}); err != nil {
		log.Fatalf("Failed to set up room_guests join table: %v", err)
	}
	if err := DB.SetupJoinTable(&models.Hotel{}, "Services", &models.HotelService{}); err != nil {
		log.Fatalf("Failed to set up hotel_services join table: %v", err)
	}
	if err := DB.SetupJoinTable(&models.Guest{}, "Services", &models.GuestService{}); err != nil {
		log.Fatalf("Failed to set up guest_services join table: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.Category{},
		&models.Type{},
		&models.Hotel{},
		&models.Room{},
		&models.Guest{},
		&models.Service{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}
