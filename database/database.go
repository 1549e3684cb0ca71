package database

import (
	"fmt"
	"log"
	"time"

	config "github.com/justlearn/backend/configs"
	"github.com/justlearn/backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the database connection, retrying on a fixed interval
// until the database accepts connections.
func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	for {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			SkipDefaultTransaction: true,
		})
		if err == nil {
			break
		}
		log.Printf("Database unavailable, waiting 1 second... (%v)", err)
		time.Sleep(1 * time.Second)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Student{},
		&models.Teacher{},
		&models.Advertisement{},
		&models.Problem{},
		&models.Offer{},
		&models.Lesson{},
		&models.Chat{},
		&models.Message{},
		&models.Review{},
		&models.Exercise{},
		&models.Project{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedStaff creates the staff account on first boot. Staff users carry no
// student or teacher profile.
func SeedStaff() {
	staffEmail := config.Config("STAFF_EMAIL")
	staffPassword := config.Config("STAFF_PASSWORD")
	if staffEmail == "" || staffPassword == "" {
		log.Println("Staff credentials not configured, skipping seed.")
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", staffEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for staff user: %v", err)
	}
	if count > 0 {
		log.Println("Staff user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash staff password: %v", err)
	}

	staff := models.User{
		Name:     config.Config("STAFF_NAME"),
		Email:    staffEmail,
		Password: string(hashedPassword),
		IsStaff:  true,
	}
	if err := DB.Create(&staff).Error; err != nil {
		log.Fatalf("🔥 Failed to seed staff user: %v", err)
	}

	log.Println("✅ Staff user seeded successfully")
}
