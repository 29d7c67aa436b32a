package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Ramo-11/united-masjid-help/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to Postgres when DB_* vars (or DATABASE_URL) are set and
// falls back to a local SQLite file otherwise, then migrates and seeds.
func InitDB() {
	// .env is optional; prod containers inject real env vars
	for _, p := range []string{".env", "../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	} else if os.Getenv("DB_HOST") != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	} else {
		path := os.Getenv("DATA_PATH")
		if path == "" {
			path = "pantry.db"
		}
		db, err = gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	if err := Seed(db); err != nil {
		log.Fatalf("Seeding defaults failed: %v", err)
	}

	DB = db
}

// Migrate creates or updates the schema. Shared with tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PantryGoal{},
		&models.PantryInfo{},
		&models.Donation{},
		&models.VolunteerSlot{},
		&models.Volunteer{},
		&models.FoodItemGoal{},
		&models.FoodItemAchievement{},
		&models.ItemPledge{},
		&models.MediaItem{},
		&models.ExternalLink{},
	)
}

// Seed inserts the default pantry goals and directory entries.
// Existing rows are left alone, so admin edits survive restarts.
func Seed(db *gorm.DB) error {
	defaults := []models.PantryInfo{
		{
			Pantry:  "almumineen",
			Name:    "Masjid Al-Mumineen Food Pantry",
			Address: "3320 N Sherman Dr, Indianapolis, IN 46218",
			Hours:   "Saturdays 10 AM - 1 PM",
		},
		{
			Pantry:  "alfajr",
			Name:    "Masjid Al-Fajr Food Pantry",
			Address: "2846 Cold Spring Rd, Indianapolis, IN 46222",
			Hours:   "Sundays 11 AM - 2 PM",
		},
		{
			Pantry:  "alhuda",
			Name:    "Al Huda Foundation Food Pantry",
			Address: "12213 Lantern Rd, Fishers, IN 46038",
			Hours:   "Saturdays 12 PM - 3 PM",
			Notes:   "Enter through the community center side door.",
		},
	}

	for _, info := range defaults {
		rec := info
		if err := db.Where("pantry = ?", info.Pantry).FirstOrCreate(&rec).Error; err != nil {
			return err
		}
		goal := models.PantryGoal{Pantry: info.Pantry, Goal: 500}
		if err := db.Where("pantry = ?", info.Pantry).FirstOrCreate(&goal).Error; err != nil {
			return err
		}
	}
	return nil
}
