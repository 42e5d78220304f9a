package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"fairway_backend/database"
	"fairway_backend/internal/config"
	"fairway_backend/internal/logger"
	"fairway_backend/internal/models"
	"fairway_backend/internal/repositories"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type seedCourse struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Loads courses from a JSON file into the database. Rows that already
// exist are skipped, so reruns are safe.
func main() {
	dataPath := flag.String("data", "course-data.json", "path to the course data JSON file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		logger.Fatal("Failed to read course data file", "path", *dataPath, "error", err)
	}

	var entries []seedCourse
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Fatal("Failed to parse course data file", "path", *dataPath, "error", err)
	}
	if len(entries) == 0 {
		logger.Fatal("Course data file is empty", "path", *dataPath)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	courses := make([]models.Course, 0, len(entries))
	for _, e := range entries {
		courses = append(courses, models.Course{
			Name:    e.Name,
			Lat:     e.Lat,
			Lng:     e.Lng,
			Address: e.Address,
		})
	}

	courseRepo := repositories.NewCourseRepository()

	var inserted int64
	err = db.Transaction(func(tx *gorm.DB) error {
		n, err := courseRepo.BulkInsert(tx, courses)
		inserted = n
		return err
	})
	if err != nil {
		logger.Fatal("Failed to insert courses", "error", err)
	}

	logger.Info("Courses seeded", "read", len(entries), "inserted", inserted)
}
