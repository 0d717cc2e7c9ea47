package store

import (
	"log"

	"gorm.io/gorm"

	"studenthub/models"
)

var defaultCourses = []models.Course{
	{Name: "Computer Science", Description: "Standard Course"},
	{Name: "Mathematics", Description: "Standard Course"},
	{Name: "Physics", Description: "Standard Course"},
	{Name: "Engineering", Description: "Standard Course"},
	{Name: "Cybersecurity", Description: "Standard Course"},
}

// EnsureSchema creates any missing tables and seeds the course catalog
// when it is empty. A table that fails to migrate is logged and
// skipped; the server still starts.
func EnsureSchema(db *gorm.DB, logger *log.Logger) {
	tables := []struct {
		name  string
		model any
	}{
		{"students", &models.Student{}},
		{"admins", &models.Admin{}},
		{"courses", &models.Course{}},
		{"assignments", &models.Assignment{}},
	}

	for _, t := range tables {
		if err := db.AutoMigrate(t.model); err != nil {
			logger.Printf("%s table creation failed: %v", t.name, err)
			continue
		}
		logger.Printf("%s table ready", t.name)
	}

	seedCourses(db, logger)
}

// seedCourses is a check-then-insert with no transaction around it; two
// initializers racing on an empty table can both pass the count check.
func seedCourses(db *gorm.DB, logger *log.Logger) {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		logger.Printf("course seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for _, c := range defaultCourses {
		course := c
		if err := db.Create(&course).Error; err != nil {
			logger.Printf("seeding course %q failed: %v", c.Name, err)
		}
	}
}
