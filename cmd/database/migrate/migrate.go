package migration

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Migrate(db *gorm.DB, log *zap.Logger) error {
	// scheduled reminders use uuid_generate_v4() as their key default
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("error creating uuid-ossp extension: %w", err)
	}

	models := []struct {
		name  string
		model interface{}
	}{
		{"user", &entities.User{}},
		{"login log", &entities.LoginLog{}},
		{"category", &entities.Category{}},
		{"food item", &entities.FoodItem{}},
		{"recipe", &entities.Recipe{}},
		{"fertilizer", &entities.Fertilizer{}},
		{"scheduled reminder", &entities.ScheduledReminder{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s table: %w", m.name, err)
		}
	}

	if err := SeedCategories(db); err != nil {
		return err
	}

	log.Info("database migration complete")
	return nil
}

// SeedCategories inserts the default categories, leaving existing ones alone.
func SeedCategories(db *gorm.DB) error {
	categories := make([]entities.Category, 0, len(domain.DefaultCategories))
	for _, name := range domain.DefaultCategories {
		categories = append(categories, entities.Category{Name: name})
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&categories).Error; err != nil {
		return fmt.Errorf("error seeding categories: %w", err)
	}
	return nil
}
