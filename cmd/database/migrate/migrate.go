package migration

import (
	"Recipe-Finder/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Errorf("Error migrating user database: %v", err)
		return fmt.Errorf("migrate users: %w", err)
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Errorf("Error migrating review database: %v", err)
		return fmt.Errorf("migrate reviews: %w", err)
	}
	if err := db.AutoMigrate(&entities.RecipeCache{}); err != nil {
		log.Errorf("Error migrating recipe cache database: %v", err)
		return fmt.Errorf("migrate recipe cache: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
