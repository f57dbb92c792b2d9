package migrations

import (
	"log"

	"github.com/Mellettan/invent/internal/config"
	"github.com/Mellettan/invent/internal/repository"
	"github.com/Mellettan/invent/internal/services"

	"gorm.io/gorm"
)

// SeedDefaultData creates the staff login account when it does not exist
// yet. Schema migration itself is handled by database.Initialize.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	existing, err := userService.GetUserByUsername(cfg.AdminUsername)
	if err == nil && existing != nil {
		log.Println("Admin user already exists")
		return nil
	}

	log.Println("Creating admin user...")
	if _, err := userService.CreateUser(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	}
	log.Printf("Admin user created (username: %s)", cfg.AdminUsername)
	return nil
}
