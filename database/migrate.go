package database

import (
	"github.com/lshigami/polls/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Migrate creates or updates the questions and choices tables.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.Choice{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
