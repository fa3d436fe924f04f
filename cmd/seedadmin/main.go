// Command seedadmin idempotently creates the default farm and an admin
// account. Safe to run on every deploy.
package main

import (
	"errors"
	"os"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/config"
	"github.com/dhruv0307t-del/ERP-Farm/internal/infra"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultFarmName = "Default Farm"
	adminUsername   = "admin"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD must be set")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	var farm model.Farm
	err = db.Where("name = ?", defaultFarmName).First(&farm).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		farm = model.Farm{Name: defaultFarmName}
		if err := db.Create(&farm).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to create default farm")
		}
		log.Info().Uint("farm_id", farm.ID).Msg("default farm created")
	case err != nil:
		log.Fatal().Err(err).Msg("failed to look up default farm")
	default:
		log.Info().Uint("farm_id", farm.ID).Msg("default farm already exists")
	}

	var existing model.User
	err = db.Where("username = ?", adminUsername).First(&existing).Error
	if err == nil {
		log.Info().Msg("admin user already exists, nothing to do")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("failed to look up admin user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	fullName := "Administrator"
	admin := model.User{
		Username:     adminUsername,
		PasswordHash: string(hash),
		FullName:     &fullName,
		IsAdmin:      true,
		FarmID:       &farm.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}
	log.Info().Uint("user_id", admin.ID).Msg("admin user created")
}
