// seeduser creates or refreshes an administrator account so a fresh
// deployment can be logged into. Credentials come from flags; the password
// is hashed before it ever reaches the store.
package main

import (
	"flag"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm/clause"

	"github.com/Ncongwana-808/autorepair-erp/internal/auth"
	"github.com/Ncongwana-808/autorepair-erp/internal/config"
	"github.com/Ncongwana-808/autorepair-erp/internal/infra"
	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

func main() {
	username := flag.String("username", "admin", "account username")
	password := flag.String("password", "", "account password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal().Msg("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("hash failed")
	}

	user := &model.User{
		Username:     *username,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}

	// Upsert by username so re-running resets the password and reactivates
	// the account instead of failing on the unique index.
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role", "is_active"}),
	}).Create(user).Error
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().Str("username", *username).Msg("admin account ready")
}
