// Package seed creates the baseline data a fresh deployment needs: the
// default admin account and a starter school directory for the public
// form selectors.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/okulsport/okulsport-backend/internal/app/models"
	appRepos "github.com/okulsport/okulsport-backend/internal/app/repositories"
	"github.com/okulsport/okulsport-backend/internal/config"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/auth"
	"github.com/okulsport/okulsport-backend/internal/pkg/validation"
)

// CreateDefaultData seeds the default admin and, on an empty database, a
// starter school directory. It is idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	var finalErr error

	if err := seedAdmin(ctx, dbPool, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedRegisteredSchools(ctx, dbPool, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedOkullar(ctx, dbPool, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Warn().Msg("ADMIN_PASSWORD not set, skipping default admin creation")
		return nil
	}
	if !validation.IsValidEmail(cfg.Admin.Email) {
		lgr.Warn().Str("email", cfg.Admin.Email).Msg("ADMIN_EMAIL is not a valid address, skipping default admin creation")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	adminRepo := appRepos.NewAdminRepository(dbPool)
	id, err := adminRepo.Create(ctx, &appModels.Admin{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		FullName:     cfg.Admin.FullName,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Int64("adminId", id).Str("email", cfg.Admin.Email).Msg("Default admin created")
	return nil
}

// seedRegisteredSchools fills the Istanbul directory with a small starter
// set when the table is empty. Deployments import the full list
// separately.
func seedRegisteredSchools(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM registered_schools`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count registered schools: %w", err)
	}
	if count > 0 {
		return nil
	}

	schools := []appModels.RegisteredSchool{
		{Side: appModels.SideAnadolu, District: "Kadıköy", Name: "Kadıköy Anadolu Lisesi"},
		{Side: appModels.SideAnadolu, District: "Kadıköy", Name: "Moda Ortaokulu"},
		{Side: appModels.SideAnadolu, District: "Üsküdar", Name: "Üsküdar Lisesi"},
		{Side: appModels.SideAvrupa, District: "Beşiktaş", Name: "Beşiktaş Atatürk Anadolu Lisesi"},
		{Side: appModels.SideAvrupa, District: "Bakırköy", Name: "Bakırköy Ortaokulu"},
	}

	for _, school := range schools {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO registered_schools (side, district, name) VALUES ($1, $2, $3)`,
			school.Side, school.District, school.Name); err != nil {
			return fmt.Errorf("failed to seed registered school %q: %w", school.Name, err)
		}
	}

	lgr.Info().Int("count", len(schools)).Msg("Registered school directory seeded")
	return nil
}

// seedOkullar fills the national directory with a small starter set when
// the table is empty.
func seedOkullar(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM okullar`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count okullar: %w", err)
	}
	if count > 0 {
		return nil
	}

	okullar := []appModels.Okul{
		{Name: "Ankara Atatürk Lisesi", City: "Ankara", District: "Çankaya"},
		{Name: "İzmir Atatürk Lisesi", City: "İzmir", District: "Konak"},
		{Name: "Bursa Anadolu Lisesi", City: "Bursa", District: "Osmangazi"},
	}

	for _, okul := range okullar {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO okullar (name, city, district) VALUES ($1, $2, $3)`,
			okul.Name, okul.City, okul.District); err != nil {
			return fmt.Errorf("failed to seed okul %q: %w", okul.Name, err)
		}
	}

	lgr.Info().Int("count", len(okullar)).Msg("National school directory seeded")
	return nil
}
