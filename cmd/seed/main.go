// Command seed fills an empty catering catalog and optionally creates the
// first administrator from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-catering/internal/auth"
	"github.com/BruksfildServices01/event-catering/internal/config"
	dbpkg "github.com/BruksfildServices01/event-catering/internal/db"
	cateringdomain "github.com/BruksfildServices01/event-catering/internal/domain/catering"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	infraRepo "github.com/BruksfildServices01/event-catering/internal/infra/repository"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/usecase/account"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := seedCatalog(ctx, db); err != nil {
		slog.Error("seed catalog", "error", err)
		os.Exit(1)
	}
	if err := seedAdmin(ctx, db, cfg); err != nil {
		slog.Error("seed admin", "error", err)
		os.Exit(1)
	}
	slog.Info("seed complete")
}

func seedCatalog(ctx context.Context, db *gorm.DB) error {
	steps := []func() (string, int, error){
		func() (string, int, error) {
			return seed(ctx, infraRepo.NewCatalogGormRepository[models.CateringPackage](db), "packages", packages)
		},
		func() (string, int, error) {
			return seed(ctx, infraRepo.NewCatalogGormRepository[models.Inclusion](db), "inclusions", inclusions)
		},
		func() (string, int, error) {
			return seed(ctx, infraRepo.NewCatalogGormRepository[models.MainDishPackage](db), "main dish packages", mainDishPackages)
		},
		func() (string, int, error) {
			return seed(ctx, infraRepo.NewCatalogGormRepository[models.MainDish](db), "main dishes", mainDishes)
		},
		func() (string, int, error) {
			return seed(ctx, infraRepo.NewCatalogGormRepository[models.SnackCorner](db), "snack corner", snackCorners)
		},
		func() (string, int, error) {
			return seed(ctx, infraRepo.NewCatalogGormRepository[models.AddOn](db), "add-ons", addOns)
		},
	}

	for _, step := range steps {
		name, n, err := step()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		slog.Info("catalog seeded", "table", name, "rows", n)
	}
	return nil
}

// seed inserts rows only into an empty table so reruns are harmless.
func seed[T any](ctx context.Context, repo cateringdomain.CatalogRepository[T], name string, rows []T) (string, int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return name, 0, err
	}
	if len(existing) > 0 {
		return name, 0, nil
	}

	for i := range rows {
		if err := repo.Create(ctx, &rows[i]); err != nil {
			return name, i, err
		}
	}
	return name, len(rows), nil
}

func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	accounts := account.NewService(
		infraRepo.NewUserGormRepository(db),
		auth.NewPasswordHasher(cfg.BcryptCost),
		validators.New(false),
		nil,
		nil,
	)

	role := string(models.RoleAdmin)
	_, err := accounts.Register(ctx, account.CreateInput{
		FirstName:       "Admin",
		LastName:        "Account",
		Email:           cfg.SeedAdminEmail,
		Role:            &role,
		Password:        cfg.SeedAdminPassword,
		ConfirmPassword: cfg.SeedAdminPassword,
	})

	var verrs validators.Errors
	switch {
	case err == nil:
		slog.Info("admin created", "email", cfg.SeedAdminEmail)
		return nil
	case errors.As(err, &verrs) && verrs.Has("email") && len(verrs) == 1:
		slog.Info("admin already exists", "email", cfg.SeedAdminEmail)
		return nil
	case httperr.IsBusiness(err, "email_taken"):
		return nil
	default:
		return err
	}
}
