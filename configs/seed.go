package configs

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
	"github.com/Lulu77Donc/reggie-take-out/repository"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

// SeedAdmin creates the first back-office account when it is missing.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logger.S().Warn("skip seeding admin: ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return nil
	}
	repo := repository.NewEmployeeRepository(db)
	existing, err := repo.FindByUsername(ctx, cfg.AdminUsername)
	if err != nil {
		return errors.Wrap(err, "lookup admin")
	}
	if existing != nil {
		logger.S().Infow("admin already exists", "username", cfg.AdminUsername)
		return nil
	}
	admin := &entity.Employee{
		Name:     "Administrator",
		Username: cfg.AdminUsername,
		Password: utils.HashPassword(cfg.AdminPassword),
		Status:   entity.StatusOn,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "create admin")
	}
	logger.S().Infow("admin seeded", "username", admin.Username, "id", admin.ID)
	return nil
}

// SeedCategories inserts the starter categories into an empty table.
func SeedCategories(ctx context.Context, db *gorm.DB) error {
	repo := repository.NewCategoryRepository(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "count categories")
	}
	if n > 0 {
		return nil
	}
	rows := []entity.Category{
		{Type: entity.CategoryTypeDish, Name: "Hot Dishes", Sort: 1},
		{Type: entity.CategoryTypeDish, Name: "Staples", Sort: 2},
		{Type: entity.CategoryTypeDish, Name: "Drinks", Sort: 3},
		{Type: entity.CategoryTypeSetmeal, Name: "Business Set", Sort: 4},
		{Type: entity.CategoryTypeSetmeal, Name: "Kids Set", Sort: 5},
	}
	if err := repo.CreateBatch(ctx, rows); err != nil {
		return errors.Wrap(err, "seed categories")
	}
	logger.S().Infow("categories seeded", "count", len(rows))
	return nil
}
