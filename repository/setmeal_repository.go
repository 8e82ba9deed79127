package repository

import (
	"context"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"gorm.io/gorm"
)

type SetmealRepository struct {
	Repository[entity.Setmeal]
}

func NewSetmealRepository(db *gorm.DB) *SetmealRepository {
	return &SetmealRepository{NewRepository[entity.Setmeal](db)}
}

func (r *SetmealRepository) Tx(tx *gorm.DB) *SetmealRepository {
	return &SetmealRepository{r.Repository.Tx(tx)}
}

func (r *SetmealRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return r.Count(ctx, Where("category_id = ?", categoryID))
}

func (r *SetmealRepository) CountOnSale(ctx context.Context, ids []int64) (int64, error) {
	return r.Count(ctx, Where("id IN ? AND status = ?", ids, entity.StatusOn))
}

func (r *SetmealRepository) ListByCategory(ctx context.Context, categoryID int64, status *int) ([]entity.Setmeal, error) {
	return r.List(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("category_id = ?", categoryID)
		if status != nil {
			db = db.Where("status = ?", *status)
		}
		return db.Order("update_time DESC")
	})
}

type SetmealDishRepository struct {
	Repository[entity.SetmealDish]
}

func NewSetmealDishRepository(db *gorm.DB) *SetmealDishRepository {
	return &SetmealDishRepository{NewRepository[entity.SetmealDish](db)}
}

func (r *SetmealDishRepository) Tx(tx *gorm.DB) *SetmealDishRepository {
	return &SetmealDishRepository{r.Repository.Tx(tx)}
}

func (r *SetmealDishRepository) ListBySetmeal(ctx context.Context, setmealID int64) ([]entity.SetmealDish, error) {
	return r.List(ctx, Where("setmeal_id = ?", setmealID), OrderBy("sort ASC, id ASC"))
}

func (r *SetmealDishRepository) DeleteBySetmeals(ctx context.Context, setmealIDs ...int64) error {
	if len(setmealIDs) == 0 {
		return nil
	}
	return r.DeleteWhere(ctx, Where("setmeal_id IN ?", setmealIDs))
}
