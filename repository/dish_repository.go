package repository

import (
	"context"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"gorm.io/gorm"
)

type DishRepository struct {
	Repository[entity.Dish]
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{NewRepository[entity.Dish](db)}
}

func (r *DishRepository) Tx(tx *gorm.DB) *DishRepository {
	return &DishRepository{r.Repository.Tx(tx)}
}

func (r *DishRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return r.Count(ctx, Where("category_id = ?", categoryID))
}

// CountOnSale counts how many of ids are currently on sale.
func (r *DishRepository) CountOnSale(ctx context.Context, ids []int64) (int64, error) {
	return r.Count(ctx, Where("id IN ? AND status = ?", ids, entity.StatusOn))
}

// ListByCategory lists dishes of a category, optionally filtered by status.
func (r *DishRepository) ListByCategory(ctx context.Context, categoryID int64, status *int) ([]entity.Dish, error) {
	return r.List(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("category_id = ?", categoryID)
		if status != nil {
			db = db.Where("status = ?", *status)
		}
		return db.Order("sort ASC").Order("update_time DESC")
	})
}

type DishFlavorRepository struct {
	Repository[entity.DishFlavor]
}

func NewDishFlavorRepository(db *gorm.DB) *DishFlavorRepository {
	return &DishFlavorRepository{NewRepository[entity.DishFlavor](db)}
}

func (r *DishFlavorRepository) Tx(tx *gorm.DB) *DishFlavorRepository {
	return &DishFlavorRepository{r.Repository.Tx(tx)}
}

func (r *DishFlavorRepository) ListByDish(ctx context.Context, dishID int64) ([]entity.DishFlavor, error) {
	return r.List(ctx, Where("dish_id = ?", dishID), OrderBy("id ASC"))
}

// ListByDishes groups flavors by dish id.
func (r *DishFlavorRepository) ListByDishes(ctx context.Context, dishIDs []int64) (map[int64][]entity.DishFlavor, error) {
	out := make(map[int64][]entity.DishFlavor, len(dishIDs))
	if len(dishIDs) == 0 {
		return out, nil
	}
	rows, err := r.List(ctx, Where("dish_id IN ?", dishIDs), OrderBy("id ASC"))
	if err != nil {
		return nil, err
	}
	for _, f := range rows {
		out[f.DishID] = append(out[f.DishID], f)
	}
	return out, nil
}

func (r *DishFlavorRepository) DeleteByDishes(ctx context.Context, dishIDs ...int64) error {
	if len(dishIDs) == 0 {
		return nil
	}
	return r.DeleteWhere(ctx, Where("dish_id IN ?", dishIDs))
}
