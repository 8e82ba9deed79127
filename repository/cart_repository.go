package repository

import (
	"context"
	"errors"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"gorm.io/gorm"
)

type CartRepository struct {
	Repository[entity.ShoppingCart]
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{NewRepository[entity.ShoppingCart](db)}
}

func (r *CartRepository) Tx(tx *gorm.DB) *CartRepository {
	return &CartRepository{r.Repository.Tx(tx)}
}

func (r *CartRepository) ListByUser(ctx context.Context, userID int64) ([]entity.ShoppingCart, error) {
	return r.List(ctx, Where("user_id = ?", userID), OrderBy("create_time ASC, id ASC"))
}

// FindLine looks up the user's line for the same item and flavor; (nil, nil) if absent.
func (r *CartRepository) FindLine(ctx context.Context, userID int64, dishID, setmealID *int64, flavor string) (*entity.ShoppingCart, error) {
	line, err := r.Take(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if dishID != nil {
			return db.Where("dish_id = ? AND dish_flavor = ?", *dishID, flavor)
		}
		return db.Where("setmeal_id = ?", *setmealID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return line, err
}

func (r *CartRepository) SetNumber(ctx context.Context, id int64, number int) error {
	return r.UpdateColumns(ctx, map[string]any{"number": number}, id)
}

// ConsumeLines deletes exactly the given lines of a user and reports how many went.
func (r *CartRepository) ConsumeLines(ctx context.Context, userID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.conn(ctx).Where("user_id = ? AND id IN ?", userID, ids).Delete(&entity.ShoppingCart{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearByUser(ctx context.Context, userID int64) error {
	return r.DeleteWhere(ctx, Where("user_id = ?", userID))
}
