package repository

import (
	"context"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	Repository[entity.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{NewRepository[entity.Category](db)}
}

func (r *CategoryRepository) Tx(tx *gorm.DB) *CategoryRepository {
	return &CategoryRepository{r.Repository.Tx(tx)}
}

// ListByType returns categories ordered by sort then newest update; typ 0 means all.
func (r *CategoryRepository) ListByType(ctx context.Context, typ int) ([]entity.Category, error) {
	return r.List(ctx, func(db *gorm.DB) *gorm.DB {
		if typ != 0 {
			db = db.Where("type = ?", typ)
		}
		return db.Order("sort ASC").Order("update_time DESC")
	})
}

func (r *CategoryRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.List(ctx, Where("id IN ?", ids))
	if err != nil {
		return nil, err
	}
	for _, c := range rows {
		out[c.ID] = c.Name
	}
	return out, nil
}
