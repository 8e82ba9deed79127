package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
	"github.com/Lulu77Donc/reggie-take-out/repository"
)

type CategoryService struct {
	Categories *repository.CategoryRepository
	Dishes     *repository.DishRepository
	Setmeals   *repository.SetmealRepository
	DishCache  *DishCache
}

func NewCategoryService(db *gorm.DB, dishCache *DishCache) *CategoryService {
	return &CategoryService{
		Categories: repository.NewCategoryRepository(db),
		Dishes:     repository.NewDishRepository(db),
		Setmeals:   repository.NewSetmealRepository(db),
		DishCache:  dishCache,
	}
}

func (s *CategoryService) Save(ctx context.Context, c *entity.Category) error {
	c.ID = 0
	return storeErr(s.Categories.Create(ctx, c), "save category")
}

func (s *CategoryService) Update(ctx context.Context, in *entity.Category) error {
	c, err := s.Categories.GetByID(ctx, in.ID)
	if err != nil {
		return storeErr(err, "load category")
	}
	c.Name, c.Sort = in.Name, in.Sort
	if in.Type != 0 {
		c.Type = in.Type
	}
	if err := s.Categories.Update(ctx, c); err != nil {
		return storeErr(err, "update category")
	}
	// cached dish lists carry the category name
	if err := s.DishCache.Evict(ctx); err != nil {
		logger.S().Warnw("dish cache evict failed", "err", err)
	}
	return nil
}

// Page lists categories by sort ascending.
func (s *CategoryService) Page(ctx context.Context, q dto.PageQuery) (dto.Page[entity.Category], error) {
	rows, total, err := s.Categories.Page(ctx, q.Page, q.PageSize,
		repository.NameLike("name", q.Name), repository.OrderBy("sort ASC"), repository.OrderBy("id ASC"))
	if err != nil {
		return dto.Page[entity.Category]{}, storeErr(err, "page categories")
	}
	return pageOf(rows, total, q), nil
}

func (s *CategoryService) List(ctx context.Context, typ int) ([]entity.Category, error) {
	rows, err := s.Categories.ListByType(ctx, typ)
	return rows, storeErr(err, "list categories")
}

// Remove deletes a category unless dishes, then setmeals, still reference it.
func (s *CategoryService) Remove(ctx context.Context, id int64) error {
	n, err := s.Dishes.CountByCategory(ctx, id)
	if err != nil {
		return storeErr(err, "count dishes")
	}
	if n > 0 {
		return business(ErrCategoryHasDishes)
	}
	n, err = s.Setmeals.CountByCategory(ctx, id)
	if err != nil {
		return storeErr(err, "count setmeals")
	}
	if n > 0 {
		return business(ErrCategoryHasSetmeals)
	}
	return storeErr(s.Categories.Delete(ctx, id), "delete category")
}
