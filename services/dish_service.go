package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
	"github.com/Lulu77Donc/reggie-take-out/repository"
)

type DishService struct {
	DB         *gorm.DB
	Dishes     *repository.DishRepository
	Flavors    *repository.DishFlavorRepository
	Categories *repository.CategoryRepository
	Cache      *DishCache
}

func NewDishService(db *gorm.DB, cache *DishCache) *DishService {
	return &DishService{
		DB:         db,
		Dishes:     repository.NewDishRepository(db),
		Flavors:    repository.NewDishFlavorRepository(db),
		Categories: repository.NewCategoryRepository(db),
		Cache:      cache,
	}
}

// SaveWithFlavor inserts the dish, then its flavors tagged with the new id, in one transaction.
func (s *DishService) SaveWithFlavor(ctx context.Context, in *dto.DishDto) error {
	in.ID = 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Dishes.Tx(tx).Create(ctx, &in.Dish); err != nil {
			return err
		}
		return s.Flavors.Tx(tx).CreateBatch(ctx, flavorsFor(in.ID, in.Flavors))
	})
	if err != nil {
		return storeErr(err, "save dish")
	}
	s.evict(ctx)
	return nil
}

// UpdateWithFlavor patches the dish row and, when flavors are sent, replaces them.
func (s *DishService) UpdateWithFlavor(ctx context.Context, in dto.DishUpdate) (*entity.Dish, error) {
	var d *entity.Dish
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		dishes := s.Dishes.Tx(tx)
		cur, err := dishes.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		setIf(&cur.Name, in.Name)
		setIf(&cur.CategoryID, in.CategoryID)
		setIf(&cur.Price, in.Price)
		setIf(&cur.Code, in.Code)
		setIf(&cur.Image, in.Image)
		setIf(&cur.Description, in.Description)
		setIf(&cur.Status, in.Status)
		setIf(&cur.Sort, in.Sort)
		if err := dishes.Update(ctx, cur); err != nil {
			return err
		}
		d = cur
		if in.Flavors == nil {
			return nil
		}
		flavors := s.Flavors.Tx(tx)
		if err := flavors.DeleteByDishes(ctx, in.ID); err != nil {
			return err
		}
		return flavors.CreateBatch(ctx, flavorsFor(in.ID, in.Flavors))
	})
	if err != nil {
		return nil, storeErr(err, "update dish")
	}
	s.evict(ctx)
	return d, nil
}

func flavorsFor(dishID int64, in []entity.DishFlavor) []entity.DishFlavor {
	out := make([]entity.DishFlavor, len(in))
	for i, f := range in {
		out[i] = entity.DishFlavor{DishID: dishID, Name: f.Name, Value: f.Value}
	}
	return out
}

func (s *DishService) GetWithFlavor(ctx context.Context, id int64) (*dto.DishDto, error) {
	d, err := s.Dishes.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "load dish")
	}
	out, err := s.withDetails(ctx, []entity.Dish{*d})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// SetStatus puts dishes on or off sale.
func (s *DishService) SetStatus(ctx context.Context, status int, ids []int64) error {
	if err := s.Dishes.UpdateColumns(ctx, map[string]any{"status": status}, ids...); err != nil {
		return storeErr(err, "update dish status")
	}
	s.evict(ctx)
	return nil
}

// Delete removes dishes and their flavors; dishes on sale block the whole batch.
func (s *DishService) Delete(ctx context.Context, ids []int64) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		dishes := s.Dishes.Tx(tx)
		n, err := dishes.CountOnSale(ctx, ids)
		if err != nil {
			return err
		}
		if n > 0 {
			return business(ErrDishOnSale)
		}
		if err := dishes.Delete(ctx, ids...); err != nil {
			return err
		}
		return s.Flavors.Tx(tx).DeleteByDishes(ctx, ids...)
	})
	if err != nil {
		return storeErr(err, "delete dishes")
	}
	s.evict(ctx)
	return nil
}

func (s *DishService) Page(ctx context.Context, q dto.PageQuery) (dto.Page[dto.DishDto], error) {
	rows, total, err := s.Dishes.Page(ctx, q.Page, q.PageSize,
		repository.NameLike("name", q.Name), repository.OrderBy("update_time DESC"))
	if err != nil {
		return dto.Page[dto.DishDto]{}, storeErr(err, "page dishes")
	}
	out, err := s.withDetails(ctx, rows)
	if err != nil {
		return dto.Page[dto.DishDto]{}, err
	}
	return pageOf(out, total, q), nil
}

// List returns the dishes of a category with flavors, served from cache when possible.
func (s *DishService) List(ctx context.Context, categoryID int64, status *int) ([]dto.DishDto, error) {
	key := dishCacheKey(categoryID, status)
	if rows, ok := s.Cache.Get(ctx, key); ok {
		return rows, nil
	}
	dishes, err := s.Dishes.ListByCategory(ctx, categoryID, status)
	if err != nil {
		return nil, storeErr(err, "list dishes")
	}
	out, err := s.withDetails(ctx, dishes)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, out)
	return out, nil
}

func (s *DishService) withDetails(ctx context.Context, dishes []entity.Dish) ([]dto.DishDto, error) {
	ids := make([]int64, len(dishes))
	catIDs := make([]int64, 0, len(dishes))
	for i, d := range dishes {
		ids[i] = d.ID
		catIDs = append(catIDs, d.CategoryID)
	}
	flavors, err := s.Flavors.ListByDishes(ctx, ids)
	if err != nil {
		return nil, storeErr(err, "load flavors")
	}
	names, err := s.Categories.NamesByIDs(ctx, catIDs)
	if err != nil {
		return nil, storeErr(err, "load category names")
	}
	out := make([]dto.DishDto, len(dishes))
	for i, d := range dishes {
		fl := flavors[d.ID]
		if fl == nil {
			fl = []entity.DishFlavor{}
		}
		out[i] = dto.DishDto{Dish: d, Flavors: fl, CategoryName: names[d.CategoryID]}
	}
	return out, nil
}

func (s *DishService) evict(ctx context.Context) {
	if err := s.Cache.Evict(ctx); err != nil {
		logger.S().Warnw("dish cache evict failed", "err", err)
	}
}
