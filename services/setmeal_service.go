package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/repository"
)

type SetmealService struct {
	DB         *gorm.DB
	Setmeals   *repository.SetmealRepository
	Links      *repository.SetmealDishRepository
	Categories *repository.CategoryRepository
}

func NewSetmealService(db *gorm.DB) *SetmealService {
	return &SetmealService{
		DB:         db,
		Setmeals:   repository.NewSetmealRepository(db),
		Links:      repository.NewSetmealDishRepository(db),
		Categories: repository.NewCategoryRepository(db),
	}
}

// SaveWithDish inserts the setmeal, then its dish links tagged with the new id, in one transaction.
func (s *SetmealService) SaveWithDish(ctx context.Context, in *dto.SetmealDto) error {
	in.ID = 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Setmeals.Tx(tx).Create(ctx, &in.Setmeal); err != nil {
			return err
		}
		return s.Links.Tx(tx).CreateBatch(ctx, linksFor(in.ID, in.SetmealDishes))
	})
	return storeErr(err, "save setmeal")
}

// UpdateWithDish patches the setmeal row and, when links are sent, replaces them.
func (s *SetmealService) UpdateWithDish(ctx context.Context, in dto.SetmealUpdate) (*entity.Setmeal, error) {
	var sm *entity.Setmeal
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		setmeals := s.Setmeals.Tx(tx)
		cur, err := setmeals.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		setIf(&cur.Name, in.Name)
		setIf(&cur.CategoryID, in.CategoryID)
		setIf(&cur.Price, in.Price)
		setIf(&cur.Status, in.Status)
		setIf(&cur.Code, in.Code)
		setIf(&cur.Description, in.Description)
		setIf(&cur.Image, in.Image)
		if err := setmeals.Update(ctx, cur); err != nil {
			return err
		}
		sm = cur
		if in.SetmealDishes == nil {
			return nil
		}
		links := s.Links.Tx(tx)
		if err := links.DeleteBySetmeals(ctx, in.ID); err != nil {
			return err
		}
		return links.CreateBatch(ctx, linksFor(in.ID, in.SetmealDishes))
	})
	if err != nil {
		return nil, storeErr(err, "update setmeal")
	}
	return sm, nil
}

func linksFor(setmealID int64, in []entity.SetmealDish) []entity.SetmealDish {
	out := make([]entity.SetmealDish, len(in))
	for i, l := range in {
		out[i] = entity.SetmealDish{
			SetmealID: setmealID,
			DishID:    l.DishID,
			Name:      l.Name,
			Price:     l.Price,
			Copies:    l.Copies,
			Sort:      l.Sort,
		}
	}
	return out
}

// RemoveWithDish deletes setmeals and their dish links; any setmeal on sale blocks the batch.
func (s *SetmealService) RemoveWithDish(ctx context.Context, ids []int64) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		setmeals := s.Setmeals.Tx(tx)
		n, err := setmeals.CountOnSale(ctx, ids)
		if err != nil {
			return err
		}
		if n > 0 {
			return business(ErrSetmealOnSale)
		}
		if err := setmeals.Delete(ctx, ids...); err != nil {
			return err
		}
		return s.Links.Tx(tx).DeleteBySetmeals(ctx, ids...)
	})
	return storeErr(err, "remove setmeals")
}

func (s *SetmealService) SetStatus(ctx context.Context, status int, ids []int64) error {
	return storeErr(s.Setmeals.UpdateColumns(ctx, map[string]any{"status": status}, ids...), "update setmeal status")
}

func (s *SetmealService) GetWithDish(ctx context.Context, id int64) (*dto.SetmealDto, error) {
	sm, err := s.Setmeals.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "load setmeal")
	}
	links, err := s.Links.ListBySetmeal(ctx, id)
	if err != nil {
		return nil, storeErr(err, "load setmeal dishes")
	}
	names, err := s.Categories.NamesByIDs(ctx, []int64{sm.CategoryID})
	if err != nil {
		return nil, storeErr(err, "load category name")
	}
	return &dto.SetmealDto{Setmeal: *sm, SetmealDishes: links, CategoryName: names[sm.CategoryID]}, nil
}

func (s *SetmealService) Page(ctx context.Context, q dto.PageQuery) (dto.Page[dto.SetmealDto], error) {
	rows, total, err := s.Setmeals.Page(ctx, q.Page, q.PageSize,
		repository.NameLike("name", q.Name), repository.OrderBy("update_time DESC"))
	if err != nil {
		return dto.Page[dto.SetmealDto]{}, storeErr(err, "page setmeals")
	}
	catIDs := make([]int64, len(rows))
	for i, r := range rows {
		catIDs[i] = r.CategoryID
	}
	names, err := s.Categories.NamesByIDs(ctx, catIDs)
	if err != nil {
		return dto.Page[dto.SetmealDto]{}, storeErr(err, "load category names")
	}
	out := make([]dto.SetmealDto, len(rows))
	for i, r := range rows {
		out[i] = dto.SetmealDto{Setmeal: r, SetmealDishes: []entity.SetmealDish{}, CategoryName: names[r.CategoryID]}
	}
	return pageOf(out, total, q), nil
}

func (s *SetmealService) List(ctx context.Context, categoryID int64, status *int) ([]entity.Setmeal, error) {
	rows, err := s.Setmeals.ListByCategory(ctx, categoryID, status)
	return rows, storeErr(err, "list setmeals")
}
