package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/repository"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

type CartService struct {
	DB       *gorm.DB
	Carts    *repository.CartRepository
	Dishes   *repository.DishRepository
	Setmeals *repository.SetmealRepository
	Now      func() time.Time
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{
		DB:       db,
		Carts:    repository.NewCartRepository(db),
		Dishes:   repository.NewDishRepository(db),
		Setmeals: repository.NewSetmealRepository(db),
		Now:      time.Now,
	}
}

func validItem(in dto.CartItem) bool {
	return (in.DishID == nil) != (in.SetmealID == nil)
}

// Add puts one unit of a dish or setmeal in the cart, merging with an identical line.
func (s *CartService) Add(ctx context.Context, in dto.CartItem) (*entity.ShoppingCart, error) {
	if !validItem(in) {
		return nil, business(ErrInvalidCartItem)
	}
	userID := utils.ActorID(ctx)
	flavor := in.DishFlavor
	if in.SetmealID != nil {
		flavor = ""
	}

	var line *entity.ShoppingCart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		carts := s.Carts.Tx(tx)
		cur, err := carts.FindLine(ctx, userID, in.DishID, in.SetmealID, flavor)
		if err != nil {
			return err
		}
		if cur != nil {
			cur.Number++
			line = cur
			return carts.SetNumber(ctx, cur.ID, cur.Number)
		}

		line = &entity.ShoppingCart{
			UserID:     userID,
			DishID:     in.DishID,
			SetmealID:  in.SetmealID,
			DishFlavor: flavor,
			Number:     1,
			CreateTime: s.Now(),
		}
		if in.DishID != nil {
			d, err := s.Dishes.Tx(tx).GetByID(ctx, *in.DishID)
			if err != nil {
				return err
			}
			line.Name, line.Image, line.Amount = d.Name, d.Image, d.Price
		} else {
			sm, err := s.Setmeals.Tx(tx).GetByID(ctx, *in.SetmealID)
			if err != nil {
				return err
			}
			line.Name, line.Image, line.Amount = sm.Name, sm.Image, sm.Price
		}
		return carts.Create(ctx, line)
	})
	if err != nil {
		return nil, storeErr(err, "add to cart")
	}
	return line, nil
}

// Sub takes one unit off a line and drops the line at zero.
func (s *CartService) Sub(ctx context.Context, in dto.CartItem) (*entity.ShoppingCart, error) {
	if !validItem(in) {
		return nil, business(ErrInvalidCartItem)
	}
	userID := utils.ActorID(ctx)
	var line *entity.ShoppingCart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		carts := s.Carts.Tx(tx)
		cur, err := carts.FindLine(ctx, userID, in.DishID, in.SetmealID, in.DishFlavor)
		if err != nil {
			return err
		}
		if cur == nil {
			return business(ErrNotFound)
		}
		cur.Number--
		line = cur
		if cur.Number <= 0 {
			return carts.Delete(ctx, cur.ID)
		}
		return carts.SetNumber(ctx, cur.ID, cur.Number)
	})
	if err != nil {
		return nil, storeErr(err, "sub from cart")
	}
	return line, nil
}

func (s *CartService) List(ctx context.Context) ([]entity.ShoppingCart, error) {
	rows, err := s.Carts.ListByUser(ctx, utils.ActorID(ctx))
	return rows, storeErr(err, "list cart")
}

func (s *CartService) Clean(ctx context.Context) error {
	return storeErr(s.Carts.ClearByUser(ctx, utils.ActorID(ctx)), "clean cart")
}
