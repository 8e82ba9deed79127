package repository

import (
	"context"
	"errors"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"gorm.io/gorm"
)

// UserRepository talks to the customer table only.
type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{NewRepository[entity.User](db)}
}

// FindByPhone returns (nil, nil) when the phone is unknown.
func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	u, err := r.Take(ctx, Where("phone = ?", phone))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return u, err
}
