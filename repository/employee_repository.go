package repository

import (
	"context"
	"errors"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	Repository[entity.Employee]
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{NewRepository[entity.Employee](db)}
}

// FindByUsername returns (nil, nil) when no employee has that username.
func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	e, err := r.Take(ctx, Where("username = ?", username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return e, err
}
