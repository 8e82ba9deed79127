package repository

import (
	"context"
	"errors"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"gorm.io/gorm"
)

type AddressBookRepository struct {
	Repository[entity.AddressBook]
}

func NewAddressBookRepository(db *gorm.DB) *AddressBookRepository {
	return &AddressBookRepository{NewRepository[entity.AddressBook](db)}
}

func (r *AddressBookRepository) Tx(tx *gorm.DB) *AddressBookRepository {
	return &AddressBookRepository{r.Repository.Tx(tx)}
}

func (r *AddressBookRepository) ListByUser(ctx context.Context, userID int64) ([]entity.AddressBook, error) {
	return r.List(ctx, Where("user_id = ?", userID), OrderBy("update_time DESC"))
}

// GetForUser returns (nil, nil) when the address is missing or belongs to someone else.
func (r *AddressBookRepository) GetForUser(ctx context.Context, userID, id int64) (*entity.AddressBook, error) {
	a, err := r.Take(ctx, Where("id = ? AND user_id = ?", id, userID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return a, err
}

func (r *AddressBookRepository) GetDefault(ctx context.Context, userID int64) (*entity.AddressBook, error) {
	a, err := r.Take(ctx, Where("user_id = ? AND is_default = ?", userID, true))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return a, err
}

func (r *AddressBookRepository) ClearDefault(ctx context.Context, userID int64) error {
	return r.UpdateWhere(ctx, map[string]any{"is_default": false}, Where("user_id = ?", userID))
}
