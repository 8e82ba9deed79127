package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/repository"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

// AddressBookService scopes every call to the customer on ctx.
type AddressBookService struct {
	DB        *gorm.DB
	Addresses *repository.AddressBookRepository
}

func NewAddressBookService(db *gorm.DB) *AddressBookService {
	return &AddressBookService{DB: db, Addresses: repository.NewAddressBookRepository(db)}
}

func (s *AddressBookService) Save(ctx context.Context, a *entity.AddressBook) error {
	a.ID = 0
	a.UserID = utils.ActorID(ctx)
	a.IsDefault = false
	return storeErr(s.Addresses.Create(ctx, a), "save address")
}

func (s *AddressBookService) List(ctx context.Context) ([]entity.AddressBook, error) {
	rows, err := s.Addresses.ListByUser(ctx, utils.ActorID(ctx))
	return rows, storeErr(err, "list addresses")
}

func (s *AddressBookService) Get(ctx context.Context, id int64) (*entity.AddressBook, error) {
	a, err := s.Addresses.GetForUser(ctx, utils.ActorID(ctx), id)
	if err != nil {
		return nil, storeErr(err, "load address")
	}
	if a == nil {
		return nil, business(ErrNotFound)
	}
	return a, nil
}

func (s *AddressBookService) Update(ctx context.Context, in *entity.AddressBook) error {
	cur, err := s.Get(ctx, in.ID)
	if err != nil {
		return err
	}
	in.UserID = cur.UserID
	in.IsDefault = cur.IsDefault
	return storeErr(s.Addresses.Update(ctx, in), "update address")
}

// SetDefault makes id the only default address of the customer.
func (s *AddressBookService) SetDefault(ctx context.Context, id int64) error {
	userID := utils.ActorID(ctx)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Addresses.Tx(tx)
		a, err := repo.GetForUser(ctx, userID, id)
		if err != nil {
			return err
		}
		if a == nil {
			return business(ErrNotFound)
		}
		if err := repo.ClearDefault(ctx, userID); err != nil {
			return err
		}
		return repo.UpdateColumns(ctx, map[string]any{"is_default": true}, id)
	})
	return storeErr(err, "set default address")
}

func (s *AddressBookService) GetDefault(ctx context.Context) (*entity.AddressBook, error) {
	a, err := s.Addresses.GetDefault(ctx, utils.ActorID(ctx))
	if err != nil {
		return nil, storeErr(err, "load default address")
	}
	if a == nil {
		return nil, business(ErrNotFound)
	}
	return a, nil
}

func (s *AddressBookService) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.Addresses.DeleteWhere(ctx, repository.Where("user_id = ? AND id IN ?", utils.ActorID(ctx), ids))
	return storeErr(err, "delete addresses")
}
