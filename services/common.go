package services

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/repository"
)

// storeErr classifies a data-access failure: missing rows and unique
// violations become business errors, everything else is wrapped.
func storeErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var be *BusinessError
	switch {
	case errors.As(err, &be):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return business(ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return business(ErrDuplicateName)
	}
	return errors.Wrap(err, op)
}

func pageOf[T any](rows []T, total int64, q dto.PageQuery) dto.Page[T] {
	page, size := repository.NormalizePage(q.Page, q.PageSize)
	return dto.NewPage(rows, total, page, size)
}
