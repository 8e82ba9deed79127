package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/testdb"
)

func TestCategoryRemove(t *testing.T) {
	cases := []struct {
		name     string
		dishes   bool
		setmeals bool
		want     error
	}{
		{name: "free", want: nil},
		{name: "dishes", dishes: true, want: ErrCategoryHasDishes},
		{name: "setmeals", setmeals: true, want: ErrCategoryHasSetmeals},
		{name: "both reports dishes first", dishes: true, setmeals: true, want: ErrCategoryHasDishes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := testdb.New(t)
			svc := NewCategoryService(db, nil)
			cat := seedCategory(t, db, entity.CategoryTypeDish, "C")
			if tc.dishes {
				seedDish(t, db, cat.ID, "d", "1", entity.StatusOn)
			}
			if tc.setmeals {
				seedSetmeal(t, db, cat.ID, "s", "1", entity.StatusOn)
			}

			err := svc.Remove(employeeCtx(1), cat.ID)

			left := count[entity.Category](t, db, "id = ?", cat.ID)
			if tc.want == nil {
				require.NoError(t, err)
				assert.Zero(t, left)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, IsBusiness(err))
			assert.Equal(t, int64(1), left)
		})
	}
}

func TestCategoryRemove_StoreFailurePropagates(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `dish`").WillReturnError(errors.New("connection reset"))

	err = NewCategoryService(db, nil).Remove(context.Background(), 3)
	require.Error(t, err)
	assert.False(t, IsBusiness(err))
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategory_SavePageList(t *testing.T) {
	db := testdb.New(t)
	svc := NewCategoryService(db, nil)
	ctx := employeeCtx(2)

	for i, n := range []string{"Soup", "Noodles", "Set A"} {
		typ := entity.CategoryTypeDish
		if i == 2 {
			typ = entity.CategoryTypeSetmeal
		}
		require.NoError(t, svc.Save(ctx, &entity.Category{Type: typ, Name: n, Sort: 3 - i}))
	}
	err := svc.Save(ctx, &entity.Category{Type: 1, Name: "Soup"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	page, err := svc.Page(ctx, dto.PageQuery{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "Set A", page.Records[0].Name)
	assert.Equal(t, int64(2), page.Records[0].CreateUser)

	list, err := svc.List(ctx, entity.CategoryTypeDish)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCategory_Update(t *testing.T) {
	db := testdb.New(t)
	svc := NewCategoryService(db, nil)
	cat := seedCategory(t, db, entity.CategoryTypeDish, "Old")

	require.NoError(t, svc.Update(employeeCtx(4), &entity.Category{ID: cat.ID, Name: "New", Sort: 9}))
	var got entity.Category
	require.NoError(t, db.First(&got, cat.ID).Error)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, entity.CategoryTypeDish, got.Type)
	assert.Equal(t, int64(4), got.UpdateUser)

	assert.ErrorIs(t, svc.Update(employeeCtx(4), &entity.Category{ID: 999, Name: "x"}), ErrNotFound)
}

func TestCategoryUpdate_EvictsDishCache(t *testing.T) {
	db := testdb.New(t)
	rdb, mr := newRedis(t)
	cache := NewDishCache(rdb, time.Hour)
	cats := NewCategoryService(db, cache)
	dishes := NewDishService(db, cache)
	cat := seedCategory(t, db, entity.CategoryTypeDish, "Hot")
	seedDish(t, db, cat.ID, "A", "1", entity.StatusOn)
	ctx := employeeCtx(1)

	rows, err := dishes.List(ctx, cat.ID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hot", rows[0].CategoryName)
	require.True(t, mr.Exists(dishCacheKey(cat.ID, nil)))

	require.NoError(t, cats.Update(ctx, &entity.Category{ID: cat.ID, Name: "Spicy", Sort: cat.Sort}))
	assert.False(t, mr.Exists(dishCacheKey(cat.ID, nil)))

	rows, err = dishes.List(ctx, cat.ID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Spicy", rows[0].CategoryName)
}
