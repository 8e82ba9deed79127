package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/testdb"
)

func newSetmeal(categoryID int64, name string, status int, dishIDs ...int64) *dto.SetmealDto {
	s := &dto.SetmealDto{Setmeal: entity.Setmeal{Name: name, CategoryID: categoryID, Price: money("30"), Status: status}}
	for i, id := range dishIDs {
		s.SetmealDishes = append(s.SetmealDishes, entity.SetmealDish{DishID: id, Name: "d", Price: money("10"), Copies: 1, Sort: i})
	}
	return s
}

func TestSetmealSaveWithDish(t *testing.T) {
	db := testdb.New(t)
	svc := NewSetmealService(db)
	cat := seedCategory(t, db, entity.CategoryTypeSetmeal, "Sets")

	in := newSetmeal(cat.ID, "Lunch", entity.StatusOn, 1, 2)
	require.NoError(t, svc.SaveWithDish(employeeCtx(1), in))
	require.NotZero(t, in.ID)
	assert.Equal(t, int64(2), count[entity.SetmealDish](t, db, "setmeal_id = ?", in.ID))

	got, err := svc.GetWithDish(context.Background(), in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sets", got.CategoryName)
	assert.Len(t, got.SetmealDishes, 2)
}

func TestSetmealSaveWithDish_RollsBack(t *testing.T) {
	db := testdb.New(t)
	svc := NewSetmealService(db)
	testdb.FailOn(t, db, "setmeal_dish", errors.New("boom"))

	require.Error(t, svc.SaveWithDish(context.Background(), newSetmeal(1, "Lunch", entity.StatusOn, 1)))
	assert.Zero(t, count[entity.Setmeal](t, db, ""))
}

func TestSetmealRemoveWithDish(t *testing.T) {
	db := testdb.New(t)
	svc := NewSetmealService(db)
	a := newSetmeal(1, "A", entity.StatusOff, 1, 2)
	b := newSetmeal(1, "B", entity.StatusOff, 3)
	keep := newSetmeal(1, "Keep", entity.StatusOff, 4)
	for _, s := range []*dto.SetmealDto{a, b, keep} {
		require.NoError(t, svc.SaveWithDish(context.Background(), s))
	}

	require.NoError(t, svc.RemoveWithDish(context.Background(), []int64{a.ID, b.ID}))
	assert.Equal(t, int64(1), count[entity.Setmeal](t, db, ""))
	assert.Equal(t, int64(1), count[entity.SetmealDish](t, db, ""))
}

func TestSetmealRemoveWithDish_RefusesOnSale(t *testing.T) {
	db := testdb.New(t)
	svc := NewSetmealService(db)
	on := newSetmeal(1, "On", entity.StatusOn, 1)
	off := newSetmeal(1, "Off", entity.StatusOff, 2)
	require.NoError(t, svc.SaveWithDish(context.Background(), on))
	require.NoError(t, svc.SaveWithDish(context.Background(), off))

	err := svc.RemoveWithDish(context.Background(), []int64{on.ID, off.ID})
	assert.ErrorIs(t, err, ErrSetmealOnSale)
	assert.Equal(t, int64(2), count[entity.Setmeal](t, db, ""))
	assert.Equal(t, int64(2), count[entity.SetmealDish](t, db, ""))
}

func TestSetmealRemoveWithDish_LinkFailureRollsBack(t *testing.T) {
	db := testdb.New(t)
	svc := NewSetmealService(db)
	s := newSetmeal(1, "A", entity.StatusOff, 1)
	require.NoError(t, svc.SaveWithDish(context.Background(), s))
	testdb.FailOn(t, db, "setmeal_dish", errors.New("boom"))

	require.Error(t, svc.RemoveWithDish(context.Background(), []int64{s.ID}))
	assert.Equal(t, int64(1), count[entity.Setmeal](t, db, ""))
}

func TestSetmealUpdateStatusList(t *testing.T) {
	db := testdb.New(t)
	svc := NewSetmealService(db)
	cat := seedCategory(t, db, entity.CategoryTypeSetmeal, "Sets")
	s := newSetmeal(cat.ID, "A", entity.StatusOn, 1, 2)
	require.NoError(t, svc.SaveWithDish(context.Background(), s))

	name := "A+"
	_, err := svc.UpdateWithDish(employeeCtx(1), dto.SetmealUpdate{
		ID:            s.ID,
		Name:          &name,
		SetmealDishes: newSetmeal(cat.ID, "", 0, 5).SetmealDishes,
	})
	require.NoError(t, err)
	got, err := svc.GetWithDish(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "A+", got.Name)
	assert.Equal(t, entity.StatusOn, got.Status, "omitted status is kept")
	assert.True(t, got.Price.Equal(money("30")))
	require.Len(t, got.SetmealDishes, 1)
	assert.Equal(t, int64(5), got.SetmealDishes[0].DishID)

	desc := "lunch box"
	_, err = svc.UpdateWithDish(employeeCtx(1), dto.SetmealUpdate{ID: s.ID, Description: &desc})
	require.NoError(t, err)
	got, err = svc.GetWithDish(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "lunch box", got.Description)
	assert.Len(t, got.SetmealDishes, 1, "omitted links are left alone")

	_, err = svc.UpdateWithDish(employeeCtx(1), dto.SetmealUpdate{ID: 424242, Description: &desc})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.SetStatus(employeeCtx(1), entity.StatusOff, []int64{s.ID}))
	on := entity.StatusOn
	list, err := svc.List(context.Background(), cat.ID, &on)
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = svc.List(context.Background(), cat.ID, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	page, err := svc.Page(context.Background(), dto.PageQuery{Name: "a"})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Sets", page.Records[0].CategoryName)
}
