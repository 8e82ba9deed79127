package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Scope narrows a query; see Where, OrderBy, NameLike.
type Scope = func(*gorm.DB) *gorm.DB

// Repository is the generic data-access layer for one table.
// It is composed into the per-table repositories.
type Repository[T any] struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewRepository[T any](db *gorm.DB) Repository[T] {
	return Repository[T]{DB: db, Now: time.Now}
}

// Tx returns a copy bound to tx.
func (r Repository[T]) Tx(tx *gorm.DB) Repository[T] {
	r.DB = tx
	return r
}

func (r Repository[T]) conn(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

func (r Repository[T]) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r Repository[T]) Create(ctx context.Context, row *T) error {
	beforeCreate(ctx, r.now(), row)
	return r.conn(ctx).Create(row).Error
}

func (r Repository[T]) CreateBatch(ctx context.Context, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	now := r.now()
	for i := range rows {
		beforeCreate(ctx, now, &rows[i])
	}
	return r.conn(ctx).Create(&rows).Error
}

func (r Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var row T
	if err := r.conn(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update writes every column of row except the primary key and creation audit fields.
func (r Repository[T]) Update(ctx context.Context, row *T) error {
	beforeUpdate(ctx, r.now(), row)
	res := r.conn(ctx).Model(row).Select("*").Omit("id", "create_time", "create_user").Updates(row)
	return res.Error
}

// UpdateColumns updates the given columns on rows matching ids.
func (r Repository[T]) UpdateColumns(ctx context.Context, values map[string]any, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.UpdateWhere(ctx, values, Where("id IN ?", ids))
}

func (r Repository[T]) UpdateWhere(ctx context.Context, values map[string]any, scopes ...Scope) error {
	stampColumns(ctx, r.now(), new(T), values)
	return r.conn(ctx).Model(new(T)).Scopes(scopes...).Updates(values).Error
}

func (r Repository[T]) Delete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.conn(ctx).Delete(new(T), ids).Error
}

// DeleteWhere requires at least one scope so it never wipes a table.
func (r Repository[T]) DeleteWhere(ctx context.Context, scopes ...Scope) error {
	if len(scopes) == 0 {
		return gorm.ErrMissingWhereClause
	}
	return r.conn(ctx).Scopes(scopes...).Delete(new(T)).Error
}

func (r Repository[T]) Take(ctx context.Context, scopes ...Scope) (*T, error) {
	var row T
	if err := r.conn(ctx).Scopes(scopes...).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r Repository[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	var rows []T
	err := r.conn(ctx).Scopes(scopes...).Find(&rows).Error
	return rows, err
}

func (r Repository[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(new(T)).Scopes(scopes...).Count(&n).Error
	return n, err
}

// Page returns one page (1-based) and the total matching rows.
func (r Repository[T]) Page(ctx context.Context, page, size int, scopes ...Scope) ([]T, int64, error) {
	page, size = NormalizePage(page, size)

	total, err := r.Count(ctx, scopes...)
	if err != nil {
		return nil, 0, err
	}
	rows := make([]T, 0, size)
	if total == 0 {
		return rows, 0, nil
	}
	err = r.conn(ctx).Scopes(scopes...).
		Offset((page - 1) * size).Limit(size).
		Find(&rows).Error
	return rows, total, err
}

func NormalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	if size > 200 {
		size = 200
	}
	return page, size
}

func Where(query any, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB { return db.Where(query, args...) }
}

func OrderBy(order string) Scope {
	return func(db *gorm.DB) *gorm.DB { return db.Order(order) }
}

// NameLike is a case-insensitive partial match; a blank name matches everything.
func NameLike(column, name string) Scope {
	name = strings.TrimSpace(name)
	return func(db *gorm.DB) *gorm.DB {
		if name == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(name)+"%")
	}
}

func EqIfSet(column string, v *int64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db
		}
		return db.Where(column+" = ?", *v)
	}
}
