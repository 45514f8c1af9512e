package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"d23_web/internal/storage"
)

// baseRepository 是單一資料表的共用查詢
type baseRepository[T any] struct {
	db *storage.Database
}

func newBaseRepository[T any](db *storage.Database) baseRepository[T] {
	return baseRepository[T]{db: db}
}

// withTx 回傳在交易 tx 內操作同一資料表的 repository
func (r baseRepository[T]) withTx(tx *gorm.DB) baseRepository[T] {
	return baseRepository[T]{db: &storage.Database{DB: tx}}
}

// FindAll 依 order 排序查詢，query 非空時作為 Where 條件
func (r baseRepository[T]) FindAll(ctx context.Context, order string, query ...interface{}) ([]T, error) {
	tx := r.db.WithContext(ctx).Order(order)
	if len(query) > 0 {
		tx = tx.Where(query[0], query[1:]...)
	}
	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r baseRepository[T]) FindByID(ctx context.Context, id int) (*T, error) {
	var out T
	err := r.db.WithContext(ctx).First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Replace 清空資料表後寫入 rows，需搭配 withTx 才具原子性
func (r baseRepository[T]) Replace(ctx context.Context, rows []T) error {
	db := r.db.WithContext(ctx)
	var zero T
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zero).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}
