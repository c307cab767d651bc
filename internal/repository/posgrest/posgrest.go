package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrConflict reports that an insert hit a uniqueness constraint. The
// idempotency ledger needs this distinct from every other insert failure:
// a conflict means a concurrent delivery already recorded the event, which
// is success, while anything else must bubble up so the sender redelivers.
var ErrConflict = errors.New("posgrest: unique constraint conflict")

type repository[T interface{}] struct {
	db *gorm.DB
}

func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

// Insert is Create with conflict detection. Requires the gorm session to be
// opened with TranslateError so driver duplicate-key errors surface as
// gorm.ErrDuplicatedKey.
func (r *repository[T]) Insert(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).Create(&entity).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (r *repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return &entities, nil
}

func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Exists reports whether a row matching the condition exists, without
// loading it.
func (r *repository[T]) Exists(ctx context.Context, key string, value interface{}) (bool, error) {
	var count int64
	var entity T
	err := r.db.WithContext(ctx).Model(&entity).Where(key, value).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entity []T
	if err := r.db.WithContext(ctx).Where(key, value).Find(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error
}

func (r *repository[T]) Delete(ctx context.Context, id string) error {
	var entity T
	return r.db.WithContext(ctx).Delete(&entity, id).Error
}
