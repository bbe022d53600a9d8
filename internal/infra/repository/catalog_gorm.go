package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/event-catering/internal/domain/catering"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

// CatalogGormRepository serves any of the catering reference tables.
type CatalogGormRepository[T any] struct {
	db *gorm.DB
}

func NewCatalogGormRepository[T any](db *gorm.DB) *CatalogGormRepository[T] {
	return &CatalogGormRepository[T]{db: db}
}

func (r *CatalogGormRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogGormRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

func (r *CatalogGormRepository[T]) Create(ctx context.Context, item *T) error {
	return mapError(r.db.WithContext(ctx).Create(item).Error)
}

func (r *CatalogGormRepository[T]) Update(ctx context.Context, item *T) error {
	return mapError(r.db.WithContext(ctx).Save(item).Error)
}

func (r *CatalogGormRepository[T]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *CatalogGormRepository[T]) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []string
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Compile-time check
var (
	_ domain.CatalogRepository[models.CateringPackage] = (*CatalogGormRepository[models.CateringPackage])(nil)
	_ domain.CatalogRepository[models.AddOn]           = (*CatalogGormRepository[models.AddOn])(nil)
)
