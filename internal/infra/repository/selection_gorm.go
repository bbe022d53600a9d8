package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/event-catering/internal/domain/catering"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

type SelectionGormRepository struct {
	db *gorm.DB
}

func NewSelectionGormRepository(db *gorm.DB) *SelectionGormRepository {
	return &SelectionGormRepository{db: db}
}

func (r *SelectionGormRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Package").
		Preload("Event").
		Preload("MainDishes").
		Preload("PickASnackCorner").
		Preload("AddOns")
}

func (r *SelectionGormRepository) Create(ctx context.Context, s *models.CateringSelection) error {
	return mapError(r.db.WithContext(ctx).
		Omit("Package", "Event", "MainDishes.*", "PickASnackCorner.*", "AddOns.*").
		Create(s).Error)
}

func (r *SelectionGormRepository) GetByID(ctx context.Context, id string) (*models.CateringSelection, error) {
	var s models.CateringSelection
	if err := r.preloaded(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *SelectionGormRepository) GetByEventID(ctx context.Context, eventID string) (*models.CateringSelection, error) {
	var s models.CateringSelection
	if err := r.preloaded(ctx).Where("event_id = ?", eventID).First(&s).Error; err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *SelectionGormRepository) List(ctx context.Context, f domain.SelectionFilter) ([]models.CateringSelection, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.CateringSelection{})
	if f.OwnerID != "" {
		q = q.Where("event_id IN (?)",
			r.db.Model(&models.Event{}).Select("id").Where("user_id = ?", f.OwnerID))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.CateringSelection
	err := paged(q.Order("created_at DESC"), f.Page, f.Limit).
		Preload("Package").
		Preload("MainDishes").
		Preload("PickASnackCorner").
		Preload("AddOns").
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *SelectionGormRepository) Update(ctx context.Context, s *models.CateringSelection, replace domain.Replace) error {
	return mapError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Omit("Package", "Event", "MainDishes", "PickASnackCorner", "AddOns").
			Save(s).Error; err != nil {
			return err
		}

		if replace.MainDishes {
			if err := tx.Model(s).Association("MainDishes").Replace(s.MainDishes); err != nil {
				return err
			}
		}
		if replace.SnackCorners {
			if err := tx.Model(s).Association("PickASnackCorner").Replace(s.PickASnackCorner); err != nil {
				return err
			}
		}
		if replace.AddOns {
			if err := tx.Model(s).Association("AddOns").Replace(s.AddOns); err != nil {
				return err
			}
		}
		return nil
	}))
}

func (r *SelectionGormRepository) Delete(ctx context.Context, id string) error {
	return mapError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := &models.CateringSelection{Base: models.Base{ID: id}}
		if err := tx.Select("MainDishes", "PickASnackCorner", "AddOns").Delete(s).Error; err != nil {
			return err
		}
		return nil
	}))
}

func (r *SelectionGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CateringSelection{}).Count(&count).Error
	return count, err
}

// Compile-time check
var _ domain.SelectionRepository = (*SelectionGormRepository)(nil)
