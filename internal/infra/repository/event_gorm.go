package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

type EventGormRepository struct {
	db *gorm.DB
}

func NewEventGormRepository(db *gorm.DB) *EventGormRepository {
	return &EventGormRepository{db: db}
}

func (r *EventGormRepository) Create(ctx context.Context, ev *models.Event) error {
	return mapError(r.db.WithContext(ctx).Create(ev).Error)
}

func (r *EventGormRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var ev models.Event
	if err := r.db.WithContext(ctx).First(&ev, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &ev, nil
}

func (r *EventGormRepository) TitleTaken(ctx context.Context, ownerID, title, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("user_id = ? AND title = ?", ownerID, title)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EventGormRepository) List(ctx context.Context, f domain.ListFilter) ([]models.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Event{})

	if f.OwnerID != "" {
		q = q.Where("user_id = ?", f.OwnerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	if err := paged(q.Order("date ASC, start_time ASC"), f.Page, f.Limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *EventGormRepository) Update(ctx context.Context, ev *models.Event) error {
	return mapError(r.db.WithContext(ctx).Omit("User").Save(ev).Error)
}

func (r *EventGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *EventGormRepository) CountByStatus(ctx context.Context) (map[models.EventStatus]int64, error) {
	var rows []struct {
		Status models.EventStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[models.EventStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*EventGormRepository)(nil)
