package event

import (
	"context"

	"github.com/BruksfildServices01/event-catering/internal/models"
)

type ListFilter struct {
	OwnerID  string
	Status   models.EventStatus
	Category models.EventCategory
	Page     int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, ev *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	TitleTaken(ctx context.Context, ownerID, title, excludeID string) (bool, error)
	List(ctx context.Context, f ListFilter) ([]models.Event, int64, error)
	Update(ctx context.Context, ev *models.Event) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[models.EventStatus]int64, error)
}
