package catering

import (
	"context"

	"github.com/BruksfildServices01/event-catering/internal/models"
)

// Entity is satisfied by pointers to catalog models.
type Entity[T any] interface {
	*T
	GetID() string
	SetID(id string)
	EnsureID()
}

type CatalogRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
	// ExistingIDs returns the subset of ids that exist.
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
}

type SelectionFilter struct {
	OwnerID string
	Page    int
	Limit   int
}

// Replace marks which association sets of a selection an update rewrites.
type Replace struct {
	MainDishes   bool
	SnackCorners bool
	AddOns       bool
}

type SelectionRepository interface {
	Create(ctx context.Context, s *models.CateringSelection) error
	GetByID(ctx context.Context, id string) (*models.CateringSelection, error)
	GetByEventID(ctx context.Context, eventID string) (*models.CateringSelection, error)
	List(ctx context.Context, f SelectionFilter) ([]models.CateringSelection, int64, error)
	Update(ctx context.Context, s *models.CateringSelection, replace Replace) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
