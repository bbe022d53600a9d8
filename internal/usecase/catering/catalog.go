package catering

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	cateringdomain "github.com/BruksfildServices01/event-catering/internal/domain/catering"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

// Input is a request body for one catalog kind. Fields receives the
// stored item on update and nil on create.
type Input[T any] interface {
	Fields(current *T) []validators.Field
	Apply(item *T)
}

// Catalog serves one catering reference table. Reads are open to any
// signed-in user, writes need an administrator.
type Catalog[T any, PT cateringdomain.Entity[T]] struct {
	repo      cateringdomain.CatalogRepository[T]
	validator *validators.Validator
	audit     *audit.Dispatcher
	entity    string
}

func NewCatalog[T any, PT cateringdomain.Entity[T]](
	repo cateringdomain.CatalogRepository[T],
	validator *validators.Validator,
	audit *audit.Dispatcher,
	entity string,
) *Catalog[T, PT] {
	return &Catalog[T, PT]{
		repo:      repo,
		validator: validator,
		audit:     audit,
		entity:    entity,
	}
}

func (c *Catalog[T, PT]) notFound() error {
	return httperr.ErrNotFound(c.entity+"_not_found", "Item not found.")
}

func (c *Catalog[T, PT]) requireAdmin(p authz.Principal) error {
	if !p.IsAdmin() {
		return httperr.ErrForbidden("admin_only", "Only administrators can change the catalog.")
	}
	return nil
}

func (c *Catalog[T, PT]) List(ctx context.Context) ([]T, error) {
	items, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Catalog[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	item, err := c.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, c.notFound()
	}
	return item, err
}

func (c *Catalog[T, PT]) Create(ctx context.Context, p authz.Principal, in Input[T]) (*T, error) {
	if err := c.requireAdmin(p); err != nil {
		return nil, err
	}
	if err := c.validator.Validate(ctx, in.Fields(nil)...).Err(); err != nil {
		return nil, err
	}

	item := new(T)
	in.Apply(item)
	if err := c.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	c.dispatch(p, audit.ActionCateringCreated, PT(item).GetID())
	return item, nil
}

func (c *Catalog[T, PT]) Update(ctx context.Context, p authz.Principal, id string, in Input[T]) (*T, error) {
	if err := c.requireAdmin(p); err != nil {
		return nil, err
	}

	item, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.validator.Validate(ctx, in.Fields(item)...).Err(); err != nil {
		return nil, err
	}

	in.Apply(item)
	if err := c.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	c.dispatch(p, audit.ActionCateringUpdated, id)
	return item, nil
}

func (c *Catalog[T, PT]) Delete(ctx context.Context, p authz.Principal, id string) error {
	if err := c.requireAdmin(p); err != nil {
		return err
	}

	err := c.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.notFound()
	case errors.Is(err, domain.ErrInUse):
		return httperr.ErrConflict("in_use", "Item is used by a catering selection.")
	case err != nil:
		return err
	}

	c.dispatch(p, audit.ActionCateringDeleted, id)
	return nil
}

func (c *Catalog[T, PT]) dispatch(p authz.Principal, action, id string) {
	c.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   action,
		Entity:   c.entity,
		EntityID: id,
	})
}
