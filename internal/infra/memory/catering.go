package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/domain/catering"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

type Catalog[T any, PT catering.Entity[T]] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func NewCatalog[T any, PT catering.Entity[T]]() *Catalog[T, PT] {
	return &Catalog[T, PT]{rows: map[string]T{}}
}

func (r *Catalog[T, PT]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rows[id])
	}
	return out, nil
}

func (r *Catalog[T, PT]) GetByID(_ context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (r *Catalog[T, PT]) Create(_ context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	PT(item).EnsureID()
	id := PT(item).GetID()
	r.rows[id] = *item
	r.order = append(r.order, id)
	return nil
}

func (r *Catalog[T, PT]) Update(_ context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := PT(item).GetID()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	r.rows[id] = *item
	return nil
}

func (r *Catalog[T, PT]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Catalog[T, PT]) ExistingIDs(_ context.Context, ids []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, id := range ids {
		if _, ok := r.rows[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

var _ catering.CatalogRepository[models.MainDish] = (*Catalog[models.MainDish, *models.MainDish])(nil)

// Selections needs the events store to filter by owner and to fill in
// the Event relation like a preload would.
type Selections struct {
	mu     sync.RWMutex
	rows   map[string]models.CateringSelection
	events *Events
}

func NewSelections(events *Events) *Selections {
	return &Selections{rows: map[string]models.CateringSelection{}, events: events}
}

func (r *Selections) Create(_ context.Context, s *models.CateringSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rows {
		if existing.EventID == s.EventID {
			return domain.ErrConflict
		}
	}
	s.EnsureID()
	stamp(&s.Base)
	r.rows[s.ID] = *s
	return nil
}

func (r *Selections) withEvent(s models.CateringSelection) *models.CateringSelection {
	if ev, err := r.events.GetByID(context.Background(), s.EventID); err == nil {
		s.Event = ev
	}
	return &s
}

func (r *Selections) GetByID(_ context.Context, id string) (*models.CateringSelection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.withEvent(s), nil
}

func (r *Selections) GetByEventID(_ context.Context, eventID string) (*models.CateringSelection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.rows {
		if s.EventID == eventID {
			return r.withEvent(s), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Selections) List(_ context.Context, f catering.SelectionFilter) ([]models.CateringSelection, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.CateringSelection
	for _, s := range r.rows {
		if f.OwnerID != "" {
			ev, err := r.events.GetByID(context.Background(), s.EventID)
			if err != nil || ev.UserID != f.OwnerID {
				continue
			}
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return page(out, f.Page, f.Limit), int64(len(out)), nil
}

func (r *Selections) Update(_ context.Context, s *models.CateringSelection, replace catering.Replace) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.rows[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if !replace.MainDishes {
		s.MainDishes = current.MainDishes
	}
	if !replace.SnackCorners {
		s.PickASnackCorner = current.PickASnackCorner
	}
	if !replace.AddOns {
		s.AddOns = current.AddOns
	}
	s.Event = nil
	s.UpdatedAt = time.Now()
	r.rows[s.ID] = *s
	return nil
}

func (r *Selections) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *Selections) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

var _ catering.SelectionRepository = (*Selections)(nil)
