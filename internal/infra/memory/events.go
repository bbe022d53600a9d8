package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

type Events struct {
	mu   sync.RWMutex
	rows map[string]models.Event
}

func NewEvents() *Events {
	return &Events{rows: map[string]models.Event{}}
}

func (r *Events) titleClash(ev *models.Event) bool {
	for _, existing := range r.rows {
		if existing.ID != ev.ID && existing.UserID == ev.UserID && existing.Title == ev.Title {
			return true
		}
	}
	return false
}

func (r *Events) Create(_ context.Context, ev *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev.EnsureID()
	if r.titleClash(ev) {
		return domain.ErrConflict
	}
	stamp(&ev.Base)
	r.rows[ev.ID] = *ev
	return nil
}

func (r *Events) GetByID(_ context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ev, nil
}

func (r *Events) TitleTaken(_ context.Context, ownerID, title, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ev := range r.rows {
		if ev.UserID == ownerID && ev.Title == title && ev.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Events) List(_ context.Context, f event.ListFilter) ([]models.Event, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Event
	for _, ev := range r.rows {
		if f.OwnerID != "" && ev.UserID != f.OwnerID {
			continue
		}
		if f.Status != "" && ev.Status != f.Status {
			continue
		}
		if f.Category != "" && ev.Category != f.Category {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })

	return page(out, f.Page, f.Limit), int64(len(out)), nil
}

func (r *Events) Update(_ context.Context, ev *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[ev.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.titleClash(ev) {
		return domain.ErrConflict
	}
	ev.UpdatedAt = time.Now()
	r.rows[ev.ID] = *ev
	return nil
}

func (r *Events) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *Events) CountByStatus(_ context.Context) (map[models.EventStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := map[models.EventStatus]int64{}
	for _, ev := range r.rows {
		out[ev.Status]++
	}
	return out, nil
}

var _ event.Repository = (*Events)(nil)
