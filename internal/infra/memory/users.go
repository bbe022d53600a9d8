// Package memory provides map-backed repositories with the same uniqueness
// rules as the database schema. Use cases and handlers are tested on top of it.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/domain/account"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

type Users struct {
	mu   sync.RWMutex
	rows map[string]models.User
	Err  error
}

func NewUsers() *Users {
	return &Users{rows: map[string]models.User{}}
}

func (r *Users) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	for _, existing := range r.rows {
		if existing.Email == u.Email {
			return domain.ErrConflict
		}
	}
	u.EnsureID()
	stamp(&u.Base)
	r.rows[u.ID] = *u
	return nil
}

func (r *Users) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	u, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	for _, u := range r.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Users) EmailTaken(_ context.Context, email, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return false, r.Err
	}

	for _, u := range r.rows {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Users) List(_ context.Context, f account.ListFilter) ([]models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, 0, r.Err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	var out []models.User
	for _, u := range r.rows {
		if f.OwnerID != "" && u.ID != f.OwnerID {
			continue
		}
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(u.Email+" "+u.FirstName+" "+u.LastName), q) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return page(out, f.Page, f.Limit), int64(len(out)), nil
}

func (r *Users) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	if _, ok := r.rows[u.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.rows {
		if existing.ID != u.ID && existing.Email == u.Email {
			return domain.ErrConflict
		}
	}
	u.UpdatedAt = time.Now()
	r.rows[u.ID] = *u
	return nil
}

func (r *Users) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *Users) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), r.Err
}

var _ account.Repository = (*Users)(nil)

type Codes struct {
	mu   sync.Mutex
	rows map[string]models.VerificationCode
}

func NewCodes() *Codes {
	return &Codes{rows: map[string]models.VerificationCode{}}
}

func (r *Codes) Upsert(_ context.Context, vc *models.VerificationCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vc.EnsureID()
	vc.Attempts = 0
	stamp(&vc.Base)
	r.rows[vc.Email] = *vc
	return nil
}

func (r *Codes) GetByEmail(_ context.Context, email string) (*models.VerificationCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vc, ok := r.rows[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &vc, nil
}

func (r *Codes) RecordFailure(_ context.Context, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vc, ok := r.rows[email]
	if !ok {
		return 0, domain.ErrNotFound
	}
	vc.Attempts++
	r.rows[email] = vc
	return vc.Attempts, nil
}

func (r *Codes) DeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, email)
	return nil
}

var _ account.CodeRepository = (*Codes)(nil)

func stamp(b *models.Base) {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func page[T any](items []T, p, limit int) []T {
	if limit <= 0 {
		return items
	}
	if p <= 0 {
		p = 1
	}
	start := (p - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
