package event

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	eventdomain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

const imageMaxDim = 1600

type ImageUploader interface {
	Upload(ctx context.Context, folder string, r io.Reader, maxDim int) (string, error)
}

type Service struct {
	repo      eventdomain.Repository
	validator *validators.Validator
	uploader  ImageUploader
	audit     *audit.Dispatcher
	now       func() time.Time
}

func NewService(
	repo eventdomain.Repository,
	validator *validators.Validator,
	uploader ImageUploader,
	audit *audit.Dispatcher,
) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		uploader:  uploader,
		audit:     audit,
		now:       time.Now,
	}
}

var (
	errEventNotFound = httperr.ErrNotFound("event_not_found", "Event not found.")
	errTitleTaken    = httperr.ErrConflict("title_taken", "You already have an event with this title.")
)

// Load returns the event when p owns it or is an administrator. Anyone
// else gets the same not-found as for a missing id.
func (s *Service) Load(ctx context.Context, p authz.Principal, id string) (*models.Event, error) {
	ev, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errEventNotFound
	}
	if err != nil {
		return nil, err
	}
	if !authz.Allow(p, ev.UserID, models.RoleAdmin) {
		return nil, errEventNotFound
	}
	return ev, nil
}

func (s *Service) List(ctx context.Context, p authz.Principal, f eventdomain.ListFilter) ([]models.Event, int64, error) {
	f.OwnerID = authz.OwnerScope(p)
	return s.repo.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, p authz.Principal, id string) error {
	ev, err := s.Load(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ev.ID); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionEventDeleted,
		Entity:   "event",
		EntityID: ev.ID,
	})
	return nil
}

func (s *Service) UpdateImage(ctx context.Context, p authz.Principal, id string, r io.Reader) (*models.Event, error) {
	ev, err := s.Load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, "events/"+ev.ID, r, imageMaxDim)
	if err != nil {
		return nil, err
	}

	ev.ImageURL = &url
	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionEventUpdated,
		Entity:   "event",
		EntityID: ev.ID,
		Metadata: map[string]any{"fields": []string{"imageUrl"}},
	})
	return ev, nil
}

// ChangeStatus lets administrators walk the status table; owners may only cancel.
func (s *Service) ChangeStatus(ctx context.Context, p authz.Principal, id string, status string) (*models.Event, error) {
	res := s.validator.Validate(ctx, statusField(status))
	if err := res.Err(); err != nil {
		return nil, err
	}

	ev, err := s.Load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	to := models.EventStatus(status)
	if !p.IsAdmin() {
		if err := eventdomain.CanOwnerSet(to); err != nil {
			return nil, err
		}
	}
	if err := eventdomain.CanTransition(ev.Status, to); err != nil {
		return nil, err
	}

	from := ev.Status
	ev.Status = to
	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionEventStatusChanged,
		Entity:   "event",
		EntityID: ev.ID,
		Metadata: map[string]any{"from": from, "to": to},
	})
	return ev, nil
}
