package event

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

// Update applies supplied fields only. The one-hour rule is checked on the
// merged schedule so changing just one end of the window is still caught.
func (s *Service) Update(ctx context.Context, p authz.Principal, id string, in Input) (*models.Event, error) {
	ev, err := s.Load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	res := s.validator.Validate(ctx, s.fields(in, ev.UserID, ev.ID, true)...)

	start, end := &ev.StartTime, &ev.EndTime
	if in.StartTime != nil {
		start = parseTime(in.StartTime)
	}
	if in.EndTime != nil {
		end = parseTime(in.EndTime)
	}
	checkSchedule(res, start, end)

	if err := res.Err(); err != nil {
		return nil, err
	}

	if in.Title != nil {
		ev.Title = strings.TrimSpace(*in.Title)
	}
	if in.Category != nil {
		ev.Category = models.EventCategory(*in.Category)
	}
	if d := parseDate(in.Date); d != nil {
		ev.Date = *d
	}
	ev.StartTime, ev.EndTime = *start, *end
	applyOptional(ev, in)

	if err := s.repo.Update(ctx, ev); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errTitleTaken
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionEventUpdated,
		Entity:   "event",
		EntityID: ev.ID,
	})
	return ev, nil
}
