package event

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	eventdomain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

func (s *Service) Create(ctx context.Context, p authz.Principal, in Input) (*models.Event, error) {
	res := s.validator.Validate(ctx, s.fields(in, p.ID, "", false)...)
	checkSchedule(res, parseTime(in.StartTime), parseTime(in.EndTime))
	if err := res.Err(); err != nil {
		return nil, err
	}

	ev := &models.Event{
		Title:     strings.TrimSpace(*in.Title),
		Category:  models.EventCategory(*in.Category),
		Date:      *parseDate(in.Date),
		StartTime: *parseTime(in.StartTime),
		EndTime:   *parseTime(in.EndTime),
		Status:    eventdomain.InitialStatus(),
		UserID:    p.ID,
	}
	applyOptional(ev, in)

	if err := s.repo.Create(ctx, ev); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errTitleTaken
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionEventCreated,
		Entity:   "event",
		EntityID: ev.ID,
	})
	return ev, nil
}

func applyOptional(ev *models.Event, in Input) {
	if in.Description != nil {
		ev.Description = *in.Description
	}
	if in.Venue != nil {
		ev.Venue = *in.Venue
	}
	if in.AdditionalNotes != nil {
		ev.AdditionalNotes = *in.AdditionalNotes
	}
	if in.HasCleaningFee != nil {
		ev.HasCleaningFee = *in.HasCleaningFee
	}
	if in.AdditionalHours != nil {
		ev.AdditionalHours = *in.AdditionalHours
	}
}
