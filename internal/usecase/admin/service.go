// Package admin serves the back-office dashboard.
package admin

import (
	"context"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	accountdomain "github.com/BruksfildServices01/event-catering/internal/domain/account"
	cateringdomain "github.com/BruksfildServices01/event-catering/internal/domain/catering"
	eventdomain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

type AuditReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type Summary struct {
	Users          int64                        `json:"users"`
	Events         int64                        `json:"events"`
	EventsByStatus map[models.EventStatus]int64 `json:"eventsByStatus"`
	Selections     int64                        `json:"cateringSelections"`
}

type Service struct {
	users      accountdomain.Repository
	events     eventdomain.Repository
	selections cateringdomain.SelectionRepository
	logs       AuditReader
}

func NewService(
	users accountdomain.Repository,
	events eventdomain.Repository,
	selections cateringdomain.SelectionRepository,
	logs AuditReader,
) *Service {
	return &Service{users: users, events: events, selections: selections, logs: logs}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.events.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	selections, err := s.selections.Count(ctx)
	if err != nil {
		return nil, err
	}

	// every status is reported, zero or not
	out := &Summary{
		Users:          users,
		EventsByStatus: make(map[models.EventStatus]int64, len(eventdomain.Statuses())),
		Selections:     selections,
	}
	for _, st := range eventdomain.Statuses() {
		out.EventsByStatus[st] = byStatus[st]
		out.Events += byStatus[st]
	}
	return out, nil
}

func (s *Service) AuditLogs(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	return s.logs.List(ctx, f)
}
