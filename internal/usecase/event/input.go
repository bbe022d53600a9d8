package event

import (
	"context"
	"strings"
	"time"

	eventdomain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

// Input carries create and partial-update fields; nil means not supplied.
type Input struct {
	Title           *string
	Description     *string
	Category        *string
	Date            *string
	StartTime       *string
	EndTime         *string
	Venue           *string
	AdditionalNotes *string
	HasCleaningFee  *bool
	AdditionalHours *int
}

func categoryTag() string {
	names := make([]string, 0, len(eventdomain.Categories()))
	for _, c := range eventdomain.Categories() {
		names = append(names, string(c))
	}
	return "oneof=" + strings.Join(names, " ")
}

func statusField(status string) validators.Field {
	names := make([]string, 0, len(eventdomain.Statuses()))
	for _, st := range eventdomain.Statuses() {
		names = append(names, string(st))
	}
	return validators.Field{Name: "status", Value: status, Rules: []validators.Rule{
		validators.Required("Status is required"),
		validators.Tag("oneof="+strings.Join(names, " "), "Status must be one of "+strings.Join(names, ", ")),
	}}
}

// fields builds the rule set. On update every field is optional and the
// title check skips the event itself.
func (s *Service) fields(in Input, ownerID, excludeID string, partial bool) []validators.Field {
	return []validators.Field{
		{
			Name: "title", Value: in.Title, Optional: partial,
			Rules: []validators.Rule{
				validators.Required("Title is required"),
				validators.Tag("max=100", "Title must be at most 100 characters"),
				validators.Check(func(ctx context.Context, v any) (bool, error) {
					taken, err := s.repo.TitleTaken(ctx, ownerID, strings.TrimSpace(v.(string)), excludeID)
					return !taken, err
				}, "You already have an event with this title"),
			},
		},
		{
			Name: "description", Value: in.Description, Optional: true,
			Rules: []validators.Rule{validators.Tag("max=1000", "Description must be at most 1000 characters")},
		},
		{
			Name: "category", Value: in.Category, Optional: partial,
			Rules: []validators.Rule{
				validators.Required("Category is required"),
				validators.Tag(categoryTag(), "Invalid category"),
			},
		},
		{
			Name: "date", Value: in.Date, Optional: partial,
			Rules: []validators.Rule{
				validators.Required("Date is required"),
				validators.Tag("isodate", "Date must be YYYY-MM-DD"),
			},
		},
		{
			Name: "startTime", Value: in.StartTime, Optional: partial,
			Rules: []validators.Rule{
				validators.Required("Start time is required"),
				validators.Tag("rfc3339", "Start time must be an ISO-8601 timestamp"),
			},
		},
		{
			Name: "endTime", Value: in.EndTime, Optional: partial,
			Rules: []validators.Rule{
				validators.Required("End time is required"),
				validators.Tag("rfc3339", "End time must be an ISO-8601 timestamp"),
			},
		},
		{
			Name: "venue", Value: in.Venue, Optional: true,
			Rules: []validators.Rule{validators.Tag("max=255", "Venue must be at most 255 characters")},
		},
		{
			Name: "additionalNotes", Value: in.AdditionalNotes, Optional: true,
			Rules: []validators.Rule{validators.Tag("max=1000", "Notes must be at most 1000 characters")},
		},
		{
			Name: "additionalHours", Value: in.AdditionalHours, Optional: true,
			Rules: []validators.Rule{validators.Tag("gte=0,lte=12", "Additional hours must be between 0 and 12")},
		},
	}
}

// checkSchedule validates the window that would be stored. Unparseable
// values are already reported by the field rules.
func checkSchedule(res *validators.Result, start, end *time.Time) {
	if start == nil || end == nil {
		return
	}
	if !eventdomain.ValidSchedule(*start, *end) {
		res.AddError("endTime", "End time must be at least 1 hour after start time")
	}
}

func parseTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(validators.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
