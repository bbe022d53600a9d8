package event

import (
	"net/http"
	"time"

	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

// ===============================
// Status
// ===============================

var transitions = map[models.EventStatus][]models.EventStatus{
	models.EventPending:  {models.EventApproved, models.EventRejected, models.EventCanceled},
	models.EventApproved: {models.EventCompleted, models.EventCanceled},
}

func InitialStatus() models.EventStatus {
	return models.EventPending
}

func Statuses() []models.EventStatus {
	return []models.EventStatus{
		models.EventPending,
		models.EventApproved,
		models.EventCanceled,
		models.EventRejected,
		models.EventCompleted,
	}
}

// CanTransition rejects moves out of terminal states and skips.
func CanTransition(from, to models.EventStatus) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.NewBusiness(http.StatusBadRequest, "invalid_state", "Event cannot move from "+string(from)+" to "+string(to)+".")
}

// CanOwnerSet limits non-admin owners to cancelling their own events.
func CanOwnerSet(to models.EventStatus) error {
	if to != models.EventCanceled {
		return httperr.ErrForbidden("forbidden_status", "Only administrators can set this status.")
	}
	return nil
}

// ===============================
// Category
// ===============================

func Categories() []models.EventCategory {
	return []models.EventCategory{
		models.CategoryWedding,
		models.CategoryBirthday,
		models.CategoryDebut,
		models.CategoryCorporate,
		models.CategoryChristening,
		models.CategoryAnniversary,
		models.CategoryOthers,
	}
}

// ===============================
// Schedule
// ===============================

const MinDuration = time.Hour

// ValidSchedule reports whether end is at least MinDuration after start.
func ValidSchedule(start, end time.Time) bool {
	return !end.Before(start.Add(MinDuration))
}
