package catering

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	cateringdomain "github.com/BruksfildServices01/event-catering/internal/domain/catering"
	eventdomain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

// SelectionInput is shared by create and update. On update a nil list
// keeps the current set and an empty list clears it; EventID is ignored.
type SelectionInput struct {
	ExpectedPax        *int     `json:"expectedPax"`
	TotalAmount        *float64 `json:"totalAmount"`
	NumberOfMainDishes *int     `json:"numberOfMainDishes"`
	PackageID          *string  `json:"packageId"`
	EventID            *string  `json:"eventId"`
	MainDishes         []string `json:"mainDishes"`
	PickASnackCorner   []string `json:"pickASnackCorner"`
	AddOns             []string `json:"addOns"`
}

type Catalogs struct {
	Packages     cateringdomain.CatalogRepository[models.MainDishPackage]
	MainDishes   cateringdomain.CatalogRepository[models.MainDish]
	SnackCorners cateringdomain.CatalogRepository[models.SnackCorner]
	AddOns       cateringdomain.CatalogRepository[models.AddOn]
}

type Selections struct {
	repo      cateringdomain.SelectionRepository
	events    eventdomain.Repository
	catalogs  Catalogs
	validator *validators.Validator
	audit     *audit.Dispatcher
}

func NewSelections(
	repo cateringdomain.SelectionRepository,
	events eventdomain.Repository,
	catalogs Catalogs,
	validator *validators.Validator,
	audit *audit.Dispatcher,
) *Selections {
	return &Selections{
		repo:      repo,
		events:    events,
		catalogs:  catalogs,
		validator: validator,
		audit:     audit,
	}
}

var (
	errSelectionNotFound = httperr.ErrNotFound("selection_not_found", "Catering selection not found.")
	errSelectionExists   = httperr.ErrConflict("selection_exists", "This event already has a catering selection.")
)

// visibleEvent loads an event p may act on, or reports not-found.
func (s *Selections) visibleEvent(ctx context.Context, p authz.Principal, eventID string) (*models.Event, error) {
	ev, err := s.events.GetByID(ctx, eventID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !authz.Allow(p, ev.UserID, models.RoleAdmin) {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (s *Selections) authorize(ctx context.Context, p authz.Principal, sel *models.CateringSelection) error {
	if sel.Event != nil {
		if authz.Allow(p, sel.Event.UserID, models.RoleAdmin) {
			return nil
		}
		return errSelectionNotFound
	}
	_, err := s.visibleEvent(ctx, p, sel.EventID)
	if errors.Is(err, domain.ErrNotFound) {
		return errSelectionNotFound
	}
	return err
}

func (s *Selections) List(ctx context.Context, p authz.Principal, page, limit int) ([]models.CateringSelection, int64, error) {
	return s.repo.List(ctx, cateringdomain.SelectionFilter{
		OwnerID: authz.OwnerScope(p),
		Page:    page,
		Limit:   limit,
	})
}

func (s *Selections) Get(ctx context.Context, p authz.Principal, id string) (*models.CateringSelection, error) {
	sel, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errSelectionNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *Selections) GetByEvent(ctx context.Context, p authz.Principal, eventID string) (*models.CateringSelection, error) {
	if _, err := s.visibleEvent(ctx, p, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errSelectionNotFound
		}
		return nil, err
	}

	sel, err := s.repo.GetByEventID(ctx, eventID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errSelectionNotFound
	}
	return sel, err
}

func idsExist[T any](repo cateringdomain.CatalogRepository[T]) validators.CheckFunc {
	return func(ctx context.Context, v any) (bool, error) {
		ids := unique(v.([]string))
		found, err := repo.ExistingIDs(ctx, ids)
		if err != nil {
			return false, err
		}
		return len(found) == len(ids), nil
	}
}

func idExists[T any](repo cateringdomain.CatalogRepository[T]) validators.CheckFunc {
	return func(ctx context.Context, v any) (bool, error) {
		found, err := repo.ExistingIDs(ctx, []string{v.(string)})
		return len(found) == 1, err
	}
}

func (s *Selections) fields(in SelectionInput, partial bool) []validators.Field {
	return []validators.Field{
		positiveField("expectedPax", in.ExpectedPax, partial),
		positiveField("totalAmount", in.TotalAmount, partial),
		positiveField("numberOfMainDishes", in.NumberOfMainDishes, partial),
		{
			Name: "packageId", Value: in.PackageID, Optional: partial,
			Rules: []validators.Rule{
				validators.Required("packageId is required"),
				validators.Check(idExists(s.catalogs.Packages), "Main dish package not found"),
			},
		},
		{
			Name: "mainDishes", Value: in.MainDishes, Optional: true,
			Rules: []validators.Rule{validators.Check(idsExist(s.catalogs.MainDishes), "Unknown main dish")},
		},
		{
			Name: "pickASnackCorner", Value: in.PickASnackCorner, Optional: true,
			Rules: []validators.Rule{validators.Check(idsExist(s.catalogs.SnackCorners), "Unknown snack corner option")},
		},
		{
			Name: "addOns", Value: in.AddOns, Optional: true,
			Rules: []validators.Rule{validators.Check(idsExist(s.catalogs.AddOns), "Unknown add-on")},
		},
	}
}

func (s *Selections) Create(ctx context.Context, p authz.Principal, in SelectionInput) (*models.CateringSelection, error) {
	fields := s.fields(in, false)
	fields = append(fields, validators.Field{
		Name: "eventId", Value: in.EventID,
		Rules: []validators.Rule{
			validators.Required("eventId is required"),
			validators.Check(func(ctx context.Context, v any) (bool, error) {
				_, err := s.visibleEvent(ctx, p, v.(string))
				if errors.Is(err, domain.ErrNotFound) {
					return false, nil
				}
				return err == nil, err
			}, "Event not found"),
		},
	})
	if err := s.validator.Validate(ctx, fields...).Err(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEventID(ctx, *in.EventID); err == nil {
		return nil, errSelectionExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	sel := &models.CateringSelection{
		ExpectedPax:        *in.ExpectedPax,
		TotalAmount:        *in.TotalAmount,
		NumberOfMainDishes: *in.NumberOfMainDishes,
		PackageID:          *in.PackageID,
		EventID:            *in.EventID,
		MainDishes:         refs[models.MainDish](in.MainDishes),
		PickASnackCorner:   refs[models.SnackCorner](in.PickASnackCorner),
		AddOns:             refs[models.AddOn](in.AddOns),
	}
	if err := s.repo.Create(ctx, sel); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errSelectionExists
		}
		return nil, err
	}

	s.dispatch(p, audit.ActionCateringCreated, sel.ID)
	return s.repo.GetByID(ctx, sel.ID)
}

func (s *Selections) Update(ctx context.Context, p authz.Principal, id string, in SelectionInput) (*models.CateringSelection, error) {
	sel, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ctx, s.fields(in, true)...).Err(); err != nil {
		return nil, err
	}

	set(&sel.ExpectedPax, in.ExpectedPax)
	set(&sel.TotalAmount, in.TotalAmount)
	set(&sel.NumberOfMainDishes, in.NumberOfMainDishes)
	if in.PackageID != nil {
		sel.PackageID = *in.PackageID
		sel.Package = nil
	}

	replace := cateringdomain.Replace{
		MainDishes:   in.MainDishes != nil,
		SnackCorners: in.PickASnackCorner != nil,
		AddOns:       in.AddOns != nil,
	}
	if replace.MainDishes {
		sel.MainDishes = refs[models.MainDish](in.MainDishes)
	}
	if replace.SnackCorners {
		sel.PickASnackCorner = refs[models.SnackCorner](in.PickASnackCorner)
	}
	if replace.AddOns {
		sel.AddOns = refs[models.AddOn](in.AddOns)
	}

	if err := s.repo.Update(ctx, sel, replace); err != nil {
		return nil, err
	}

	s.dispatch(p, audit.ActionCateringUpdated, sel.ID)
	return s.repo.GetByID(ctx, sel.ID)
}

func (s *Selections) Delete(ctx context.Context, p authz.Principal, id string) error {
	sel, err := s.Get(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, sel.ID); err != nil {
		return err
	}

	s.dispatch(p, audit.ActionCateringDeleted, sel.ID)
	return nil
}

func (s *Selections) dispatch(p authz.Principal, action, id string) {
	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   action,
		Entity:   "catering_selection",
		EntityID: id,
	})
}

// refs builds id-only rows for association writes.
func refs[T any, PT cateringdomain.Entity[T]](ids []string) []T {
	out := make([]T, 0, len(ids))
	for _, id := range unique(ids) {
		var item T
		PT(&item).SetID(id)
		out = append(out, item)
	}
	return out
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
