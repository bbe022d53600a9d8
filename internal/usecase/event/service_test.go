package event

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/event-catering/internal/authz"
	eventdomain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/infra/memory"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

var (
	alice = authz.Principal{ID: "alice", Email: "alice@example.com", Role: models.RoleUser}
	bob   = authz.Principal{ID: "bob", Email: "bob@example.com", Role: models.RoleUser}
	admin = authz.Principal{ID: "admin", Email: "admin@example.com", Role: models.RoleAdmin}
)

type fakeUploader struct {
	folder string
	maxDim int
}

func (u *fakeUploader) Upload(_ context.Context, folder string, r io.Reader, maxDim int) (string, error) {
	_, _ = io.ReadAll(r)
	u.folder, u.maxDim = folder, maxDim
	return "https://cdn.example.com/" + folder + "/img.webp", nil
}

func newService() (*Service, *fakeUploader) {
	up := &fakeUploader{}
	return NewService(memory.NewEvents(), validators.New(false), up, nil), up
}

func str(s string) *string { return &s }

func validInput(title string) Input {
	return Input{
		Title:     str(title),
		Category:  str("WEDDING"),
		Date:      str("2026-12-20"),
		StartTime: str("2026-12-20T10:00:00Z"),
		EndTime:   str("2026-12-20T14:00:00Z"),
		Venue:     str("Grand Hall"),
	}
}

func TestCreate(t *testing.T) {
	svc, _ := newService()

	ev, err := svc.Create(context.Background(), alice, validInput("Our Wedding"))
	require.NoError(t, err)

	assert.Equal(t, "alice", ev.UserID)
	assert.Equal(t, models.EventPending, ev.Status)
	assert.Equal(t, models.CategoryWedding, ev.Category)
	assert.Equal(t, "Grand Hall", ev.Venue)
	assert.NotEmpty(t, ev.ID)
}

func TestCreate_TitleUniquePerOwner(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, validInput("Party"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, validInput("Party"))
	var errs validators.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("title"))

	_, err = svc.Create(ctx, bob, validInput("Party"))
	assert.NoError(t, err)
}

func TestCreate_ScheduleTooShort(t *testing.T) {
	svc, _ := newService()
	in := validInput("Short")
	in.EndTime = str("2026-12-20T10:30:00Z")

	_, err := svc.Create(context.Background(), alice, in)
	var errs validators.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("endTime"))
}

func TestCreate_MissingFields(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), alice, Input{Category: str("PARTY"), AdditionalHours: intp(20)})
	var errs validators.Errors
	require.ErrorAs(t, err, &errs)
	for _, f := range []string{"title", "category", "date", "startTime", "endTime", "additionalHours"} {
		assert.True(t, errs.Has(f), f)
	}
}

func intp(i int) *int { return &i }

func TestGet_OwnershipHidesOthersEvents(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	ev, err := svc.Create(ctx, alice, validInput("Mine"))
	require.NoError(t, err)

	got, err := svc.Load(ctx, alice, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, got.ID)

	_, err = svc.Load(ctx, bob, ev.ID)
	assert.True(t, httperr.IsBusiness(err, "event_not_found"))

	_, err = svc.Load(ctx, admin, ev.ID)
	assert.NoError(t, err)

	_, err = svc.Load(ctx, alice, "missing")
	assert.True(t, httperr.IsBusiness(err, "event_not_found"))
}

func TestList_ScopedToOwner(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	_, _ = svc.Create(ctx, alice, validInput("A1"))
	_, _ = svc.Create(ctx, alice, validInput("A2"))
	_, _ = svc.Create(ctx, bob, validInput("B1"))

	mine, total, err := svc.List(ctx, alice, eventdomain.ListFilter{OwnerID: "bob"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, ev := range mine {
		assert.Equal(t, "alice", ev.UserID)
	}

	_, total, err = svc.List(ctx, admin, eventdomain.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestUpdate_EndTimeOnlyUsesMergedSchedule(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	ev, err := svc.Create(ctx, alice, validInput("Gala"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, alice, ev.ID, Input{EndTime: str("2026-12-20T10:45:00Z")})
	var errs validators.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("endTime"))
}

func TestUpdate_ScheduleReportedAlongsideOtherErrors(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	ev, err := svc.Create(ctx, alice, validInput("Gala"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, alice, ev.ID, Input{
		Title:    str(""),
		Category: str("NOPE"),
		EndTime:  str("2026-12-20T10:10:00Z"),
	})
	var errs validators.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("title"))
	assert.True(t, errs.Has("category"))
	assert.True(t, errs.Has("endTime"))
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	ev, err := svc.Create(ctx, alice, validInput("Gala"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, alice, ev.ID, Input{Venue: str("Garden"), EndTime: str("2026-12-20T16:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, "Gala", updated.Title)
	assert.Equal(t, "Garden", updated.Venue)
	assert.Equal(t, 16, updated.EndTime.Hour())
}

func TestUpdate_SameTitleOnSelfIsAllowed(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	ev, err := svc.Create(ctx, alice, validInput("Gala"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, validInput("Other"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, alice, ev.ID, Input{Title: str("Gala")})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, alice, ev.ID, Input{Title: str("Other")})
	var errs validators.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("title"))
}

func TestUpdate_OthersGetNotFound(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	ev, err := svc.Create(ctx, alice, validInput("Gala"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, bob, ev.ID, Input{Venue: str("Hijack")})
	assert.True(t, httperr.IsBusiness(err, "event_not_found"))
}

func TestChangeStatus(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	ev, err := svc.Create(ctx, alice, validInput("Gala"))
	require.NoError(t, err)

	_, err = svc.ChangeStatus(ctx, alice, ev.ID, "APPROVED")
	assert.True(t, httperr.IsBusiness(err, "forbidden_status"))

	approved, err := svc.ChangeStatus(ctx, admin, ev.ID, "APPROVED")
	require.NoError(t, err)
	assert.Equal(t, models.EventApproved, approved.Status)

	_, err = svc.ChangeStatus(ctx, admin, ev.ID, "PENDING")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	canceled, err := svc.ChangeStatus(ctx, alice, ev.ID, "CANCELED")
	require.NoError(t, err)
	assert.Equal(t, models.EventCanceled, canceled.Status)

	_, err = svc.ChangeStatus(ctx, alice, ev.ID, "CANCELED")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = svc.ChangeStatus(ctx, admin, ev.ID, "DONE")
	var errs validators.Errors
	assert.ErrorAs(t, err, &errs)
}

func TestDelete(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	ev, err := svc.Create(ctx, alice, validInput("Gala"))
	require.NoError(t, err)

	assert.True(t, httperr.IsBusiness(svc.Delete(ctx, bob, ev.ID), "event_not_found"))
	require.NoError(t, svc.Delete(ctx, alice, ev.ID))
	assert.True(t, httperr.IsBusiness(svc.Delete(ctx, alice, ev.ID), "event_not_found"))
}

func TestUpdateImage(t *testing.T) {
	svc, up := newService()
	ctx := context.Background()
	ev, err := svc.Create(ctx, alice, validInput("Gala"))
	require.NoError(t, err)

	updated, err := svc.UpdateImage(ctx, alice, ev.ID, bytes.NewReader([]byte("img")))
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "events/"+ev.ID, up.folder)
	assert.Equal(t, 1600, up.maxDim)
}
