package account

import (
	"context"
	"errors"
	"io"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/auth"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	accountdomain "github.com/BruksfildServices01/event-catering/internal/domain/account"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

const avatarMaxDim = 512

// ImageUploader stores a processed image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, folder string, r io.Reader, maxDim int) (string, error)
}

type Service struct {
	repo      accountdomain.Repository
	hasher    *auth.PasswordHasher
	validator *validators.Validator
	uploader  ImageUploader
	audit     *audit.Dispatcher
}

func NewService(
	repo accountdomain.Repository,
	hasher *auth.PasswordHasher,
	validator *validators.Validator,
	uploader ImageUploader,
	audit *audit.Dispatcher,
) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
		uploader:  uploader,
		audit:     audit,
	}
}

var errAccountNotFound = httperr.ErrNotFound("account_not_found", "Account not found.")

// load returns the account when p may see it; others get a not-found.
func (s *Service) load(ctx context.Context, p authz.Principal, id string) (*models.User, error) {
	if !authz.Allow(p, id, models.RoleAdmin) {
		return nil, errAccountNotFound
	}
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errAccountNotFound
	}
	return u, err
}

func (s *Service) Me(ctx context.Context, p authz.Principal) (*models.User, error) {
	return s.load(ctx, p, p.ID)
}

func (s *Service) Get(ctx context.Context, p authz.Principal, id string) (*models.User, error) {
	return s.load(ctx, p, id)
}

func (s *Service) List(ctx context.Context, p authz.Principal, f accountdomain.ListFilter) ([]models.User, int64, error) {
	f.OwnerID = authz.OwnerScope(p)
	return s.repo.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, p authz.Principal, id string) error {
	u, err := s.load(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, u.ID); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionAccountDeleted,
		Entity:   "user",
		EntityID: u.ID,
	})
	return nil
}

func (s *Service) UpdateAvatar(ctx context.Context, p authz.Principal, id string, r io.Reader) (*models.User, error) {
	u, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, "avatars/"+u.ID, r, avatarMaxDim)
	if err != nil {
		return nil, err
	}

	u.AvatarURL = &url
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionAccountUpdated,
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"fields": []string{"avatarUrl"}},
	})
	return u, nil
}
