package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

type CreateInput struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     *string
	Role            *string
	Password        string
	ConfirmPassword string
}

var errEmailTaken = httperr.ErrConflict("email_taken", "Email already in use.")

// Create is the administrator path; sign-up goes through the identity flow.
func (s *Service) Create(ctx context.Context, p authz.Principal, in CreateInput) (*models.User, error) {
	if !p.IsAdmin() {
		return nil, httperr.ErrForbidden("admin_only", "Only administrators can create accounts.")
	}

	u, err := s.Register(ctx, in)
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionAccountCreated,
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"role": u.Role},
	})
	return u, nil
}

// Register validates and stores a new account. Role defaults to USER.
func (s *Service) Register(ctx context.Context, in CreateInput) (*models.User, error) {
	fields := []validators.Field{
		NameField("firstName", "First name", in.FirstName, false),
		NameField("lastName", "Last name", in.LastName, false),
		EmailField(s.repo, in.Email, "", false),
		PhoneField(in.PhoneNumber),
		RoleField(in.Role),
	}
	fields = append(fields, PasswordFields(in.Password, in.ConfirmPassword)...)

	if err := s.validator.Validate(ctx, fields...).Err(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	if in.Role != nil && *in.Role != "" {
		role = models.Role(*in.Role)
	}

	u := &models.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        validators.NormalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         role,
		PhoneNumber:  emptyToNil(in.PhoneNumber),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
