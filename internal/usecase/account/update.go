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

// UpdateInput leaves nil fields untouched.
type UpdateInput struct {
	FirstName       *string
	LastName        *string
	Email           *string
	PhoneNumber     *string
	Role            *string
	Password        *string
	ConfirmPassword *string
}

func (s *Service) Update(ctx context.Context, p authz.Principal, id string, in UpdateInput) (*models.User, error) {
	u, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if in.Role != nil && models.Role(*in.Role) != u.Role && !p.IsAdmin() {
		return nil, httperr.ErrForbidden("role_change_forbidden", "Only administrators can change roles.")
	}

	fields := []validators.Field{
		NameField("firstName", "First name", in.FirstName, true),
		NameField("lastName", "Last name", in.LastName, true),
		EmailField(s.repo, in.Email, u.ID, true),
		PhoneField(in.PhoneNumber),
		RoleField(in.Role),
	}
	if in.Password != nil || in.ConfirmPassword != nil {
		fields = append(fields, PasswordFields(in.Password, in.ConfirmPassword)...)
	}

	if err := s.validator.Validate(ctx, fields...).Err(); err != nil {
		return nil, err
	}

	var changed []string
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
		changed = append(changed, "firstName")
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
		changed = append(changed, "lastName")
	}
	if in.Email != nil {
		u.Email = validators.NormalizeEmail(*in.Email)
		changed = append(changed, "email")
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = emptyToNil(in.PhoneNumber)
		changed = append(changed, "phoneNumber")
	}
	if in.Role != nil && *in.Role != "" {
		u.Role = models.Role(*in.Role)
		changed = append(changed, "role")
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
		changed = append(changed, "password")
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errEmailTaken
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  p.ID,
		Action:   audit.ActionAccountUpdated,
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"fields": changed},
	})
	return u, nil
}
