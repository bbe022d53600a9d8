package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/usecase/account"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

var errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid email or password.")

func (s *Service) issue(u *models.User) (*Session, error) {
	token, exp, err := s.tokens.Issue(authz.PrincipalOf(u))
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token, ExpiresAt: exp}, nil
}

// SignUp registers a USER account and signs it in.
func (s *Service) SignUp(ctx context.Context, in account.CreateInput) (*Session, error) {
	in.Role = nil

	u, err := s.accounts.Register(ctx, in)
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  u.ID,
		Action:   audit.ActionAccountCreated,
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"source": "sign_up"},
	})
	return s.issue(u)
}

// Login answers unknown emails, OAuth-only accounts and wrong passwords
// with the same error.
func (s *Service) Login(ctx context.Context, email, password string, adminOnly bool) (*Session, error) {
	res := s.validator.Validate(ctx,
		validators.Field{Name: "email", Value: email, Rules: []validators.Rule{
			validators.Required("Email is required"),
			validators.Tag("email", "Invalid email address"),
		}},
		validators.Field{Name: "password", Value: password, Rules: []validators.Rule{
			validators.Required("Password is required"),
		}},
	)
	if err := res.Err(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, validators.NormalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Compare(u.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	if adminOnly && u.Role != models.RoleAdmin {
		return nil, httperr.ErrForbidden("admin_only", "Administrator access required.")
	}

	return s.issue(u)
}

type OAuthProfile struct {
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
}

// OAuthSignIn finds the account by email or provisions a passwordless USER.
func (s *Service) OAuthSignIn(ctx context.Context, profile OAuthProfile) (*Session, error) {
	email := validators.NormalizeEmail(profile.Email)
	if email == "" {
		return nil, httperr.ErrBusiness("oauth_email_missing")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return s.issue(u)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	u = &models.User{
		FirstName: truncate(profile.FirstName, 35),
		LastName:  truncate(profile.LastName, 35),
		Email:     email,
		Role:      models.RoleUser,
	}
	if profile.AvatarURL != "" {
		u.AvatarURL = &profile.AvatarURL
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  u.ID,
		Action:   audit.ActionAccountCreated,
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"source": "google"},
	})
	return s.issue(u)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
