package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/auth"
	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/usecase/account"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

// maxCodeAttempts wrong guesses burn the pending code.
const maxCodeAttempts = 5

var (
	errInvalidCode       = httperr.ErrBusiness("invalid_or_expired_code")
	errInvalidResetToken = httperr.ErrUnauthorized("invalid_reset_token", "Reset link is invalid or has expired.")
)

func emailField(email string) validators.Field {
	return validators.Field{Name: "email", Value: email, Rules: []validators.Rule{
		validators.Required("Email is required"),
		validators.Tag("email", "Invalid email address"),
	}}
}

// ForgotPassword mails a one-time code when the account exists. Callers
// get the same answer either way.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if err := s.validator.Validate(ctx, emailField(email)).Err(); err != nil {
		return err
	}
	email = validators.NormalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	code, err := auth.GenerateCode()
	if err != nil {
		return err
	}
	hash, err := s.hasher.Hash(code)
	if err != nil {
		return err
	}

	vc := &models.VerificationCode{
		Email:     email,
		CodeHash:  hash,
		ExpiresAt: s.now().Add(s.codeTTL),
	}
	if err := s.codes.Upsert(ctx, vc); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Your password reset code is %s.\nIt expires in %d minutes.",
		code, int(s.codeTTL/time.Minute),
	)
	return s.mailer.Send(ctx, email, "Password reset code", body)
}

// VerifyCode consumes a valid code and returns a short-lived reset token.
func (s *Service) VerifyCode(ctx context.Context, email, code string) (string, time.Time, error) {
	res := s.validator.Validate(ctx,
		emailField(email),
		validators.Field{Name: "code", Value: code, Rules: []validators.Rule{
			validators.Required("Code is required"),
			validators.Tag("numeric,len=6", "Code must be 6 digits"),
		}},
	)
	if err := res.Err(); err != nil {
		return "", time.Time{}, err
	}
	email = validators.NormalizeEmail(email)

	vc, err := s.codes.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", time.Time{}, errInvalidCode
	}
	if err != nil {
		return "", time.Time{}, err
	}

	if vc.Expired(s.now()) {
		if err := s.codes.DeleteByEmail(ctx, email); err != nil {
			return "", time.Time{}, err
		}
		return "", time.Time{}, errInvalidCode
	}
	if !s.hasher.Compare(vc.CodeHash, code) {
		if err := s.recordFailure(ctx, email); err != nil {
			return "", time.Time{}, err
		}
		return "", time.Time{}, errInvalidCode
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", time.Time{}, errInvalidCode
	}
	if err != nil {
		return "", time.Time{}, err
	}

	if err := s.codes.DeleteByEmail(ctx, email); err != nil {
		return "", time.Time{}, err
	}
	return s.tokens.IssuePasswordReset(authz.PrincipalOf(u))
}

func (s *Service) recordFailure(ctx context.Context, email string) error {
	attempts, err := s.codes.RecordFailure(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if attempts >= maxCodeAttempts {
		return s.codes.DeleteByEmail(ctx, email)
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, resetToken, password, confirm string) error {
	claims, err := s.tokens.VerifyPasswordReset(resetToken)
	if err != nil {
		return errInvalidResetToken
	}

	if err := s.validator.Validate(ctx, account.PasswordFields(password, confirm)...).Err(); err != nil {
		return err
	}

	u, err := s.users.GetByID(ctx, claims.User.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return errInvalidResetToken
	}
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  u.ID,
		Action:   audit.ActionAccountUpdated,
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"fields": []string{"password"}, "source": "reset"},
	})
	return nil
}
