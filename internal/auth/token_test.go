package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/event-catering/internal/authz"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

var alice = authz.Principal{ID: "u-1", Email: "alice@example.com", Role: models.RoleUser}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", "test", time.Hour)

	token, exp, err := issuer.Issue(alice)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, alice, claims.User)
	assert.Empty(t, claims.Purpose)
}

func TestTokenIssuer_RejectsBadTokens(t *testing.T) {
	issuer := NewTokenIssuer("secret", "test", time.Hour)
	other := NewTokenIssuer("other-secret", "test", time.Hour)

	foreign, _, err := other.Issue(alice)
	require.NoError(t, err)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", "test", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := issuer.Issue(alice)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	issuer := NewTokenIssuer("secret", "test", time.Hour)

	claims := Claims{
		User: alice,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_PasswordResetIsSeparate(t *testing.T) {
	issuer := NewTokenIssuer("secret", "test", time.Hour)

	access, _, err := issuer.Issue(alice)
	require.NoError(t, err)
	reset, exp, err := issuer.IssuePasswordReset(alice)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp, 5*time.Second)

	_, err = issuer.Verify(reset)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.VerifyPasswordReset(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := issuer.VerifyPasswordReset(reset)
	require.NoError(t, err)
	assert.Equal(t, PurposePasswordReset, claims.Purpose)
	assert.Equal(t, alice.Email, claims.User.Email)
}
