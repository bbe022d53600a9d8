package identity

import (
	"time"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/auth"
	accountdomain "github.com/BruksfildServices01/event-catering/internal/domain/account"
	"github.com/BruksfildServices01/event-catering/internal/mail"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/usecase/account"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

// Session is what every successful sign-in returns.
type Session struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type Service struct {
	users     accountdomain.Repository
	codes     accountdomain.CodeRepository
	accounts  *account.Service
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenIssuer
	validator *validators.Validator
	mailer    mail.Sender
	audit     *audit.Dispatcher
	codeTTL   time.Duration
	now       func() time.Time
}

func NewService(
	users accountdomain.Repository,
	codes accountdomain.CodeRepository,
	accounts *account.Service,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	validator *validators.Validator,
	mailer mail.Sender,
	audit *audit.Dispatcher,
	codeTTL time.Duration,
) *Service {
	return &Service{
		users:     users,
		codes:     codes,
		accounts:  accounts,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		mailer:    mailer,
		audit:     audit,
		codeTTL:   codeTTL,
		now:       time.Now,
	}
}
