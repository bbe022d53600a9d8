package account

import (
	"context"

	"github.com/BruksfildServices01/event-catering/internal/models"
)

type ListFilter struct {
	// OwnerID restricts the listing to one user; empty lists everyone.
	OwnerID string
	Query   string
	Role    models.Role
	Page    int
	Limit   int
}

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, excludeID string) (bool, error)
	List(ctx context.Context, f ListFilter) ([]models.User, int64, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CodeRepository stores at most one pending verification code per email.
type CodeRepository interface {
	Upsert(ctx context.Context, vc *models.VerificationCode) error
	GetByEmail(ctx context.Context, email string) (*models.VerificationCode, error)
	// RecordFailure bumps the failed-attempt counter and returns the new count.
	RecordFailure(ctx context.Context, email string) (int, error)
	DeleteByEmail(ctx context.Context, email string) error
}
