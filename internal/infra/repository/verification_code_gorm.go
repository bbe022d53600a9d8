package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/event-catering/internal/domain/account"
	"github.com/BruksfildServices01/event-catering/internal/models"
)

type VerificationCodeGormRepository struct {
	db *gorm.DB
}

func NewVerificationCodeGormRepository(db *gorm.DB) *VerificationCodeGormRepository {
	return &VerificationCodeGormRepository{db: db}
}

func (r *VerificationCodeGormRepository) Upsert(ctx context.Context, vc *models.VerificationCode) error {
	vc.EnsureID()
	vc.Attempts = 0
	return mapError(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "attempts", "updated_at"}),
		}).
		Create(vc).Error)
}

func (r *VerificationCodeGormRepository) GetByEmail(ctx context.Context, email string) (*models.VerificationCode, error) {
	var vc models.VerificationCode
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&vc).Error; err != nil {
		return nil, mapError(err)
	}
	return &vc, nil
}

func (r *VerificationCodeGormRepository) RecordFailure(ctx context.Context, email string) (int, error) {
	var vc models.VerificationCode
	res := r.db.WithContext(ctx).
		Model(&vc).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "attempts"}}}).
		Where("email = ?", email).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))
	if res.Error != nil {
		return 0, mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, mapError(gorm.ErrRecordNotFound)
	}
	return vc.Attempts, nil
}

func (r *VerificationCodeGormRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.VerificationCode{}).Error
}

// Compile-time check
var _ domain.CodeRepository = (*VerificationCodeGormRepository)(nil)
