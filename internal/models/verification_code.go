package models

import "time"

type VerificationCode struct {
	Base

	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CodeHash  string    `gorm:"size:255;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Attempts  int       `gorm:"not null;default:0" json:"-"`
}

func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
