package models

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	Base

	FirstName    string  `gorm:"size:35;not null" json:"firstName"`
	LastName     string  `gorm:"size:35;not null" json:"lastName"`
	Email        string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:255" json:"-"`
	Role         Role    `gorm:"size:10;default:'USER';not null" json:"role"`
	PhoneNumber  *string `gorm:"size:20" json:"phoneNumber"`
	AvatarURL    *string `gorm:"size:512" json:"avatarUrl"`
}

// HasPassword is false for accounts provisioned through OAuth.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
