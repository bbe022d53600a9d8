package account

import (
	"context"

	domain "github.com/BruksfildServices01/event-catering/internal/domain/account"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

// ======================================================
// FIELD RULES (shared with sign-up)
// ======================================================

func NameField(name, label string, value any, optional bool) validators.Field {
	return validators.Field{
		Name:     name,
		Value:    value,
		Optional: optional,
		Rules: []validators.Rule{
			validators.Required(label + " is required"),
			validators.Tag("max=35", label+" must be at most 35 characters"),
		},
	}
}

// EmailField checks format, domain and uniqueness; excludeID skips the
// caller's own row on update.
func EmailField(repo domain.Repository, value any, excludeID string, optional bool) validators.Field {
	return validators.Field{
		Name:     "email",
		Value:    value,
		Optional: optional,
		Rules: []validators.Rule{
			validators.Required("Email is required"),
			validators.Tag("email", "Invalid email address"),
			validators.Tag("email_domain", "Email domain does not accept mail"),
			validators.Check(func(ctx context.Context, v any) (bool, error) {
				taken, err := repo.EmailTaken(ctx, validators.NormalizeEmail(v.(string)), excludeID)
				return !taken, err
			}, "Email already in use"),
		},
	}
}

func PhoneField(value any) validators.Field {
	return validators.Field{
		Name:     "phoneNumber",
		Value:    value,
		Optional: true,
		Rules: []validators.Rule{
			validators.Tag("ph_phone", "Phone number must match +639XXXXXXXXX"),
		},
	}
}

func PasswordFields(password, confirm any) []validators.Field {
	return []validators.Field{
		{
			Name:  "password",
			Value: password,
			Rules: []validators.Rule{
				validators.Required("Password is required"),
				validators.Tag("min=8", "Password must be at least 8 characters"),
				validators.Tag("has_digit", "Password must contain a number"),
				validators.Tag("has_letter", "Password must contain a letter"),
				validators.Tag("has_special", "Password must contain a special character"),
			},
		},
		{
			Name:  "confirmPassword",
			Value: confirm,
			Rules: []validators.Rule{
				validators.Required("Confirm password is required"),
				validators.Equals(password, "Passwords do not match"),
			},
		},
	}
}

func RoleField(value any) validators.Field {
	return validators.Field{
		Name:     "role",
		Value:    value,
		Optional: true,
		Rules: []validators.Rule{
			validators.Tag("oneof=USER ADMIN", "Role must be USER or ADMIN"),
		},
	}
}
