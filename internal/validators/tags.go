package validators

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	specialChars = `!@#$%^&*(),.?":{}|<>`
	DateLayout   = "2006-01-02"
)

var phPhone = regexp.MustCompile(`^\+639\d{9}$`)

func registerTags(v *validator.Validate, checkEmailDomain bool, domainOK func(context.Context, string) bool) {
	_ = v.RegisterValidation("has_digit", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsDigit) >= 0
	})
	_ = v.RegisterValidation("has_letter", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsLetter) >= 0
	})
	_ = v.RegisterValidation("has_special", func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), specialChars)
	})
	_ = v.RegisterValidation("ph_phone", func(fl validator.FieldLevel) bool {
		return phPhone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidationCtx("email_domain", func(ctx context.Context, fl validator.FieldLevel) bool {
		if !checkEmailDomain {
			return true
		}
		return domainOK(ctx, fl.Field().String())
	})
}
