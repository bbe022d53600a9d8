// Package validators runs declarative per-field rule chains and reports
// every violated rule at once.
package validators

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CheckFunc is a rule that needs more than the value itself, usually a
// store lookup. A non-nil error is an upstream failure, not a violation.
type CheckFunc func(ctx context.Context, value any) (bool, error)

type Rule struct {
	tag     string
	check   CheckFunc
	message string
	bail    bool
}

// Tag builds a rule from a validator tag such as "max=35" or "oneof=A B".
func Tag(tag, message string) Rule {
	return Rule{tag: tag, message: message}
}

// Required fails on absent values and blank strings and stops the
// remaining rules of the field. Zero numbers and false count as present.
func Required(message string) Rule {
	return Rule{message: message, bail: true}
}

func Check(fn CheckFunc, message string) Rule {
	return Rule{check: fn, message: message}
}

// Equals compares the field against another value already in hand.
func Equals(other any, message string) Rule {
	return Check(func(_ context.Context, value any) (bool, error) {
		return reflect.DeepEqual(value, indirect(other)), nil
	}, message)
}

// Field is one input value and its rule chain. An Optional field is skipped
// when absent, and when empty unless it also carries Required.
type Field struct {
	Name     string
	Value    any
	Optional bool
	Rules    []Rule
}

func (f Field) required() bool {
	for _, r := range f.Rules {
		if r.bail {
			return true
		}
	}
	return false
}

type Validator struct {
	validate *validator.Validate
}

func New(checkEmailDomain bool) *Validator {
	return newValidator(checkEmailDomain, NewDomainChecker().Valid)
}

func newValidator(checkEmailDomain bool, domainOK func(context.Context, string) bool) *Validator {
	v := validator.New()
	registerTags(v, checkEmailDomain, domainOK)
	return &Validator{validate: v}
}

// Validate runs every field. Tag rules all run so each violation is
// reported; check rules run only if the field has no violation so far.
func (v *Validator) Validate(ctx context.Context, fields ...Field) *Result {
	res := &Result{}

	for _, f := range fields {
		value := indirect(f.Value)
		if f.Optional && (value == nil || (isEmpty(value) && !f.required())) {
			continue
		}

		failed := false
		for _, rule := range f.Rules {
			if rule.check != nil {
				if failed {
					continue
				}
				ok, err := rule.check(ctx, value)
				if err != nil {
					res.failure = err
					return res
				}
				if !ok {
					res.add(f.Name, rule.message)
					failed = true
				}
				continue
			}

			if rule.bail {
				if !present(value) {
					res.add(f.Name, rule.message)
					break
				}
				continue
			}

			if err := v.validate.VarCtx(ctx, value, rule.tag); err != nil {
				res.add(f.Name, rule.message)
				failed = true
			}
		}
	}

	return res
}

func indirect(value any) any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.IsNil() {
		return nil
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func present(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}
