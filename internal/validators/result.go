package validators

import "strings"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full list of violations for one request.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has at least one violation.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

type Result struct {
	Errors  Errors
	failure error
}

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Merge appends violations found outside the rule chains.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	if r.failure == nil {
		r.failure = other.failure
	}
	r.Errors = append(r.Errors, other.Errors...)
}

func (r *Result) AddError(field, message string) {
	r.add(field, message)
}

// Err returns the upstream failure if a check could not run, the
// violations if any, or nil.
func (r *Result) Err() error {
	if r.failure != nil {
		return r.failure
	}
	if len(r.Errors) > 0 {
		return r.Errors
	}
	return nil
}
