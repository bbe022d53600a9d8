package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

func respond(err error) (*httptest.ResponseRecorder, HTTPError) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, err)

	var body HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRespond(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validators.Errors{{Field: "email", Message: "bad"}}, http.StatusBadRequest, "validation_failed"},
		{"business default", ErrBusiness("invalid_state"), http.StatusBadRequest, "invalid_state"},
		{"business wrapped", fmt.Errorf("ctx: %w", ErrNotFound("event_not_found", "Event not found.")), http.StatusNotFound, "event_not_found"},
		{"conflict", ErrConflict("email_taken", "Email already in use."), http.StatusConflict, "email_taken"},
		{"store not found", domain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"store conflict", domain.ErrConflict, http.StatusConflict, "conflict"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := respond(tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespond_ValidationListsFields(t *testing.T) {
	_, body := respond(validators.Errors{
		{Field: "password", Message: "a"},
		{Field: "password", Message: "b"},
	})
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "password", body.Errors[0].Field)
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrBusiness("invalid_state"))
	assert.True(t, IsBusiness(err, "invalid_state"))
	assert.False(t, IsBusiness(err, "other"))
	assert.False(t, IsBusiness(errors.New("x"), "invalid_state"))
}
