package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/config"
	"github.com/BruksfildServices01/event-catering/internal/infra/memory"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type auditStub struct{}

func (auditStub) List(context.Context, audit.Filter) ([]models.AuditLog, int64, error) {
	return nil, 0, nil
}

type outbox struct {
	mu   sync.Mutex
	body []string
}

func (o *outbox) Send(_ context.Context, _, _, body string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.body = append(o.body, body)
	return nil
}

type api struct {
	t      *testing.T
	router *gin.Engine
	users  *memory.Users
	mail   *outbox
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:              "test-secret",
		JWTIssuer:              "test",
		JWTExpiry:              time.Hour,
		AuthTokenSources:       "cookie,header",
		AuthCookieName:         "token",
		AllowedOrigins:         "http://localhost:5173",
		BcryptCost:             bcrypt.MinCost,
		VerificationCodeTTL:    10 * time.Minute,
		FrontendURL:            "http://localhost:5173",
		AuthRateLimitPerMinute: 1000,
	}
}

func newAPI(t *testing.T, cfg *config.Config) *api {
	t.Helper()

	users := memory.NewUsers()
	events := memory.NewEvents()
	repos := Repositories{
		Users:            users,
		Codes:            memory.NewCodes(),
		Events:           events,
		Packages:         memory.NewCatalog[models.CateringPackage, *models.CateringPackage](),
		Inclusions:       memory.NewCatalog[models.Inclusion, *models.Inclusion](),
		MainDishPackages: memory.NewCatalog[models.MainDishPackage, *models.MainDishPackage](),
		MainDishes:       memory.NewCatalog[models.MainDish, *models.MainDish](),
		SnackCorners:     memory.NewCatalog[models.SnackCorner, *models.SnackCorner](),
		AddOns:           memory.NewCatalog[models.AddOn, *models.AddOn](),
		Selections:       memory.NewSelections(events),
		AuditLogs:        auditStub{},
	}

	mail := &outbox{}
	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:  cfg,
		Repos:   repos,
		Mailer:  mail,
		Counter: ratelimit.NewMemoryCounter(),
	})
	return &api{t: t, router: r, users: users, mail: mail}
}

func (a *api) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (a *api) signUp(email string) session {
	a.t.Helper()
	w := a.do(http.MethodPost, "/auth/sign-up", map[string]any{
		"firstName":       "Juan",
		"lastName":        "Dela Cruz",
		"email":           email,
		"password":        "p4ssword!",
		"confirmPassword": "p4ssword!",
	}, "")
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[session](a.t, w)
}

func (a *api) admin() session {
	a.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("adm1n!pass"), bcrypt.MinCost)
	require.NoError(a.t, err)
	require.NoError(a.t, a.users.Create(context.Background(), &models.User{
		FirstName: "Ada", LastName: "Admin", Email: "admin@example.com",
		PasswordHash: string(hash), Role: models.RoleAdmin,
	}))

	w := a.do(http.MethodPost, "/auth/admin/login", map[string]string{"email": "admin@example.com", "password": "adm1n!pass"}, "")
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode[session](a.t, w)
}

func eventBody(title string) map[string]any {
	return map[string]any{
		"title":     title,
		"category":  "WEDDING",
		"date":      "2026-12-20",
		"startTime": "2026-12-20T15:00:00Z",
		"endTime":   "2026-12-20T20:00:00Z",
		"venue":     "Garden Pavilion",
	}
}

func TestSignUpAndTokenAccepted(t *testing.T) {
	a := newAPI(t, testConfig())

	w := a.do(http.MethodPost, "/auth/sign-up", map[string]any{
		"firstName": "Juan", "lastName": "Dela Cruz", "email": "juan@example.com",
		"password": "p4ssword!", "confirmPassword": "p4ssword!",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/utils/verify-token", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"juan@example.com"`)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestLogin(t *testing.T) {
	a := newAPI(t, testConfig())
	a.signUp("juan@example.com")

	w := a.do(http.MethodPost, "/auth/login", map[string]string{"email": "juan@example.com", "password": "wrong!pass1"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decode[map[string]any](t, w)["error_code"])

	w = a.do(http.MethodPost, "/auth/login", map[string]string{"email": "JUAN@example.com", "password": "p4ssword!"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[session](t, w)

	w = a.do(http.MethodGet, "/account/me", nil, s.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodPost, "/auth/admin/login", map[string]string{"email": "juan@example.com", "password": "p4ssword!"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSignUp_PasswordRules(t *testing.T) {
	a := newAPI(t, testConfig())

	w := a.do(http.MethodPost, "/auth/sign-up", map[string]any{
		"firstName": "Juan", "lastName": "Dela Cruz", "email": "juan@example.com",
		"password": "________", "confirmPassword": "________",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[struct {
		Code   string `json:"error_code"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}](t, w)
	assert.Equal(t, "validation_failed", body.Code)

	var msgs []string
	for _, e := range body.Errors {
		if e.Field == "password" {
			msgs = append(msgs, e.Message)
		}
	}
	assert.ElementsMatch(t, []string{
		"Password must contain a number",
		"Password must contain a letter",
		"Password must contain a special character",
	}, msgs)
}

func TestInvalidJSON(t *testing.T) {
	a := newAPI(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestEventOwnership(t *testing.T) {
	a := newAPI(t, testConfig())
	alice := a.signUp("alice@example.com")
	bob := a.signUp("bob@example.com")
	admin := a.admin()

	w := a.do(http.MethodPost, "/event", eventBody("Wedding"), alice.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ev := decode[models.Event](t, w)
	assert.Equal(t, models.EventPending, ev.Status)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/event/"+ev.ID, nil, bob.Token).Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/event/"+ev.ID, nil, alice.Token).Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/event/"+ev.ID, nil, admin.Token).Code)

	w = a.do(http.MethodPost, "/event", eventBody("Wedding"), alice.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = a.do(http.MethodPost, "/event", eventBody("Wedding"), bob.Token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = a.do(http.MethodPatch, "/event/"+ev.ID+"/status", map[string]string{"status": "APPROVED"}, alice.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = a.do(http.MethodPatch, "/event/"+ev.ID+"/status", map[string]string{"status": "APPROVED"}, admin.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	w = a.do(http.MethodPatch, "/event/"+ev.ID+"/status", map[string]string{"status": "PENDING"}, admin.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_state")

	w = a.do(http.MethodGet, "/event", nil, bob.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["total"])

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, "/event/"+ev.ID, nil, bob.Token).Code)
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/event/"+ev.ID, nil, alice.Token).Code)
}

func TestEventUpdate_ShortSchedule(t *testing.T) {
	a := newAPI(t, testConfig())
	alice := a.signUp("alice@example.com")

	w := a.do(http.MethodPost, "/event", eventBody("Debut"), alice.Token)
	require.Equal(t, http.StatusCreated, w.Code)
	ev := decode[models.Event](t, w)

	w = a.do(http.MethodPut, "/event/"+ev.ID, map[string]any{"endTime": "2026-12-20T15:30:00Z"}, alice.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "endTime")
}

func TestCatalogAndSelections(t *testing.T) {
	a := newAPI(t, testConfig())
	alice := a.signUp("alice@example.com")
	admin := a.admin()

	dish := map[string]any{"name": "Beef Caldereta", "dishType": "MAIN", "category": "Beef"}
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodPost, "/catering/details/main-dishes", dish, alice.Token).Code)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodPost, "/catering/details/main-dishes", "not an object", alice.Token).Code)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodPut, "/catering/details/add-ons/x", "not an object", alice.Token).Code)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodDelete, "/catering/details/packages/x", nil, alice.Token).Code)

	w := a.do(http.MethodPost, "/catering/details/main-dishes", dish, admin.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	d := decode[models.MainDish](t, w)

	w = a.do(http.MethodPost, "/catering/details/main-dish-packages", map[string]any{
		"name": "Silver", "numOfDishesCategory": 3, "price": 450, "minPax": 50, "maxPax": 150,
	}, admin.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	pkg := decode[models.MainDishPackage](t, w)

	w = a.do(http.MethodGet, "/catering/details/main-dishes", nil, alice.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["total"])

	w = a.do(http.MethodPost, "/event", eventBody("Wedding"), alice.Token)
	require.Equal(t, http.StatusCreated, w.Code)
	ev := decode[models.Event](t, w)

	sel := map[string]any{
		"expectedPax": 100, "totalAmount": 45000, "numberOfMainDishes": 1,
		"packageId": pkg.ID, "eventId": ev.ID, "mainDishes": []string{d.ID},
	}
	w = a.do(http.MethodPost, "/catering", sel, alice.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.CateringSelection](t, w)

	assert.Equal(t, http.StatusConflict, a.do(http.MethodPost, "/catering", sel, alice.Token).Code)

	w = a.do(http.MethodGet, "/catering/event/"+ev.ID, nil, alice.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decode[models.CateringSelection](t, w).ID)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/catering/"+created.ID, nil, alice.Token).Code)
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/catering/details/main-dishes/"+d.ID, nil, admin.Token).Code)
}

func TestAccounts(t *testing.T) {
	a := newAPI(t, testConfig())
	alice := a.signUp("alice@example.com")
	bob := a.signUp("bob@example.com")
	admin := a.admin()

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/account/"+bob.User.ID, nil, alice.Token).Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/account/"+bob.User.ID, nil, admin.Token).Code)

	w := a.do(http.MethodPut, "/account/"+alice.User.ID, map[string]any{"role": "ADMIN"}, alice.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPost, "/account", map[string]any{
		"firstName": "New", "lastName": "Staff", "email": "staff@example.com",
		"password": "st4ff!pass", "confirmPassword": "st4ff!pass", "role": "ADMIN",
	}, alice.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodGet, "/account", nil, admin.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decode[map[string]any](t, w)["total"])

	w = a.do(http.MethodDelete, "/account/"+alice.User.ID, nil, alice.Token)
	require.Equal(t, http.StatusNoContent, w.Code)
	var cleared bool
	for _, c := range w.Result().Cookies() {
		cleared = cleared || (c.Name == "token" && c.MaxAge < 0)
	}
	assert.True(t, cleared)

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/account/me", nil, alice.Token).Code)
}

func TestAvatarWithoutStorage(t *testing.T) {
	a := newAPI(t, testConfig())
	alice := a.signUp("alice@example.com")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/account/"+alice.User.ID+"/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+alice.Token)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "storage_not_configured")

	w = a.do(http.MethodPut, "/account/"+alice.User.ID+"/avatar", nil, alice.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "image_required")
}

var sixDigits = regexp.MustCompile(`\b(\d{6})\b`)

func TestPasswordResetFlow(t *testing.T) {
	a := newAPI(t, testConfig())
	a.signUp("alice@example.com")

	w := a.do(http.MethodPost, "/auth/forgot-password", map[string]string{"email": "nobody@example.com"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, a.mail.body)

	w = a.do(http.MethodPost, "/auth/forgot-password", map[string]string{"email": "alice@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, a.mail.body, 1)
	code := sixDigits.FindString(a.mail.body[0])
	require.NotEmpty(t, code)

	w = a.do(http.MethodPost, "/auth/verify-code", map[string]string{"email": "alice@example.com", "code": code}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reset := decode[map[string]any](t, w)["resetToken"].(string)

	w = a.do(http.MethodPost, "/auth/reset-password", map[string]string{
		"resetToken": reset, "password": "n3w!passw0rd", "confirmPassword": "n3w!passw0rd",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/auth/login", map[string]string{"email": "alice@example.com", "password": "n3w!passw0rd"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func (a *api) verifyFrom(forwardedFor, email, code string) *httptest.ResponseRecorder {
	a.t.Helper()

	body, err := json.Marshal(map[string]string{"email": email, "code": code})
	require.NoError(a.t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/verify-code", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func wrongCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

func TestVerifyCode_ForwardedForDoesNotDodgeRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRateLimitPerMinute = 3
	a := newAPI(t, cfg)
	a.signUp("alice@example.com")

	require.Equal(t, http.StatusOK, a.do(http.MethodPost, "/auth/forgot-password", map[string]string{"email": "alice@example.com"}, "").Code)
	code := sixDigits.FindString(a.mail.body[0])

	statuses := map[int]int{}
	for i := 0; i < 10; i++ {
		w := a.verifyFrom(fmt.Sprintf("203.0.113.%d", i+1), "alice@example.com", wrongCode(code))
		statuses[w.Code]++
	}
	assert.Equal(t, 3, statuses[http.StatusBadRequest])
	assert.Equal(t, 7, statuses[http.StatusTooManyRequests])
}

func TestVerifyCode_WrongGuessesBurnCode(t *testing.T) {
	a := newAPI(t, testConfig())
	a.signUp("alice@example.com")

	require.Equal(t, http.StatusOK, a.do(http.MethodPost, "/auth/forgot-password", map[string]string{"email": "alice@example.com"}, "").Code)
	code := sixDigits.FindString(a.mail.body[0])

	for i := 0; i < 5; i++ {
		w := a.do(http.MethodPost, "/auth/verify-code", map[string]string{"email": "alice@example.com", "code": wrongCode(code)}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := a.do(http.MethodPost, "/auth/verify-code", map[string]string{"email": "alice@example.com", "code": code}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_or_expired_code")
}

func TestAdminArea(t *testing.T) {
	a := newAPI(t, testConfig())
	alice := a.signUp("alice@example.com")
	admin := a.admin()

	assert.Equal(t, http.StatusForbidden, a.do(http.MethodGet, "/admin", nil, alice.Token).Code)

	w := a.do(http.MethodGet, "/admin", nil, admin.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode[map[string]any](t, w)["users"])

	w = a.do(http.MethodGet, "/admin/audit-logs?from=2026-01-01&to=bad", nil, admin.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlatformAndMisc(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRateLimitPerMinute = 2
	a := newAPI(t, cfg)

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/health", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/auth/google", nil, "").Code)

	w := a.do(http.MethodGet, "/auth/log-out", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	codes := []int{}
	for i := 0; i < 3; i++ {
		codes = append(codes, a.do(http.MethodPost, "/auth/login", map[string]string{"email": "x@example.com", "password": "x"}, "").Code)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}
