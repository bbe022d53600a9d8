package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/httpresp"
	"github.com/BruksfildServices01/event-catering/internal/middleware"
	"github.com/BruksfildServices01/event-catering/internal/oauth"
	"github.com/BruksfildServices01/event-catering/internal/usecase/account"
	"github.com/BruksfildServices01/event-catering/internal/usecase/identity"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	identity    *identity.Service
	google      *oauth.Google
	cookie      CookieConfig
	frontendURL string
}

// NewAuthHandler accepts a nil google provider when OAuth is not configured.
func NewAuthHandler(svc *identity.Service, google *oauth.Google, cookie CookieConfig, frontendURL string) *AuthHandler {
	return &AuthHandler{
		identity:    svc,
		google:      google,
		cookie:      cookie,
		frontendURL: frontendURL,
	}
}

// --------- Requests ---------

type SignUpRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	PhoneNumber     *string `json:"phoneNumber"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"resetToken"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// --------- Handlers ---------

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.identity.SignUp(c.Request.Context(), account.CreateInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cookie.set(c, session.Token, session.ExpiresAt)
	httpresp.Created(c, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, false)
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, true)
}

func (h *AuthHandler) login(c *gin.Context, adminOnly bool) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.identity.Login(c.Request.Context(), req.Email, req.Password, adminOnly)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cookie.set(c, session.Token, session.ExpiresAt)
	httpresp.OK(c, session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookie.clear(c)
	httpresp.OK(c, gin.H{"message": "Logged out."})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.identity.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "If an account exists for this email, a verification code has been sent."})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	token, exp, err := h.identity.VerifyCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"resetToken": token, "expiresAt": exp})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.identity.ResetPassword(c.Request.Context(), req.ResetToken, req.Password, req.ConfirmPassword); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Password updated."})
}

// --------- Google ---------

func (h *AuthHandler) GoogleStart(c *gin.Context) {
	if h.google == nil {
		httperr.NotFound(c, "provider_not_configured", "Google sign-in is not enabled.")
		return
	}

	state, err := oauth.NewState()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Redirect(http.StatusTemporaryRedirect, h.google.AuthURL(state))
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.google == nil {
		httperr.NotFound(c, "provider_not_configured", "Google sign-in is not enabled.")
		return
	}

	expected, _ := c.Cookie(oauthStateCookie)
	http.SetCookie(c.Writer, &http.Cookie{Name: oauthStateCookie, Path: "/auth/google", MaxAge: -1})

	if expected == "" || c.Query("state") != expected {
		httperr.BadRequest(c, "invalid_oauth_state", "Sign-in session expired, please try again.")
		return
	}
	if c.Query("error") != "" || c.Query("code") == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.frontendRedirect("oauth_denied"))
		return
	}

	ctx := c.Request.Context()
	profile, err := h.google.Exchange(ctx, c.Query("code"))
	if err != nil {
		slog.WarnContext(ctx, "google sign-in failed", "error", err)
		c.Redirect(http.StatusTemporaryRedirect, h.frontendRedirect("oauth_failed"))
		return
	}

	session, err := h.identity.OAuthSignIn(ctx, identity.OAuthProfile{
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		AvatarURL: profile.Picture,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cookie.set(c, session.Token, session.ExpiresAt)
	c.Redirect(http.StatusTemporaryRedirect, h.frontendRedirect(""))
}

func (h *AuthHandler) frontendRedirect(errCode string) string {
	url := strings.TrimRight(h.frontendURL, "/") + "/"
	if errCode != "" {
		url += "?error=" + errCode
	}
	return url
}

// --------- Utils ---------

// VerifyToken echoes the principal the auth gate resolved.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	httpresp.OK(c, gin.H{"user": middleware.MustPrincipal(c)})
}
