package handlers

import (
	"github.com/gin-gonic/gin"

	accountdomain "github.com/BruksfildServices01/event-catering/internal/domain/account"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/httpresp"
	"github.com/BruksfildServices01/event-catering/internal/middleware"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/usecase/account"
)

type AccountHandler struct {
	accounts *account.Service
	cookie   CookieConfig
}

func NewAccountHandler(accounts *account.Service, cookie CookieConfig) *AccountHandler {
	return &AccountHandler{accounts: accounts, cookie: cookie}
}

type CreateAccountRequest struct {
	SignUpRequest
	Role *string `json:"role"`
}

type UpdateAccountRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Email           *string `json:"email"`
	PhoneNumber     *string `json:"phoneNumber"`
	Role            *string `json:"role"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
}

func (h *AccountHandler) Me(c *gin.Context) {
	u, err := h.accounts.Me(c.Request.Context(), middleware.MustPrincipal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *AccountHandler) List(c *gin.Context) {
	page, limit := httpresp.Paging(c)

	users, total, err := h.accounts.List(c.Request.Context(), middleware.MustPrincipal(c), accountdomain.ListFilter{
		Query: c.Query("q"),
		Role:  models.Role(c.Query("role")),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, users, page, limit, total)
}

func (h *AccountHandler) Get(c *gin.Context) {
	u, err := h.accounts.Get(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.accounts.Create(c.Request.Context(), middleware.MustPrincipal(c), account.CreateInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Role:            req.Role,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, u)
}

func (h *AccountHandler) Update(c *gin.Context) {
	var req UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.accounts.Update(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), account.UpdateInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *AccountHandler) UpdateAvatar(c *gin.Context) {
	f, ok := formImage(c, "avatar")
	if !ok {
		return
	}
	defer f.Close()

	u, err := h.accounts.UpdateAvatar(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *AccountHandler) Delete(c *gin.Context) {
	p := middleware.MustPrincipal(c)
	id := c.Param("id")

	if err := h.accounts.Delete(c.Request.Context(), p, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	if id == p.ID {
		h.cookie.clear(c)
	}
	httpresp.NoContent(c)
}
