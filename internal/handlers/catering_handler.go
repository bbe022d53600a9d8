package handlers

import (
	"github.com/gin-gonic/gin"

	cateringdomain "github.com/BruksfildServices01/event-catering/internal/domain/catering"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/httpresp"
	"github.com/BruksfildServices01/event-catering/internal/middleware"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/usecase/catering"
)

// ======================================================
// CATALOG (one handler per reference table)
// ======================================================

type CatalogHandler[T any, PT cateringdomain.Entity[T], I catering.Input[T]] struct {
	catalog *catering.Catalog[T, PT]
}

func NewCatalogHandler[T any, PT cateringdomain.Entity[T], I catering.Input[T]](catalog *catering.Catalog[T, PT]) *CatalogHandler[T, PT, I] {
	return &CatalogHandler[T, PT, I]{catalog: catalog}
}

// Register mounts the five catalog routes on g. Writes are refused for
// non-admins before the body is read.
func (h *CatalogHandler[T, PT, I]) Register(g *gin.RouterGroup) {
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", adminOnly, h.Create)
	g.PUT("/:id", adminOnly, h.Update)
	g.DELETE("/:id", adminOnly, h.Delete)
}

func (h *CatalogHandler[T, PT, I]) List(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *CatalogHandler[T, PT, I]) Get(c *gin.Context) {
	item, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, item)
}

func (h *CatalogHandler[T, PT, I]) Create(c *gin.Context) {
	var in I
	if !bindJSON(c, &in) {
		return
	}

	item, err := h.catalog.Create(c.Request.Context(), middleware.MustPrincipal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, item)
}

func (h *CatalogHandler[T, PT, I]) Update(c *gin.Context) {
	var in I
	if !bindJSON(c, &in) {
		return
	}

	item, err := h.catalog.Update(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, item)
}

func (h *CatalogHandler[T, PT, I]) Delete(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// SELECTIONS
// ======================================================

type SelectionHandler struct {
	selections *catering.Selections
}

func NewSelectionHandler(selections *catering.Selections) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

func (h *SelectionHandler) List(c *gin.Context) {
	page, limit := httpresp.Paging(c)

	items, total, err := h.selections.List(c.Request.Context(), middleware.MustPrincipal(c), page, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, items, page, limit, total)
}

func (h *SelectionHandler) Get(c *gin.Context) {
	sel, err := h.selections.Get(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, sel)
}

func (h *SelectionHandler) GetByEvent(c *gin.Context) {
	sel, err := h.selections.GetByEvent(c.Request.Context(), middleware.MustPrincipal(c), c.Param("eventId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, sel)
}

func (h *SelectionHandler) Create(c *gin.Context) {
	var in catering.SelectionInput
	if !bindJSON(c, &in) {
		return
	}

	sel, err := h.selections.Create(c.Request.Context(), middleware.MustPrincipal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, sel)
}

func (h *SelectionHandler) Update(c *gin.Context) {
	var in catering.SelectionInput
	if !bindJSON(c, &in) {
		return
	}

	sel, err := h.selections.Update(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id"), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, sel)
}

func (h *SelectionHandler) Delete(c *gin.Context) {
	if err := h.selections.Delete(c.Request.Context(), middleware.MustPrincipal(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
