package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/httperr"
	"github.com/BruksfildServices01/event-catering/internal/httpresp"
	"github.com/BruksfildServices01/event-catering/internal/timezone"
	"github.com/BruksfildServices01/event-catering/internal/usecase/admin"
)

type AdminHandler struct {
	admin *admin.Service
	loc   *time.Location
}

func NewAdminHandler(svc *admin.Service, loc *time.Location) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{admin: svc, loc: loc}
}

func (h *AdminHandler) Summary(c *gin.Context) {
	s, err := h.admin.Summary(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

// AuditLogs filters by action, entity and a from/to day range (YYYY-MM-DD,
// both inclusive, read in the business timezone). Unparseable dates are
// ignored.
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	page, limit := httpresp.Paging(c)

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}
	f.From, f.To = timezone.DayRange(c.Query("from"), c.Query("to"), h.loc)

	logs, total, err := h.admin.AuditLogs(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, logs, page, limit, total)
}
