// controllers/dashboard_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct{ *Srv }

func NewDashboardController(s *Srv) *DashboardController { return &DashboardController{Srv: s} }

// Summary serves the dashboard, from Redis when the cached copy is still
// fresh.
func (dc *DashboardController) Summary(c *gin.Context) {
	if s := dc.Cache.Get(c.Request.Context()); s != nil {
		c.JSON(http.StatusOK, s)
		return
	}
	s, err := dc.Engine.DashboardSummary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	dc.Cache.Set(c.Request.Context(), s)
	c.JSON(http.StatusOK, s)
}
