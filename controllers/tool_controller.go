// controllers/tool_controller.go
package controllers

import (
	"net/http"

	"github.com/Dhiekson/ToolTrack/app"
	"github.com/Dhiekson/ToolTrack/engine"

	"github.com/gin-gonic/gin"
)

type ToolController struct{ *Srv }

func NewToolController(s *Srv) *ToolController { return &ToolController{Srv: s} }

func (tc *ToolController) CreateTool(c *gin.Context) {
	var in engine.RegisterToolInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	t, err := tc.Engine.RegisterTool(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	tc.Cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, t)
}

// GET /api/tools?q=&category=
func (tc *ToolController) ListTools(c *gin.Context) {
	f := engine.ToolFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}
	tools, err := tc.Engine.ListTools(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"tools": tools})
}

func (tc *ToolController) GetTool(c *gin.Context) {
	t, err := tc.Engine.GetTool(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (tc *ToolController) UpdateTool(c *gin.Context) {
	var in engine.UpdateToolInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	t, err := tc.Engine.UpdateTool(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	tc.Cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, t)
}

func (tc *ToolController) DeleteTool(c *gin.Context) {
	if err := tc.Engine.DeleteTool(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	tc.Cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, app.H{"ok": true})
}
