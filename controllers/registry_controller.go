// controllers/registry_controller.go
package controllers

import (
	"net/http"

	"github.com/Dhiekson/ToolTrack/app"
	"github.com/Dhiekson/ToolTrack/engine"

	"github.com/gin-gonic/gin"
)

// RegistryController serves the employee and third-party rosters.
type RegistryController struct{ *Srv }

func NewRegistryController(s *Srv) *RegistryController { return &RegistryController{Srv: s} }

func (rc *RegistryController) ListEmployees(c *gin.Context) {
	emps, err := rc.Engine.ListEmployees(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"employees": emps})
}

func (rc *RegistryController) CreateEmployee(c *gin.Context) {
	var in engine.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	emp, err := rc.Engine.AddEmployee(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, emp)
}

func (rc *RegistryController) UpdateEmployee(c *gin.Context) {
	var in engine.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	emp, err := rc.Engine.UpdateEmployee(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (rc *RegistryController) DeleteEmployee(c *gin.Context) {
	if err := rc.Engine.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (rc *RegistryController) ListThirdParties(c *gin.Context) {
	tps, err := rc.Engine.ListThirdParties(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"thirdParties": tps})
}

func (rc *RegistryController) CreateThirdParty(c *gin.Context) {
	var in engine.ThirdPartyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	tp, err := rc.Engine.AddThirdParty(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tp)
}

func (rc *RegistryController) UpdateThirdParty(c *gin.Context) {
	var in engine.ThirdPartyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	tp, err := rc.Engine.UpdateThirdParty(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tp)
}

func (rc *RegistryController) DeleteThirdParty(c *gin.Context) {
	if err := rc.Engine.DeleteThirdParty(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
