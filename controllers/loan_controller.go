// controllers/loan_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Dhiekson/ToolTrack/app"
	"github.com/Dhiekson/ToolTrack/engine"

	"github.com/gin-gonic/gin"
)

type LoanController struct{ *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

// Borrow creates a loan for an employee or a third party.
func (lc *LoanController) Borrow(c *gin.Context) {
	var in engine.BorrowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	loan, err := lc.Engine.Borrow(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	lc.Cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, loan)
}

func (lc *LoanController) Return(c *gin.Context) {
	loanID := c.Param("id")
	if loanID == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing loan id"})
		return
	}
	loan, err := lc.Engine.Return(c.Request.Context(), loanID)
	if err != nil {
		writeError(c, err)
		return
	}
	lc.Cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, loan)
}

func (lc *LoanController) GetLoan(c *gin.Context) {
	loan, err := lc.Engine.GetLoan(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

// GET /api/loans?q=&status=active|returned
func (lc *LoanController) ListLoans(c *gin.Context) {
	f := engine.LoanFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	}
	rows, err := lc.Engine.ListLoans(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"loans": rows})
}

// GET /api/reports/loans?status=&from=&to= (RFC 3339 bounds, inclusive)
func (lc *LoanController) LoanReport(c *gin.Context) {
	f := engine.ReportFilter{Status: c.Query("status")}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "invalid from date"})
			return
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "invalid to date"})
			return
		}
		f.To = &t
	}
	rows, err := lc.Engine.LoanReport(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"loans": rows, "generatedAt": time.Now().UTC()})
}
