package routes

import (
	"github.com/Dhiekson/ToolTrack/app"
	"github.com/Dhiekson/ToolTrack/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	toolCtl := controllers.NewToolController(s)
	loanCtl := controllers.NewLoanController(s)
	regCtl := controllers.NewRegistryController(s)
	dashCtl := controllers.NewDashboardController(s)

	// ------------------------------
	// Dashboard
	// ------------------------------
	r.GET("/api/dashboard", dashCtl.Summary)

	// ------------------------------
	// Tool inventory
	// ------------------------------
	tools := r.Group("/api/tools")
	{
		tools.GET("", toolCtl.ListTools) // ?q=&category=
		tools.POST("", toolCtl.CreateTool)
		tools.GET("/:id", toolCtl.GetTool)
		tools.PUT("/:id", toolCtl.UpdateTool)
		tools.DELETE("/:id", toolCtl.DeleteTool)
	}

	// ------------------------------
	// Loans (borrow/return) and reports
	// ------------------------------
	loans := r.Group("/api/loans")
	{
		loans.GET("", loanCtl.ListLoans) // ?q=&status=active|returned
		loans.POST("", loanCtl.Borrow)
		loans.GET("/:id", loanCtl.GetLoan)
		loans.POST("/:id/return", loanCtl.Return)
	}
	r.GET("/api/reports/loans", loanCtl.LoanReport) // ?status=&from=&to=

	// ------------------------------
	// Borrower registries
	// ------------------------------
	employees := r.Group("/api/employees")
	{
		employees.GET("", regCtl.ListEmployees)
		employees.POST("", regCtl.CreateEmployee)
		employees.PUT("/:id", regCtl.UpdateEmployee)
		employees.DELETE("/:id", regCtl.DeleteEmployee)
	}

	thirdParties := r.Group("/api/third-parties")
	{
		thirdParties.GET("", regCtl.ListThirdParties)
		thirdParties.POST("", regCtl.CreateThirdParty)
		thirdParties.PUT("/:id", regCtl.UpdateThirdParty)
		thirdParties.DELETE("/:id", regCtl.DeleteThirdParty)
	}
}
