package pro_routes

import (
	"github.com/jellies-true/pass-culture/controllers/pro/reimbursement_controller"
	"github.com/jellies-true/pass-culture/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReimbursementRoutes(rg *gin.RouterGroup) {
	reimbursement := rg.Group("/reimbursements")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth only - read-only screen, nothing to log)
	// ════════════════════════════════════════════════════════════
	protected := reimbursement.Group("")
	protected.Use(middleware.ProAuthMiddleware())
	{
		// Read
		protected.GET("", reimbursement_controller.GetReimbursements)

		// Export
		protected.GET("/csv", reimbursement_controller.ExportReimbursementsCSV)
	}
}
