// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gym-manager/backend/internal/domain/entity"
	"github.com/gym-manager/backend/internal/integration/entrypoint/controller"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	branchController     *controller.BranchController
	memberController     *controller.MemberController
	planController       *controller.PlanController
	paymentController    *controller.PaymentController
	attendanceController *controller.AttendanceController
	operatorController   *controller.OperatorController
	enquiryController    *controller.EnquiryController
	dashboardController  *controller.DashboardController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	branchController *controller.BranchController,
	memberController *controller.MemberController,
	planController *controller.PlanController,
	paymentController *controller.PaymentController,
	attendanceController *controller.AttendanceController,
	operatorController *controller.OperatorController,
	enquiryController *controller.EnquiryController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		branchController:     branchController,
		memberController:     memberController,
		planController:       planController,
		paymentController:    paymentController,
		attendanceController: attendanceController,
		operatorController:   operatorController,
		enquiryController:    enquiryController,
		dashboardController:  dashboardController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.RegisterOwner)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.authMiddleware == nil {
			return
		}

		ownerOnly := r.authMiddleware.RequireRoles(entity.RoleOwner)
		ownerOrBranchAdmin := r.authMiddleware.RequireRoles(entity.RoleOwner, entity.RoleBranchAdmin)

		// Branch routes: owner manages branches
		if r.branchController != nil {
			branches := v1.Group("/branches")
			branches.Use(r.authMiddleware.Authenticate())
			{
				branches.GET("", r.branchController.List)
				branches.POST("", ownerOnly, r.branchController.Create)
				branches.PUT("/:id", ownerOnly, r.branchController.Update)
				branches.DELETE("/:id", ownerOnly, r.branchController.Delete)
			}
		}

		// Member routes: any authenticated staff
		if r.memberController != nil {
			members := v1.Group("/members")
			members.Use(r.authMiddleware.Authenticate())
			{
				members.GET("", r.memberController.List)
				members.POST("", r.memberController.Register)
				members.PUT("/:id", r.memberController.Update)
				members.DELETE("/:id", ownerOrBranchAdmin, r.memberController.Delete)
			}
		}

		// Plan routes: owner manages the catalog, staff can read it
		if r.planController != nil {
			plans := v1.Group("/plans")
			plans.Use(r.authMiddleware.Authenticate())
			{
				plans.GET("", r.planController.List)
				plans.POST("", ownerOnly, r.planController.Create)
				plans.PUT("/:id", ownerOnly, r.planController.Update)
				plans.DELETE("/:id", ownerOnly, r.planController.Delete)
			}
		}

		// Payment and expense routes
		if r.paymentController != nil {
			payments := v1.Group("/payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.GET("", r.paymentController.ListPayments)
				payments.POST("", r.paymentController.RecordPayment)
			}

			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.paymentController.ListExpenses)
				expenses.POST("", ownerOrBranchAdmin, r.paymentController.RecordExpense)
			}
		}

		// Attendance routes
		if r.attendanceController != nil {
			attendance := v1.Group("/attendance")
			attendance.Use(r.authMiddleware.Authenticate())
			{
				attendance.GET("", r.attendanceController.List)
				attendance.POST("/check-in", r.attendanceController.CheckIn)
			}
		}

		// Operator routes: owner manages staff accounts
		if r.operatorController != nil {
			operators := v1.Group("/operators")
			operators.Use(r.authMiddleware.Authenticate(), ownerOnly)
			{
				operators.GET("", r.operatorController.List)
				operators.POST("", r.operatorController.Create)
				operators.DELETE("/:id", r.operatorController.Delete)
			}
		}

		// Enquiry routes
		if r.enquiryController != nil {
			enquiries := v1.Group("/enquiries")
			enquiries.Use(r.authMiddleware.Authenticate())
			{
				enquiries.GET("", r.enquiryController.List)
				enquiries.POST("", r.enquiryController.Create)
				enquiries.PUT("/:id/status", r.enquiryController.UpdateStatus)
			}
		}

		// Dashboard routes
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/gym", ownerOnly, r.dashboardController.GetGymDashboard)
				dashboard.GET("/branch", r.dashboardController.GetBranchDashboard)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
