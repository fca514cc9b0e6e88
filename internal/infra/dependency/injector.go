// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/config"
	"github.com/gym-manager/backend/internal/application/usecase/attendance"
	"github.com/gym-manager/backend/internal/application/usecase/auth"
	"github.com/gym-manager/backend/internal/application/usecase/branch"
	"github.com/gym-manager/backend/internal/application/usecase/dashboard"
	"github.com/gym-manager/backend/internal/application/usecase/enquiry"
	"github.com/gym-manager/backend/internal/application/usecase/member"
	"github.com/gym-manager/backend/internal/application/usecase/notification"
	"github.com/gym-manager/backend/internal/application/usecase/operator"
	"github.com/gym-manager/backend/internal/application/usecase/payment"
	"github.com/gym-manager/backend/internal/application/usecase/plan"
	"github.com/gym-manager/backend/internal/infra/server/router"
	"github.com/gym-manager/backend/internal/integration/adapters"
	"github.com/gym-manager/backend/internal/integration/email"
	"github.com/gym-manager/backend/internal/integration/email/templates"
	"github.com/gym-manager/backend/internal/integration/entrypoint/controller"
	"github.com/gym-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/gym-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, healthCheck func() bool) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	gymRepo := persistence.NewGymRepository(db)
	branchRepo := persistence.NewBranchRepository(db)
	memberRepo := persistence.NewMemberRepository(db)
	planRepo := persistence.NewPlanRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	attendanceRepo := persistence.NewAttendanceRepository(db)
	enquiryRepo := persistence.NewEnquiryRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Adapters/services
	tokenStore := adapters.NewRedisTokenStore(redisClient)
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenStore)

	// Auth use cases
	registerOwnerUseCase := auth.NewRegisterOwnerUseCase(userRepo, gymRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUseCase(tokenService)

	// Branch use cases
	createBranchUseCase := branch.NewCreateBranchUseCase(branchRepo)
	listBranchesUseCase := branch.NewListBranchesUseCase(branchRepo)
	updateBranchUseCase := branch.NewUpdateBranchUseCase(branchRepo)
	deleteBranchUseCase := branch.NewDeleteBranchUseCase(branchRepo)

	// Member use cases
	registerMemberUseCase := member.NewRegisterMemberUseCase(memberRepo, branchRepo, planRepo, emailQueueRepo)
	listMembersUseCase := member.NewListMembersUseCase(memberRepo)
	updateMemberUseCase := member.NewUpdateMemberUseCase(memberRepo, branchRepo, planRepo)
	deleteMemberUseCase := member.NewDeleteMemberUseCase(memberRepo)

	// Plan use cases
	createPlanUseCase := plan.NewCreatePlanUseCase(planRepo)
	listPlansUseCase := plan.NewListPlansUseCase(planRepo)
	updatePlanUseCase := plan.NewUpdatePlanUseCase(planRepo)
	deletePlanUseCase := plan.NewDeletePlanUseCase(planRepo)

	// Payment use cases
	recordPaymentUseCase := payment.NewRecordPaymentUseCase(paymentRepo, branchRepo)
	recordExpenseUseCase := payment.NewRecordExpenseUseCase(paymentRepo, branchRepo)
	listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo)
	listExpensesUseCase := payment.NewListExpensesUseCase(paymentRepo)

	// Attendance use cases
	checkInUseCase := attendance.NewCheckInUseCase(attendanceRepo, memberRepo)
	listAttendanceUseCase := attendance.NewListAttendanceUseCase(attendanceRepo)

	// Operator use cases
	createOperatorUseCase := operator.NewCreateOperatorUseCase(userRepo, branchRepo, passwordService)
	listOperatorsUseCase := operator.NewListOperatorsUseCase(userRepo)
	deleteOperatorUseCase := operator.NewDeleteOperatorUseCase(userRepo)

	// Enquiry use cases
	createEnquiryUseCase := enquiry.NewCreateEnquiryUseCase(enquiryRepo)
	listEnquiriesUseCase := enquiry.NewListEnquiriesUseCase(enquiryRepo)
	updateEnquiryStatusUseCase := enquiry.NewUpdateEnquiryStatusUseCase(enquiryRepo)

	// Dashboard use cases
	getGymDashboardUseCase := dashboard.NewGetGymDashboardUseCase(dashboardRepo)
	getBranchDashboardUseCase := dashboard.NewGetBranchDashboardUseCase(dashboardRepo)

	// Notification use case and email worker
	queueExpiryRemindersUseCase := notification.NewQueueExpiryRemindersUseCase(memberRepo, emailQueueRepo)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, queueExpiryRemindersUseCase, email.WorkerConfig{
		PollInterval:     cfg.Email.PollInterval,
		BatchSize:        cfg.Email.BatchSize,
		ReminderInterval: cfg.Email.ReminderInterval,
		Retention:        cfg.Email.Retention,
	})

	// Controllers
	healthController := controller.NewHealthController(healthCheck)
	authController := controller.NewAuthController(registerOwnerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
	branchController := controller.NewBranchController(createBranchUseCase, listBranchesUseCase, updateBranchUseCase, deleteBranchUseCase)
	memberController := controller.NewMemberController(registerMemberUseCase, listMembersUseCase, updateMemberUseCase, deleteMemberUseCase)
	planController := controller.NewPlanController(createPlanUseCase, listPlansUseCase, updatePlanUseCase, deletePlanUseCase)
	paymentController := controller.NewPaymentController(recordPaymentUseCase, recordExpenseUseCase, listPaymentsUseCase, listExpensesUseCase)
	attendanceController := controller.NewAttendanceController(checkInUseCase, listAttendanceUseCase)
	operatorController := controller.NewOperatorController(createOperatorUseCase, listOperatorsUseCase, deleteOperatorUseCase)
	enquiryController := controller.NewEnquiryController(createEnquiryUseCase, listEnquiriesUseCase, updateEnquiryStatusUseCase)
	dashboardController := controller.NewDashboardController(getGymDashboardUseCase, getBranchDashboardUseCase)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		branchController,
		memberController,
		planController,
		paymentController,
		attendanceController,
		operatorController,
		enquiryController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
