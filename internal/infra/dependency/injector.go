// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/application/usecase/event"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/limit"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/email"
	"github.com/expense-tracker/backend/internal/integration/email/templates"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	limitRepo := persistence.NewMonthlyLimitRepository(db)
	eventRepo := persistence.NewEventRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, limitRepo, emailQueueRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create dashboard use case
	statsUseCase := dashboard.NewGetStatsUseCase(dashboardRepo)

	// Create event use cases
	createEventUseCase := event.NewCreateEventUseCase(eventRepo)
	listEventsUseCase := event.NewListEventsUseCase(eventRepo)
	updateEventUseCase := event.NewUpdateEventUseCase(eventRepo)
	deleteEventUseCase := event.NewDeleteEventUseCase(eventRepo)

	// Create limit use cases
	setLimitUseCase := limit.NewSetLimitUseCase(limitRepo, categoryRepo)
	listLimitsUseCase := limit.NewListLimitsUseCase(limitRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	dashboardController := controller.NewDashboardController(statsUseCase)

	eventController := controller.NewEventController(
		createEventUseCase,
		listEventsUseCase,
		updateEventUseCase,
		deleteEventUseCase,
	)

	limitController := controller.NewLimitController(setLimitUseCase, listLimitsUseCase)

	// Create middleware
	// Rate limiting is disabled for E2E/test environments to prevent flaky tests
	rateLimitEnabled := cfg.RateLimit.Enabled
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		rateLimitEnabled = false
	}
	loginRateLimiter := middleware.NewRateLimiterWithConfig(redisClient, rateLimitEnabled, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		categoryController,
		dashboardController,
		eventController,
		limitController,
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
