package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danvolchok/budget-tracker-web/internal/handlers"
	"github.com/danvolchok/budget-tracker-web/internal/middleware"
)

// RegisterRoutes mounts the middleware chain and every endpoint on the echo
// instance. Handlers receive their services from the app graph.
func RegisterRoutes(e *echo.Echo, app *App) {
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestLogger())
	if len(app.Config.Server.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: app.Config.Server.CORSAllowOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}
	e.Use(middleware.RateLimiterWithConfig(
		app.Config.Security.RateLimitPerSecond,
		app.Config.Security.RateLimitBurst,
	))

	defaultSheet := app.DefaultSheet()

	healthHandler := handlers.NewHealthCheckHandler(app.DB.DB, app.Store)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	docsHandler := handlers.NewDocsHandler()
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/swagger.json", docsHandler.ServeOAS3JSON)

	api := e.Group("/api/v1")

	dashboardHandler := handlers.NewDashboardHandler(app.Dashboard, defaultSheet)
	api.GET("/dashboard", dashboardHandler.GetDashboard)
	api.GET("/transactions", dashboardHandler.ListTransactions)
	api.GET("/sheets", dashboardHandler.ListSheets)

	merchantHandler := handlers.NewMerchantHandler(app.Merchants, app.Metrics, defaultSheet)
	api.GET("/merchants/groups", merchantHandler.GetGroups)
	api.POST("/merchants/session", merchantHandler.StartSession)
	api.GET("/merchants/session", merchantHandler.GetSessionState)
	api.POST("/merchants/apply", merchantHandler.ApplyGroup)
	api.POST("/merchants/flush", merchantHandler.FlushSession)
	api.POST("/merchants/revert", merchantHandler.RevertSession)

	budgetHandler := handlers.NewBudgetHandler(app.Budgets, defaultSheet)
	api.GET("/budgets", budgetHandler.ListBudgets)
	api.GET("/budgets/summary", budgetHandler.GetSummary)
	api.GET("/budgets/:category", budgetHandler.GetBudget)
	api.PUT("/budgets/:category", budgetHandler.UpsertBudget)
	api.DELETE("/budgets/:category", budgetHandler.DeleteBudget)

	settingsHandler := handlers.NewSettingsHandler(app.Settings)
	api.GET("/settings/:key", settingsHandler.GetSetting)
	api.PUT("/settings/:key", settingsHandler.UpdateSetting)
	api.DELETE("/settings/:key", settingsHandler.DeleteSetting)
	api.PUT("/settings/:key/secret", settingsHandler.SealSecret)

	// Demo rows never reach a production spreadsheet; outside development
	// and testing the route itself is absent.
	if app.Config.IsDevelopment() || app.Config.IsTesting() {
		devHandler := handlers.NewDevHandler(app.SampleData, defaultSheet)
		api.POST("/sample-data", devHandler.GenerateSampleData)
	}
}
