package server

import (
	"net/http"
	"time"

	"studio-backoffice/internal/adsapi"
	"studio-backoffice/internal/config"
	"studio-backoffice/internal/handlers"
	"studio-backoffice/internal/middleware"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	leadRateLimit  = 5
	leadRateWindow = time.Minute
)

func NewRouter(cfg *config.Config, store *storage.Store, log *zap.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	sessStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("backoffice_session", sessStore))

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	var applier adsapi.Applier = adsapi.Noop{}
	if cfg.AdsAPIURL != "" {
		applier = adsapi.New(cfg.AdsAPIURL)
	}

	authH := handlers.NewAuthHandler(store, log)
	leadH := handlers.NewLeadHandler(store, log)
	taskH := handlers.NewTaskHandler(store, log)
	projectH := handlers.NewProjectHandler(store, log)
	recH := handlers.NewRecommendationHandler(store, applier, cfg.AutoApplyEnabled, log)
	invoiceH := handlers.NewInvoiceHandler(store, log)
	contentH := handlers.NewContentHandler(store, log)
	reportH := handlers.NewReportHandler(store, log)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// public surface: the quote form and the published content feeds
	r.POST("/api/leads",
		middleware.RateLimit(redisClient, leadRateLimit, leadRateWindow),
		leadH.Submit,
	)
	r.GET("/api/portfolio", contentH.ListPortfolio)
	r.GET("/api/blog", contentH.ListBlogPosts)
	r.GET("/api/blog/:slug", contentH.GetBlogPost)

	r.POST("/api/auth/login", authH.Login)
	r.POST("/api/auth/logout", authH.Logout)
	r.GET("/api/auth/me", middleware.RequireAuth(store), authH.Me)

	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuth(store))

	admin.GET("/leads", leadH.List)
	admin.GET("/leads/:id", leadH.Get)
	admin.PATCH("/leads/:id/status", leadH.UpdateStatus)
	admin.DELETE("/leads/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		leadH.Archive,
	)

	admin.GET("/tasks", taskH.List)
	admin.GET("/tasks/:id", taskH.Get)
	admin.POST("/tasks",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		taskH.Create,
	)
	admin.PATCH("/tasks/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		taskH.Update,
	)
	admin.POST("/tasks/:id/claim", taskH.Claim)
	admin.POST("/tasks/:id/release", taskH.Release)
	admin.PATCH("/tasks/:id/status", taskH.UpdateStatus)

	admin.GET("/projects", projectH.List)
	admin.GET("/projects/:id", projectH.Get)
	admin.POST("/projects",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		projectH.Create,
	)
	admin.POST("/projects/:id/claim", projectH.Claim)
	admin.POST("/projects/:id/release", projectH.Release)
	admin.PATCH("/projects/:id/status",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		projectH.UpdateStatus,
	)
	admin.POST("/projects/:id/payment",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		projectH.RecordPayment,
	)

	admin.GET("/recommendations", recH.List)
	admin.GET("/recommendations/:id", recH.Get)
	admin.POST("/recommendations/:id/approve",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		recH.Approve,
	)
	admin.POST("/recommendations/:id/reject",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		recH.Reject,
	)

	admin.GET("/invoices", invoiceH.List)
	admin.POST("/invoices",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		invoiceH.Create,
	)
	admin.PATCH("/invoices/:id/status",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		invoiceH.UpdateStatus,
	)
	admin.POST("/invoices/:id/payment",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		invoiceH.RecordPayment,
	)

	admin.POST("/portfolio", contentH.CreatePortfolioItem)
	admin.PATCH("/portfolio/:id", contentH.UpdatePortfolioItem)
	admin.DELETE("/portfolio/:id", contentH.DeletePortfolioItem)
	admin.PUT("/portfolio/reorder", contentH.ReorderPortfolio)

	admin.POST("/blog", contentH.CreateBlogPost)
	admin.PATCH("/blog/:id", contentH.UpdateBlogPost)
	admin.DELETE("/blog/:id", contentH.DeleteBlogPost)
	admin.PUT("/blog/reorder", contentH.ReorderBlogPosts)

	admin.GET("/reports/overview", reportH.Overview)
	admin.GET("/audit",
		middleware.RequireRole(models.RoleAdmin),
		reportH.AuditTrail,
	)

	// automation surface, authenticated by service token instead of session
	automation := r.Group("/api/automation")
	automation.Use(middleware.RequireServiceToken(cfg.ServiceTokenSecret))

	automation.POST("/recommendations", recH.SubmitFromAnalyzer)

	return r
}
