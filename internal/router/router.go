package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glinthive/site-backend/internal/config"
	"github.com/glinthive/site-backend/internal/handler"
	"github.com/glinthive/site-backend/internal/middleware"
	"github.com/glinthive/site-backend/internal/response"
	"github.com/rs/zerolog"
)

// uploadsMaxAge is the Cache-Control lifetime for uploaded images (1 year).
// Upload filenames are random, so a URL never changes content.
const uploadsMaxAge = 31536000

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Blog       *handler.BlogHandler
	Submission *handler.SubmissionHandler
	Dashboard  *handler.DashboardHandler
	Media      *handler.MediaHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	verifier middleware.TokenVerifier,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Retry-After"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the logger and every error body can use it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))

	// Images are already compressed.
	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Quality: middleware.DefaultBrotliConfig.Quality,
		Skipper: middleware.SkipPathPrefixes("/uploads"),
	}))

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	// Serve uploaded media files statically with aggressive caching.
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(uploadsMaxAge))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "OK"})
	})

	requireAdmin := middleware.RequireAdmin(verifier)

	api := router.Group("/api")
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	// ─── 1. Public Forms ───────────────────────────────────────────────
	{
		api.POST("/contact", handlers.Submission.SubmitContact)
		api.POST("/advice", handlers.Submission.SubmitAdvice)

		api.GET("/contacts", requireAdmin, middleware.NoStore(), handlers.Submission.ListContacts)
		api.GET("/advices", requireAdmin, middleware.NoStore(), handlers.Submission.ListAdvices)
	}

	// ─── 2. Blog ───────────────────────────────────────────────────────
	blog := api.Group("/blog")
	{
		blog.GET("", handlers.Blog.ListPublished)
		blog.GET("/:slug", handlers.Blog.GetBySlug)

		blog.POST("/create", requireAdmin, handlers.Blog.CreateBlog)
		blog.GET("/id/:id", requireAdmin, middleware.NoStore(), handlers.Blog.GetByID)
		blog.PUT("/:id", requireAdmin, handlers.Blog.UpdateBlog)
		blog.DELETE("/:id", requireAdmin, handlers.Blog.DeleteBlog)
	}

	// ─── 3. Admin ──────────────────────────────────────────────────────
	api.POST("/admin/login", handlers.Auth.AdminLogin)

	adminAPI := api.Group("/admin")
	adminAPI.Use(requireAdmin, middleware.NoStore())
	{
		adminAPI.POST("/create", handlers.Auth.CreateAdmin)
		adminAPI.GET("/me", handlers.Auth.GetAdminProfile)
		adminAPI.PUT("/password", handlers.Auth.ChangePassword)

		adminAPI.GET("/stats", handlers.Dashboard.GetStats)
		adminAPI.GET("/blogs", handlers.Blog.ListAll)
		adminAPI.POST("/media/upload", handlers.Media.UploadMedia)
	}

	// ─── 4. WebSocket (token in query) ─────────────────────────────────
	wsGroup := router.Group("/ws/admin")
	wsGroup.Use(middleware.RequireAdminWS(verifier))
	{
		wsGroup.GET("/inbox", handlers.WS.InboxStream)
	}

	return router
}
