package routers

import (
	"github.com/haierkeys/note-folder-service/internal/app"
	"github.com/haierkeys/note-folder-service/internal/middleware"
	"github.com/haierkeys/note-folder-service/internal/routers/api_router"
	"github.com/haierkeys/note-folder-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// NewMethodLimiters builds the /api token buckets from config.
func NewMethodLimiters(cfg *app.AppConfig) limiter.Face {
	l := limiter.NewMethodLimiter()
	if cfg.IsLimiterEnabled() && cfg.Limiter.Capacity > 0 {
		quantum := cfg.Limiter.Quantum
		if quantum <= 0 {
			quantum = cfg.Limiter.Capacity
		}
		l.AddBuckets(limiter.BucketRule{
			Key:          "/api",
			FillInterval: cfg.GetLimiterFillInterval(),
			Capacity:     cfg.Limiter.Capacity,
			Quantum:      quantum,
		})
	}
	return l
}

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.IsTracerEnabled(), cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(NewMethodLimiters(cfg)))
		api.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
		api.Use(middleware.Metrics())

		// 创建 Handlers（注入 App Container）
		healthHandler := api_router.NewHealthHandler(appContainer)
		folderHandler := api_router.NewFolderHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)

		api.GET("/health", healthHandler.Check)

		auth := middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)

		folders := api.Group("/folders", auth)
		{
			folders.GET("", folderHandler.List)
			folders.POST("", folderHandler.Create)
			folders.GET("/:id", folderHandler.Get)
			folders.PUT("/:id", folderHandler.Update)
			folders.DELETE("/:id", folderHandler.Delete)
		}

		notes := api.Group("/notes", auth)
		{
			notes.GET("", noteHandler.List)
			notes.POST("", noteHandler.Create)
			notes.GET("/:id", noteHandler.Get)
		}
	}

	r.NoRoute(middleware.NoFound())

	return r
}
