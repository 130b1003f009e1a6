package server

import (
	"github.com/ariebrainware/chiro-directory/config"
	"github.com/ariebrainware/chiro-directory/endpoint"
	"github.com/ariebrainware/chiro-directory/middleware"
	"github.com/ariebrainware/chiro-directory/monitoring"
	"github.com/ariebrainware/chiro-directory/view"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter builds the gin engine serving the directory pages, the JSON API and operational endpoints.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	monitoring.Init()

	router := gin.New()
	router.SetHTMLTemplate(view.MustTemplates())
	router.Use(
		gin.Recovery(),
		middleware.EndpointCallLogger(),
		middleware.PrometheusMetrics(),
		middleware.SentryMiddleware(),
		middleware.ErrorReporter(),
		middleware.DatabaseMiddleware(db),
	)

	formSubmitLimit := middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:     cfg.SubmitRateLimit,
		Window:    cfg.SubmitRateWindow,
		OnLimited: endpoint.SubmitRateLimited,
	})
	apiSubmitLimit := middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.SubmitRateLimit,
		Window: cfg.SubmitRateWindow,
	})

	router.GET("/", endpoint.Home)
	router.GET("/chiropractors", endpoint.ListChiropractors)
	router.GET("/chiropractors/:id", endpoint.GetChiropractorProfile)
	router.GET("/submit", endpoint.SubmitForm)
	router.POST("/submit", formSubmitLimit, endpoint.SubmitChiropractor)

	api := router.Group("/api")
	api.Use(middleware.CORSMiddleware())
	{
		api.GET("/chiropractors", endpoint.ListChiropractorsAPI)
		api.GET("/chiropractors/:id", endpoint.GetChiropractorAPI)
		api.POST("/chiropractors", apiSubmitLimit, endpoint.CreateChiropractorAPI)
		api.OPTIONS("/chiropractors", func(c *gin.Context) {})
		api.OPTIONS("/chiropractors/:id", func(c *gin.Context) {})
	}

	router.GET("/healthz", endpoint.Healthz)
	router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	router.NoRoute(endpoint.NotFound)

	return router
}
