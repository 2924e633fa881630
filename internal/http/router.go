package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/something-core/internal/http/handlers"
	httpMW "github.com/yungbote/something-core/internal/http/middleware"
	"github.com/yungbote/something-core/internal/observability"
	"github.com/yungbote/something-core/internal/platform/logger"
)

type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	Log            *logger.Logger
	Metrics        *observability.Metrics

	ThingHandler  *httpH.ThingHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.ThingHandler != nil {
			api.POST("/things", cfg.ThingHandler.Create)
			api.GET("/things", cfg.ThingHandler.List)
			api.GET("/things/:id", cfg.ThingHandler.Get)
			api.PUT("/things", cfg.ThingHandler.Update)
			api.DELETE("/things/:id", cfg.ThingHandler.Delete)
		}
	}

	return r
}
