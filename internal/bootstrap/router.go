package bootstrap

import (
	"net/http"
	"slices"
	"time"

	httpapi "github.com/GoSim-25-26J-441/student-performance-web/internal/api/http"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/service"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/session"
	webhttp "github.com/GoSim-25-26J-441/student-performance-web/internal/web/http"
	"github.com/GoSim-25-26J-441/student-performance-web/internal/web/static"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Predictions    *service.PredictionService
	Redis          httpapi.Pinger
	DB             httpapi.Pinger
	Session        session.Options
	AllowedOrigins []string
	Logger         *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	r.StaticFS("/static", http.FS(static.FS))

	pages := r.Group("/")
	pages.Use(session.Middleware(dep.Session))
	webhttp.New(dep.Predictions, dep.Logger).Register(pages)

	api := r.Group("/api/v1")
	api.Use(cors.New(corsConfig(dep.AllowedOrigins)))
	httpapi.NewPredictionsHandler(dep.Predictions, dep.Logger).RegisterRoutes(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
