package bootstrap

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	httpapi "github.com/GoSim-25-26J-441/siteproof-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/api/http/middleware"
	dashboardhttp "github.com/GoSim-25-26J-441/siteproof-backend/internal/dashboard/http"
	dashboardservice "github.com/GoSim-25-26J-441/siteproof-backend/internal/dashboard/service"
	projecthttp "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/http"
	projectservice "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/service"
	proofhttp "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/http"
	proofservice "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Storage        *Storage
	Logger         logrus.FieldLogger
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.RequestLogger(dep.Logger),
		middleware.CORS(dep.AllowedOrigins),
		middleware.ErrorHandler(dep.Logger),
	)

	var pinger httpapi.Pinger
	if dep.Storage.DB != nil {
		pinger = dep.Storage.DB
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))

	projectSvc := projectservice.NewProjectService(dep.Storage.Projects, dep.Logger)
	proofSvc := proofservice.NewProofService(dep.Storage.Proofs, dep.Logger)
	dashboardSvc := dashboardservice.NewDashboardService(dep.Storage.Projects, dep.Storage.Proofs)

	projecthttp.New(projectSvc).Register(api)
	proofhttp.New(proofSvc).Register(api)
	dashboardhttp.New(dashboardSvc).Register(api)

	return r
}
