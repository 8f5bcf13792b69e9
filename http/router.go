package http

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"loan-optimizer/metrics"
	"loan-optimizer/service"
)

// RouterDeps are the collaborators the API is built from. Limiter and
// Metrics are optional.
type RouterDeps struct {
	Loans          *service.LoanService
	Advisor        *service.AdvisorService
	Limiter        *RateLimiter
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)
	r.Use(RequestID(), AccessLog(logger))
	if deps.Metrics != nil {
		r.Use(Metrics(deps.Metrics))
	}
	r.Use(Recovery(logger), cors.New(corsConfig(deps.AllowedOrigins)))

	loans := NewLoanHandler(deps.Loans, deps.Advisor)
	advisor := NewAdvisorHandler(deps.Advisor)

	r.GET("/", Root)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.GET("/health", Health)
	api.GET("/sample-loans", SampleLoans)
	api.POST("/calculate-emi", loans.CalculateEMI)
	api.POST("/calculate-prepayment", loans.CalculatePrepayment)
	api.POST("/amortization-schedule", loans.AmortizationSchedule)

	limited := api.Group("")
	if deps.Limiter != nil {
		limited.Use(RateLimitMiddleware(deps.Limiter))
	}
	limited.POST("/compare-loans", loans.CompareLoans)
	limited.POST("/ai-advisor", advisor.Recommend)
	limited.POST("/ai-explain-term", advisor.ExplainTerm)
	limited.POST("/ai-strategy", advisor.Strategy)
	limited.POST("/ai-chat", advisor.Chat)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
