package http

import (
	"log/slog"
	"net/http"

	"github.com/gdugdh24/mentorship-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/mentorship-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	matchHandler   *handler.MatchHandler
	authMiddleware *middleware.AuthMiddleware
	observer       middleware.HTTPObserver
	metricsHandler http.Handler
	logger         *slog.Logger
}

// NewRouter wires the HTTP surface. observer and metricsHandler may be nil,
// in which case no metrics are recorded or exposed.
func NewRouter(
	matchHandler *handler.MatchHandler,
	authMiddleware *middleware.AuthMiddleware,
	observer middleware.HTTPObserver,
	metricsHandler http.Handler,
	logger *slog.Logger,
) *Router {
	return &Router{
		matchHandler:   matchHandler,
		authMiddleware: authMiddleware,
		observer:       observer,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	handler.RegisterValidatorTagNames()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(r.logger))
	if r.observer != nil {
		router.Use(middleware.Metrics(r.observer))
	}

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	if r.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.metricsHandler))
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Matching routes, all behind auth
		match := v1.Group("/match")
		match.Use(r.authMiddleware.RequireAuth())
		{
			match.POST("/mentors", r.matchHandler.SearchMentors)
			match.POST("/mentors/count", r.matchHandler.CountMentors)
			match.GET("/career-data", r.matchHandler.CareerData)
			match.GET("/expertise-data", r.matchHandler.ExpertiseData)
			match.POST("/requests", r.matchHandler.CreateRequest)
			match.POST("/responses", r.matchHandler.Respond)
			match.GET("/activity", r.matchHandler.Activity)
		}
	}

	return router
}
