// Package api exposes the reasoning engine over HTTP. The engine is
// not safe for concurrent use, so every handler that touches it runs
// under the server mutex.
package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"traiteur/internal/engine"
	"traiteur/internal/models"
	"traiteur/internal/monitoring"
)

// Config tunes the HTTP server.
type Config struct {
	Addr      string `yaml:"addr"`
	JWTSecret string `yaml:"jwt_secret"`
}

// Server wires the engine behind a Gin router.
type Server struct {
	router  *gin.Engine
	engine  *engine.Engine
	monitor *monitoring.Monitor
	metrics *monitoring.Metrics
	hub     *hub
	cfg     Config
	mu      sync.Mutex
}

// NewServer builds the router and registers all routes.
func NewServer(eng *engine.Engine, metrics *monitoring.Metrics, cfg Config) *Server {
	s := &Server{
		router:  gin.Default(),
		engine:  eng,
		monitor: monitoring.NewMonitor(),
		metrics: metrics,
		hub:     newHub(),
		cfg:     cfg,
	}
	eng.Subscribe(s.hub.broadcast)
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(
			promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))
	}
	s.router.GET("/ws/learning", s.handleLearningFeed)

	api := s.router.Group("/api/v1")
	if s.cfg.JWTSecret != "" {
		api.Use(authMiddleware([]byte(s.cfg.JWTSecret)))
	}
	{
		api.POST("/proposals", s.handlePropose)
		api.POST("/feedback", s.handleFeedback)
		api.POST("/cases/:id/feedback", s.handleCaseFeedback)
		api.GET("/cases", s.handleListCases)
		api.GET("/cases/:id", s.handleGetCase)
		api.GET("/stats", s.handleStats)
		api.GET("/weights", s.handleWeights)
		api.GET("/learning", s.handleLearning)
	}
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the configured address.
func (s *Server) Run() error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePropose(c *gin.Context) {
	var req models.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	result, err := s.engine.Propose(&req)
	s.mu.Unlock()

	if err != nil {
		var noProposals *engine.NoProposalsError
		if errors.As(err, &noProposals) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "no valid proposals",
				"reasons": noProposals.Reasons,
			})
			return
		}
		if errors.Is(err, engine.ErrNoProposals) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.monitor.Record("proposals_served", s.monitorCount("proposals_served")+len(result.Proposals))
	c.JSON(http.StatusOK, result)
}

// feedbackBody is the payload for rating a served menu.
type feedbackBody struct {
	Request  models.Request  `json:"request" binding:"required"`
	Menu     models.Menu     `json:"menu" binding:"required"`
	Feedback models.Feedback `json:"feedback" binding:"required"`
}

func (s *Server) handleFeedback(c *gin.Context) {
	var body feedbackBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	result, err := s.engine.SubmitFeedback(&body.Request, &body.Menu, &body.Feedback)
	s.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.monitor.Record("feedback_received", s.monitorCount("feedback_received")+1)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleCaseFeedback(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	updated, err := s.engine.UpdateCaseFeedback(c.Param("id"), &fb)
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, engine.ErrUnknownCase) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleListCases(c *gin.Context) {
	s.mu.Lock()
	cases := s.engine.Cases()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"cases": cases, "count": len(cases)})
}

func (s *Server) handleGetCase(c *gin.Context) {
	s.mu.Lock()
	stored, err := s.engine.Case(c.Param("id"))
	s.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (s *Server) handleStats(c *gin.Context) {
	s.mu.Lock()
	stats := s.engine.CaseStats()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"cases":  stats,
		"server": s.monitor.Snapshot(),
	})
}

func (s *Server) handleWeights(c *gin.Context) {
	s.mu.Lock()
	weights := s.engine.Weights()
	s.mu.Unlock()
	c.JSON(http.StatusOK, weights.Map())
}

func (s *Server) handleLearning(c *gin.Context) {
	s.mu.Lock()
	summary := s.engine.LearningSummary()
	history := s.engine.LearningHistory()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"summary": summary, "history": history})
}

func (s *Server) monitorCount(key string) int {
	if v, ok := s.monitor.Get(key); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return 0
}
