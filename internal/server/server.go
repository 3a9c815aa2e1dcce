package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/insights"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/report"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/sync"
)

type Server struct {
	router   *gin.Engine
	db       *database.DB
	engine   *sync.Engine
	reporter *report.Reporter
	insights *insights.Builder
}

// NewServer creates a new server instance
func NewServer(db *database.DB, engine *sync.Engine, builder *insights.Builder) *Server {
	router := gin.Default()

	server := &Server{
		router:   router,
		db:       db,
		engine:   engine,
		reporter: report.NewReporter(db),
		insights: builder,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/status", s.syncStatus)
		api.POST("/sync", s.runSync)
		api.GET("/analytics", s.analytics)
		api.GET("/insights/:kind", s.getInsights)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check database health
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "trooba",
		"version": "0.1.0",
	})
}

// syncStatus reports the combined ledger and live-count summary.
func (s *Server) syncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.Ledger().Summary())
}

// runSync triggers a full store sync. The engine folds every failure into
// the result, so this always answers 200 with the structured outcome.
func (s *Server) runSync(c *gin.Context) {
	result := s.engine.Fetch(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

// analytics serves the aggregate dashboard numbers. Each section degrades
// independently: a failed query becomes an error placeholder instead of
// failing the whole response.
func (s *Server) analytics(c *gin.Context) {
	if summary := s.engine.Ledger().Summary(); !summary.HasData {
		c.JSON(http.StatusOK, gin.H{"has_data": false, "error": summary.Error})
		return
	}

	response := gin.H{"has_data": true}

	if a, err := s.reporter.Analytics(); err != nil {
		response["analytics"] = gin.H{"error": err.Error()}
	} else {
		response["analytics"] = a
	}

	if daily, err := s.reporter.DailyOrderPerformance(30); err != nil {
		response["daily_performance"] = gin.H{"error": err.Error()}
	} else {
		response["daily_performance"] = daily
	}

	if categories, err := s.reporter.CategoryPerformance(); err != nil {
		response["category_performance"] = gin.H{"error": err.Error()}
	} else {
		response["category_performance"] = categories
	}

	if inventory, err := s.reporter.InventorySummary(); err != nil {
		response["inventory_summary"] = gin.H{"error": err.Error()}
	} else {
		response["inventory_summary"] = inventory
	}

	c.JSON(http.StatusOK, response)
}

// getInsights serves the cached narrative summary for the kind, or
// regenerates it when ?refresh=true.
func (s *Server) getInsights(c *gin.Context) {
	kind := c.Param("kind")
	if kind != insights.KindSales && kind != insights.KindInventory {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown insights kind"})
		return
	}

	if c.Query("refresh") != "true" {
		if cached, ok := s.insights.LoadCached(kind); ok {
			c.JSON(http.StatusOK, gin.H{"kind": kind, "insights": cached, "cached": true})
			return
		}
	}

	text, err := s.insights.Generate(c.Request.Context(), kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"kind": kind, "insights": text, "cached": false})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
