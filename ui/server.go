package ui

import (
	"log"

	"github.com/gin-gonic/gin"

	"gobayes/app"
)

// Server hosts the HTTP API over the analysis service
type Server struct {
	service *app.AnalysisService
	engine  *gin.Engine
}

// NewServer creates the API server and registers routes
func NewServer(service *app.AnalysisService, mode string) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	s := &Server{service: service, engine: engine}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.POST("/analyses", s.handleCreateAnalysis)
		api.GET("/analyses", s.handleListAnalyses)
		api.GET("/analyses/:id", s.handleGetAnalysis)
		api.POST("/analyses/:id/updates", s.handleUpdateAnalysis)
		api.GET("/analyses/:id/summary", s.handleSummary)
		api.GET("/analyses/:id/report", s.handleReport)
	}
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// Run starts the server on the given port
func (s *Server) Run(port string) error {
	log.Printf("[Server] Listening on :%s", port)
	return s.engine.Run(":" + port)
}

// Engine exposes the router for httptest
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
