package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EdukronCodes/mcp-server-box/internal/invoices"
)

// Server holds the state for the REST API server.
type Server struct {
	svc    *invoices.Service
	logger *slog.Logger
	router *gin.Engine
}

// New creates a new Server instance.
func New(svc *invoices.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	r := gin.Default()
	s := &Server{
		svc:    svc,
		logger: logger,
		router: r,
	}
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(corsAllowAll())

	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	api.GET("/invoices", s.handleAllInvoices)
	api.GET("/invoices/summary", s.handleSummary)
	api.GET("/invoices/search", s.handleSearch)
	api.GET("/invoices/list/available", s.handleListAvailable)
	api.GET("/invoices/:file_name", s.handleInvoiceDetails)
	api.POST("/invoices/export", s.handleExport)
}

func corsAllowAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "*")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Health check
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Invoice Processor API"})
}
