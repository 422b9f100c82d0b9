// Package httpapi wires the gin router, middleware, and handlers for the
// student attendance API.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studentportal/internal/auth"
	"studentportal/internal/config"
	"studentportal/internal/store"
	"studentportal/internal/student"
)

// Server holds the handler dependencies.
type Server struct {
	cfg config.App
	svc *student.Service
	db  *store.DB
}

// New creates a server. db may be nil when the store is unreachable at boot;
// /healthz reports it.
func New(cfg config.App, svc *student.Service, db *store.DB) *Server {
	return &Server{cfg: cfg, svc: svc, db: db}
}

// Router builds the gin engine with the full middleware chain and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(corsMiddleware())
	r.Use(securityHeaders())
	r.Use(requestMetrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", s.healthz)

	api := r.Group("/api")
	api.POST("/login", s.login)
	api.POST("/forgot-pin", s.forgotPin)
	// Served without a token so profile photo URLs work in <img> tags.
	// Any caller who knows a roll can fetch that student's photo.
	api.GET("/photo/:roll", s.photo)

	protected := api.Group("", auth.StudentAuth(s.cfg.JWTSigningKey))
	protected.GET("/profile", s.profile)
	protected.GET("/attendance", s.attendance)

	return r
}

func (s *Server) healthz(c *gin.Context) {
	dbHealthy := s.db.Healthy(c.Request.Context())
	status := http.StatusOK
	if !dbHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": "ok", "db": dbHealthy})
}

// CORS middleware for browser requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Security headers middleware
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
