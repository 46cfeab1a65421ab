package server

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"delivery-backend/internal/deliveries"
	"delivery-backend/internal/shared/config"
	"delivery-backend/internal/shared/metrics"
	"delivery-backend/internal/shared/server/middleware"
	"delivery-backend/internal/shared/server/respond"
)

//go:embed web/index.html
var webFiles embed.FS

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, handler *deliveries.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		page, err := webFiles.ReadFile("web/index.html")
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal", "form unavailable", nil)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	handler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
