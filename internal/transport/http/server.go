package http

import (
	stdhttp "net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/PuntiNugget/Simple-app/internal/config"
	"github.com/PuntiNugget/Simple-app/internal/core"
)

// NewServer builds the HTTP server: health check, the WebSocket endpoint,
// and the static chat page when a directory is configured.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	if cfg.StaticDir != "" {
		router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
