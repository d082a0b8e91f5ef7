// Package server hosts the web shell around the cleaning pipeline: upload,
// progress streaming, preview and download of the consolidated workbook.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Config holds the serve-mode settings.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string
	// MaxUploadBytes caps the size of an uploaded workbook.
	MaxUploadBytes int64
	// OutputFilename is the download name of the cleaned workbook.
	OutputFilename string
	// DownloadTTL is how long a finished result stays downloadable.
	DownloadTTL time.Duration
}

// Server is the HTTP front end. One pipeline run happens per upload; the
// only state kept between requests is the short-lived download store.
type Server struct {
	cfg       Config
	engine    *gin.Engine
	downloads *downloadStore
	log       *logrus.Logger
}

// New builds a Server with its routes registered.
func New(cfg Config) *Server {
	s := &Server{
		cfg:       cfg,
		downloads: newDownloadStore(),
		log:       logrus.New(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())

	engine.GET("/", s.handleIndex)
	engine.POST("/api/clean", s.handleClean)
	engine.POST("/api/clean/stream", s.handleCleanStream)
	engine.GET("/api/clean/download/:token", s.handleDownload)

	s.engine = engine
	return s
}

// Handler exposes the HTTP handler, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	s.log.WithField("addr", s.cfg.ListenAddr).Info("listening")
	return s.engine.Run(s.cfg.ListenAddr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
