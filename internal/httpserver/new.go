package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	blobHTTP "lifeplanner/internal/blob/delivery/http"
	"lifeplanner/internal/middleware"
	prefillHTTP "lifeplanner/internal/prefill/delivery/http"
	taskHTTP "lifeplanner/internal/task/delivery/http"
	"lifeplanner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	middleware        middleware.Middleware
	taskHandler       taskHTTP.Handler
	prefillHandler    prefillHTTP.Handler
	attachmentHandler blobHTTP.Handler

	// Directory served under /static for attachment downloads.
	staticDir string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware        middleware.Middleware
	TaskHandler       taskHTTP.Handler
	PrefillHandler    prefillHTTP.Handler
	AttachmentHandler blobHTTP.Handler
	StaticDir         string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		middleware:        cfg.Middleware,
		taskHandler:       cfg.TaskHandler,
		prefillHandler:    cfg.PrefillHandler,
		attachmentHandler: cfg.AttachmentHandler,
		staticDir:         cfg.StaticDir,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
