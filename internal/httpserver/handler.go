package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	blobHTTP "lifeplanner/internal/blob/delivery/http"
	"lifeplanner/internal/model"
	prefillHTTP "lifeplanner/internal/prefill/delivery/http"
	taskHTTP "lifeplanner/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.staticDir != "" {
		srv.gin.Static("/static", srv.staticDir)
	}
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.middleware)
	srv.l.Infof(ctx, "Task domain registered")

	if srv.prefillHandler != nil {
		prefillHTTP.RegisterRoutes(api, srv.prefillHandler, srv.middleware)
		srv.l.Infof(ctx, "Prefill domain registered")
	}

	if srv.attachmentHandler != nil {
		blobHTTP.RegisterRoutes(api, srv.attachmentHandler, srv.middleware)
		srv.l.Infof(ctx, "Attachment upload registered")
	}
}
