package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/config"
	"helpdesk/internal/mailer"
	"helpdesk/internal/metrics"
	"helpdesk/internal/middleware"
	"helpdesk/internal/modules/health"
	"helpdesk/internal/modules/submission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	relay := mailer.New(&cfg.Email)

	// Startup diagnostic only: a failed verify is logged and the server
	// keeps serving.
	go func() {
		if err := relay.Verify(); err != nil {
			log.Printf("mailer_verify_failed error=%v", err)
		}
	}()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	submissionService := submission.NewService(relay)
	submissionHandler := submission.NewHandler(submissionService)
	healthHandler := health.NewHandler(cfg.App.Name, cfg.App.Version)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		metrics.Middleware(),
	)

	api := r.Group("/api")
	submissionHandler.RegisterRoutes(api)

	healthHandler.RegisterRoutes(&r.RouterGroup)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	addr := cfg.App.Host + ":" + cfg.App.Port
	log.Printf("server_starting addr=%s email_enabled=%t", addr, cfg.Email.Enabled)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
