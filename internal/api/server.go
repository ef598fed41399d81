package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/tenxer/meta-ads-gateway/internal/api/handler"
	"github.com/tenxer/meta-ads-gateway/internal/api/handler/router"
	"github.com/tenxer/meta-ads-gateway/internal/config"
	"github.com/tenxer/meta-ads-gateway/internal/mcp"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/authing"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
	"github.com/tenxer/meta-ads-gateway/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	toolService tooling.Service,
	oauthService *authing.OAuthService,
	tokenStore *authing.FileTokenStore,
	mcpServer *mcp.Server,
) (*Server, error) {
	sseHandler := mcpServer.SSEHandler()

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Tools(toolService)...),
		router.WithRoutes(handler.OpenAI(toolService)...),
		router.WithRoutes(handler.Gemini(toolService)...),
		router.WithRoutes(handler.Manifest(config, toolService)...),
		router.WithRoutes(handler.OAuth(oauthService, tokenStore)...),
		router.WithRoutes(
			router.Route{Path: "/mcp/sse", Method: http.MethodGet, Handler: sseHandler},
			router.Route{Path: "/mcp/message", Method: http.MethodPost, Handler: sseHandler},
		),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("HTTP server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("HTTP server failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server shut down")
	return nil
}
