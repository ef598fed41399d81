package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/metaclient"
	"github.com/tenxer/meta-ads-gateway/internal/api"
	"github.com/tenxer/meta-ads-gateway/internal/config"
	"github.com/tenxer/meta-ads-gateway/internal/mcp"
	"github.com/tenxer/meta-ads-gateway/internal/scheduler"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/authing"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenStore := authing.NewFileTokenStore(cfg.TokenStore.Path)

	metaClient := metaclient.NewClient(cfg)

	oauthService := authing.NewOAuthService(cfg, metaClient, tokenStore)
	loginTools := authing.NewLoginTools(tokenStore, oauthService)

	toolService := tooling.NewService(metaClient, tokenStore, loginTools)

	tokenSweepService := scheduler.NewTokenSweepService(tokenStore, cfg)
	if err := tokenSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start token sweep scheduler")
	}

	mcpServer := mcp.NewServer(cfg, toolService)

	switch cfg.Server.Mode {
	case "mcp":
		// stdio only; logs go to stderr so stdout stays a clean MCP channel
		logrus.Info("Starting MCP server on stdio")
		if err := mcpServer.ServeStdio(); err != nil {
			logrus.Fatal(err)
		}

	case "api":
		runAPI(ctx, cfg, toolService, oauthService, tokenStore, mcpServer)

	case "both":
		go func() {
			logrus.Info("Starting MCP server on stdio")
			if err := mcpServer.ServeStdio(); err != nil {
				logrus.WithError(err).Error("MCP stdio server stopped")
			}
		}()
		runAPI(ctx, cfg, toolService, oauthService, tokenStore, mcpServer)

	default:
		logrus.Fatalf("Unknown SERVER_MODE %q (expected mcp, api or both)", cfg.Server.Mode)
	}
}

func runAPI(
	ctx context.Context,
	cfg *config.Config,
	toolService tooling.Service,
	oauthService *authing.OAuthService,
	tokenStore *authing.FileTokenStore,
	mcpServer *mcp.Server,
) {
	server, err := api.New(cfg, toolService, oauthService, tokenStore, mcpServer)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
