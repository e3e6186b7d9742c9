package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()
	setupLogging(cfg.IsProduction, cfg.LogLevel)
	logInfo("Starting Forca in %s mode", envName(cfg.IsProduction))
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	bank, err := cfg.loadWordBank()
	if err != nil {
		logFatal("Failed to load words: %v", err)
	}
	logInfo("Loaded %d words", bank.Len())

	app := newApp(cfg, bank, nil)

	assetRoot := "."
	if cfg.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		assetRoot = "dist"
	} else {
		logInfo("Serving development assets from source directories")
	}
	router := app.setupRouter(assetRoot)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.runSessionSweeper(ctx)

	startServer(router, cfg.Port)
}

// setupRouter wires middleware, templates and routes. Templates and static
// files are read from assetRoot.
func (app *App) setupRouter(assetRoot string) *gin.Engine {
	router := gin.Default()

	router.Use(gzipMiddleware())

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(app.cacheHeadersMiddleware())
	router.Use(requestIDMiddleware())

	router.LoadHTMLGlob(filepath.Join(assetRoot, "templates", "*.html"))
	router.Static("/static", filepath.Join(assetRoot, "static"))

	limited := app.rateLimitMiddleware()

	router.GET(RouteHome, app.homeHandler)
	router.GET(RouteGameState, app.gameStateHandler)
	router.POST(RouteGuess, limited, app.guessHandler)
	router.POST(RouteRestart, limited, app.restartHandler)

	router.GET(RouteAPIState, app.apiStateHandler)
	router.POST(RouteAPIGuess, limited, app.apiGuessHandler)
	router.POST(RouteAPIRestart, limited, app.apiRestartHandler)

	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

func startServer(router *gin.Engine, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
