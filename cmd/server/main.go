package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/963krob/event-business-ad-optimizer/internal/api/handlers"
	"github.com/963krob/event-business-ad-optimizer/internal/api/middleware"
	"github.com/963krob/event-business-ad-optimizer/internal/config"
	"github.com/963krob/event-business-ad-optimizer/internal/logging"
	"github.com/963krob/event-business-ad-optimizer/internal/metrics"
	"github.com/963krob/event-business-ad-optimizer/internal/store"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	port := flag.String("port", "", "listen port override")
	scenarioDir := flag.String("scenarios", "", "scenario directory override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	openBrowser := flag.Bool("open", false, "open the form in the default browser on startup")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != "" {
		conf.Server.Port = *port
	}
	if *scenarioDir != "" {
		conf.Store.Dir = *scenarioDir
	}
	if *logLevel != "" {
		conf.Logging.Level = *logLevel
	}
	if *openBrowser {
		conf.Server.OpenBrowser = true
	}

	logger, err := logging.New(conf.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	st, err := store.New(conf.Store.Dir)
	if err != nil {
		logger.Fatal("failed to open scenario store",
			zap.String("dir", conf.Store.Dir),
			zap.Error(err),
		)
	}
	logger.Info("scenario store ready", zap.String("dir", st.Dir()))

	if conf.Logging.Format == "json" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	projectionHandler := handlers.NewProjectionHandler(metrics.New(), logger)
	scenarioHandler := handlers.NewScenarioHandler(st, logger)
	parameterHandler := handlers.NewParameterHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/projections", projectionHandler.RunProjection)
		api.POST("/projections/compare", projectionHandler.Compare)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.POST("/scenarios", scenarioHandler.SaveScenario)
		api.GET("/scenarios/:name", scenarioHandler.GetScenario)
		api.DELETE("/scenarios/:name", scenarioHandler.DeleteScenario)
		api.GET("/scenarios/:name/export", scenarioHandler.ExportScenario)

		api.GET("/parameters", parameterHandler.ListParameters)
		api.GET("/defaults", parameterHandler.GetDefaults)
	}

	serveForm(router, conf.Server.StaticDir, logger)

	addr := fmt.Sprintf(":%s", conf.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", addr), zap.Error(err))
	}
	url := fmt.Sprintf("http://localhost:%s", conf.Server.Port)

	logger.Info("starting server",
		zap.String("addr", listener.Addr().String()),
		zap.String("url", url),
	)

	if conf.Server.OpenBrowser {
		go openURL(url, logger)
	}

	if err := http.Serve(listener, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// serveForm mounts the browser form on all non-API routes: a static
// directory when configured, otherwise the embedded copy.
func serveForm(router *gin.Engine, staticDir string, logger *zap.Logger) {
	var fileServer http.Handler
	if staticDir != "" {
		if _, err := os.Stat(staticDir); err == nil {
			fileServer = http.FileServer(http.Dir(staticDir))
			logger.Info("serving form from directory", zap.String("dir", staticDir))
		} else {
			logger.Warn("static directory not found, falling back to embedded form",
				zap.String("dir", staticDir),
			)
		}
	}
	if fileServer == nil {
		sub, err := fs.Sub(staticFiles, "static")
		if err != nil {
			logger.Fatal("failed to prepare embedded form", zap.Error(err))
		}
		fileServer = http.FileServer(http.FS(sub))
	}

	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if len(path) >= 4 && path[:4] == "/api" {
			c.JSON(404, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

func openURL(url string, logger *zap.Logger) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		logger.Warn("failed to open browser", zap.String("url", url), zap.Error(err))
	}
}
