package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitahub/internal/app"
	"gitahub/internal/arrows"
	"gitahub/internal/contact"
	"gitahub/internal/logging"
	"gitahub/internal/reader"
	"gitahub/internal/source"
	"gitahub/internal/web"
	"gitahub/pkg/database"
	"gitahub/pkg/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("servers stopped")
}

func run(cfg utils.Config, logger *zap.Logger) error {
	dbCfg := database.Config{Path: cfg.DBPath}
	db, err := database.Open(dbCfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the dataset before any route is wired so every view sees a
	// settled state.
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	state := app.Load(loadCtx, source.New(cfg.DataPath), logger)
	cancel()

	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logging.RequestID(), logging.Requests(logger), gin.Recovery())
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := arrows.NewHub()
	router.GET("/ws/arrows", arrows.WSHandler(hub, logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if !state.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"error":  state.Message(),
				"source": state.Source,
			})
			return
		}
		if err := db.PingContext(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"db_error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"db":     "ok",
			"verses": state.Store.Len(),
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"db":         dbCfg.Path,
			"source":     state.Source,
			"loaded_at":  state.LoadedAt,
			"stats":      state.Store.Stats(),
			"ws_clients": hub.Count(),
		})
	})

	api := router.Group("/api")
	reader.NewHandler(state).RegisterRoutes(api)

	var fwd contact.Forwarder
	if cfg.Contact.ForwardURL != "" {
		fwd = contact.NewHTTPForwarder(cfg.Contact.ForwardURL, cfg.Contact.ForwardTimeout)
	}
	contact.NewHandler(contact.NewRepo(db), fwd, logger).RegisterRoutes(api)

	if err := web.NewHandler(state, cfg.Arrows.Enabled).Register(router); err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Arrows.Enabled {
		loop := arrows.NewLoop(cfg.Arrows.Interval, hub)
		g.Go(func() error {
			return loop.Run(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			loop.Stop()
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", cfg.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		hub.CloseAll()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown error", zap.Error(err))
		}
		return nil
	})

	return g.Wait()
}
