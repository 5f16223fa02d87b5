package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexdata/portfolio/internal/config"
	"github.com/alexdata/portfolio/internal/logger"
	"github.com/alexdata/portfolio/internal/monitoring"
	"github.com/alexdata/portfolio/internal/security"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	metrics *monitoring.Metrics
	limiter *security.RateLimiter
}

// New wires the router. It does not listen; see Run.
func New(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.Mode)

	tmpl, err := Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		engine:  gin.New(),
		metrics: monitoring.New(),
		limiter: security.NewRateLimiter(cfg.Security.RateLimit, cfg.Security.RateWindow),
	}

	r := s.engine
	r.Use(requestID(), recovery(), requestLogger(), security.Secure(), s.metrics.Middleware(), s.metrics.PageViews())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(staticFS))
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.FileFromFS("favicon.svg", http.FS(staticFS))
	})

	r.GET("/", s.index)
	r.GET("/contact-form", s.contactForm)
	r.GET("/work-content", s.workContent)
	r.GET("/education-content", s.educationContent)

	ui := r.Group("/ui", s.limiter.Middleware())
	{
		ui.GET("/projects", s.projects)
		ui.POST("/theme", s.toggleTheme)
		ui.POST("/menu", s.toggleMenu)
		ui.POST("/navigate", s.navigate)
		ui.GET("/back-to-top", s.backToTop)
	}

	api := r.Group("/api", s.limiter.Middleware())
	{
		api.GET("/projects", s.apiProjects)
		api.GET("/charts/skills", s.apiSkillChart)
		api.GET("/charts/impact", s.apiImpactChart)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", s.metrics.Handler())

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			NotFound(c, "endpoint not found")
			return
		}
		renderError(c, http.StatusNotFound, "page not found")
	})

	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.limiter.Run(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Log.Info("server starting", zap.String("addr", srv.Addr), zap.String("mode", s.cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Log.Info("server stopped")
	return nil
}
