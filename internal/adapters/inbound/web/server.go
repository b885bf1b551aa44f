package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moneywise/moneywise/internal/adapters/outbound/metrics"
	"github.com/moneywise/moneywise/internal/application"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 5 * time.Second

// Server is the HTTP surface of the dashboard: an HTML shell for browsers and
// a JSON API over the same DashboardService.
type Server struct {
	router  *gin.Engine
	svc     *application.DashboardService
	log     *zap.Logger
	metrics *metrics.Recorder
}

// NewServer wires routes and middleware. rec may be nil, in which case no
// request metrics are kept and /metrics is not served.
func NewServer(svc *application.DashboardService, log *zap.Logger, rec *metrics.Recorder) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.SetHTMLTemplate(tmpl)
	router.Use(Recovery(log))
	router.Use(RequestID())
	router.Use(AccessLog(log))
	if rec != nil {
		router.Use(Metrics(rec))
	}

	s := &Server{
		router:  router,
		svc:     svc,
		log:     log,
		metrics: rec,
	}
	s.setupRoutes()

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	s.router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	dash := s.router.Group("/dashboard")
	{
		dash.GET("", s.handlePage)
		dash.GET("/", s.handlePage)
		dash.GET("/:page", s.handlePage)
		dash.GET("/:page/*rest", s.handlePage)
	}

	ui := s.router.Group("/ui")
	{
		ui.POST("/notifications/:id/read", s.handleUIMarkRead)
		ui.POST("/sidebar/toggle", s.handleUIToggle)
	}

	api := s.router.Group("/api/v1")
	{
		api.GET("/notifications", s.handleListNotifications)
		api.GET("/notifications/unread-count", s.handleUnreadCount)
		api.PUT("/notifications/read-all", s.handleMarkAllRead)
		api.PUT("/notifications/:id/read", s.handleMarkRead)
		api.POST("/sidebar/toggle", s.handleToggleSidebar)
		api.GET("/nav", s.handleNav)
		api.GET("/shell", s.handleShell)
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
