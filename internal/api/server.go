package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/fitlog/internal/observability"
	"github.com/limbo/fitlog/internal/service"
	"github.com/limbo/fitlog/pkg/cleanup"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	mx               *chi.Mux
	dashboardService service.DashboardServiceI
	dayLogService    service.DayLogServiceI
	metrics          *observability.Manager
	gatherer         prometheus.Gatherer
}

type ServicesList struct {
	DashboardService service.DashboardServiceI
	DayLogService    service.DayLogServiceI
	Metrics          *observability.Manager
	// Gatherer backs the /metrics route, prometheus.DefaultGatherer when nil
	Gatherer prometheus.Gatherer
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions.DashboardService == nil || servicesOptions.DayLogService == nil {
		log.Fatal("api server: nil service")
	}
	s := &Server{
		mx:               chi.NewMux(),
		dashboardService: servicesOptions.DashboardService,
		dayLogService:    servicesOptions.DayLogService,
		metrics:          servicesOptions.Metrics,
		gatherer:         servicesOptions.Gatherer,
	}
	if s.metrics == nil {
		s.metrics = observability.NewTestManager()
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)

	s.mx.Get("/healthz", s.Healthz)
	s.mx.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", s.GetDashboard)
		r.Get("/weight", s.GetWeight)
		r.Get("/workouts", s.GetWorkouts)
		r.Get("/food", s.GetFood)
		r.Get("/targets", s.GetTargets)
		r.Get("/food/{date}", s.GetFoodLog)
		r.Get("/workout/{date}", s.GetWorkoutLog)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests and runs the
// registered cleanup jobs.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	defer cleanup.CleanUp()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	select {
	case err, ok := <-serveErr:
		if ok {
			return errors.New("serving error: " + err.Error())
		}
		return nil
	case sig := <-shutdownCh:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.New("graceful shutdown error: " + err.Error())
	}
	return nil
}
