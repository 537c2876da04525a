package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/pkg/httputil"
)

const requestTimeout = 10 * time.Second

// daysParam returns the "days" query value, 0 when absent or not a number.
// The service falls back to its default window for anything out of range.
func daysParam(r *http.Request) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return days
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
	})
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	dashboard := s.dashboardService.Dashboard(ctx, daysParam(r))
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
	logger.Info("dashboard served",
		slog.Bool("weight", dashboard.Weight.Available),
		slog.Bool("workouts", dashboard.Workouts.Available),
		slog.Bool("food", dashboard.Food.Available))
}

func (s *Server) GetWeight(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, s.dashboardService.WeightSection(ctx))
}

func (s *Server) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, s.dashboardService.WorkoutSection(ctx))
}

func (s *Server) GetFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, s.dashboardService.FoodSection(ctx, daysParam(r)))
}

func (s *Server) GetTargets(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.dashboardService.Targets())
}

func (s *Server) GetFoodLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	foodLog, err := s.dayLogService.FoodLog(ctx, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFoodNotFound), errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Info("food log not found", slog.String("date", date))
		default:
			logger.Error("getting food log error", slog.String("date", date), slog.String("error", err.Error()))
		}
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no food log found")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, foodLog)
}

func (s *Server) GetWorkoutLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	workoutLog, err := s.dayLogService.WorkoutLog(ctx, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWorkoutNotFound), errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Info("workout not found", slog.String("date", date))
		default:
			logger.Error("getting workout log error", slog.String("date", date), slog.String("error", err.Error()))
		}
		httputil.WriteErrorResponse(w, http.StatusNotFound, "workout not found")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workoutLog)
}
