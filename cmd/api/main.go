package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/limbo/fitlog/internal/aggregate"
	"github.com/limbo/fitlog/internal/api"
	"github.com/limbo/fitlog/internal/observability"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/internal/service"
	"github.com/limbo/fitlog/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	targets, err := config.LoadTargets(cfg.GetString("MACRO_TARGETS_FILE"))
	if err != nil {
		log.Fatal("loading macro targets error: " + err.Error())
	}
	loc, err := aggregate.LoadZone(cfg.GetString("DASHBOARD_TIMEZONE"))
	if err != nil {
		log.Fatal("loading dashboard timezone error: " + err.Error())
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	pool := repository.NewPool(&dbCfg)
	weightRepo := repository.NewWeightRepoWithConn(pool)
	workoutsRepo := repository.NewWorkoutsRepoWithConn(pool)
	foodRepo := repository.NewFoodRepoWithConn(pool)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewManager("fitlog", "api", registry)

	dashboardService := service.NewDashboardService(weightRepo, workoutsRepo, foodRepo, service.Settings{
		Targets:  targets,
		Location: loc,
	}, metrics)
	dayLogService := service.NewDayLogService(workoutsRepo, foodRepo, targets, metrics)

	serv := api.New(&api.ServicesList{
		DashboardService: dashboardService,
		DayLogService:    dayLogService,
		Metrics:          metrics,
		Gatherer:         registry,
	})
	err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
