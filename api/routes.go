package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/wellness-server/internal/handlers/v1/analytics"
	"github.com/carson-networks/wellness-server/internal/handlers/v1/category"
	"github.com/carson-networks/wellness-server/internal/handlers/v1/simulation"
	"github.com/carson-networks/wellness-server/internal/handlers/v1/status"
	"github.com/carson-networks/wellness-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/wellness-server/internal/logging"
	"github.com/carson-networks/wellness-server/internal/metrics"
	"github.com/carson-networks/wellness-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Metrics *metrics.Metrics
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("wellness-server", "1.0.0")
	api := humago.New(mux, config)
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	if r.Metrics != nil {
		api.UseMiddleware(metrics.HumaMiddleware(r.Metrics))
	}

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewImportTransactionsHandler(r.Service.Transaction).Register(api)
	category.NewCreateCategoryHandler(r.Service.Category).Register(api)
	category.NewListCategoriesHandler(r.Service.Category).Register(api)
	analytics.NewSummaryHandler(r.Service.Analytics).Register(api)
	analytics.NewFeesHandler(r.Service.Analytics).Register(api)
	analytics.NewHealthHandler(r.Service.Analytics).Register(api)
	analytics.NewForecastHandler(r.Service.Analytics).Register(api)
	simulation.NewProjectHandler(r.Service.Simulation).Register(api)
	simulation.NewScenariosHandler(r.Service.Simulation).Register(api)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	registry := prometheus.NewRegistry()
	if r.Metrics != nil {
		if err := r.Metrics.Register(registry); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.metrics registration error")
		}
	}
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
