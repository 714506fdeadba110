package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/wellness-server/api"
	"github.com/carson-networks/wellness-server/internal/config"
	"github.com/carson-networks/wellness-server/internal/logging"
	"github.com/carson-networks/wellness-server/internal/metrics"
	"github.com/carson-networks/wellness-server/internal/operator"
	"github.com/carson-networks/wellness-server/internal/service"
	"github.com/carson-networks/wellness-server/internal/storage"
)

const numOperatorWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("wellness-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, numOperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig.AnalysisFetchLimit)
	requestMetrics := metrics.New("wellness_server")

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
			Metrics: requestMetrics,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
