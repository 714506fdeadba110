package service

import (
	"context"

	"github.com/carson-networks/wellness-server/internal/operator/actions"
	"github.com/carson-networks/wellness-server/internal/storage"
)

// IDelegator is the write queue the services submit actions to.
//
//go:generate mockery --name IDelegator --output mock_IDelegator.go
type IDelegator interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
	Analytics   *AnalyticsService
	Simulation  *SimulationService
}

// NewService creates a new Service with the given storage and write delegator.
func NewService(store *storage.Storage, delegator IDelegator, analysisFetchLimit int) *Service {
	return &Service{
		Transaction: NewTransactionService(store, delegator),
		Category:    NewCategoryService(store, delegator),
		Analytics:   NewAnalyticsService(store, analysisFetchLimit),
		Simulation:  NewSimulationService(),
	}
}
