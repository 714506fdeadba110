package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wellness-server/internal/operator/actions"
	"github.com/carson-networks/wellness-server/internal/storage"
	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

const defaultCategoryLimit = 20

// CategoryService handles budget category business logic.
type CategoryService struct {
	storage   *storage.Storage
	delegator IDelegator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, delegator IDelegator) *CategoryService {
	return &CategoryService{storage: store, delegator: delegator}
}

// CreateCategory creates a new budget category and returns its ID.
func (s *CategoryService) CreateCategory(ctx context.Context, category BudgetCategory) (uuid.UUID, error) {
	action := &actions.CreateCategory{
		UserID:         category.UserID,
		Name:           category.Name,
		Type:           category.Type,
		BudgetedAmount: category.BudgetedAmount,
		Color:          category.Color,
		Icon:           category.Icon,
	}

	if err := s.delegator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	return action.ID, nil
}

// ListCategories returns a page of a user's budget categories using cursor
// pagination.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID, cursor *CategoryCursor) ([]BudgetCategory, *CategoryCursor, error) {
	limit := defaultCategoryLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &sqlconfig.BudgetCategoryFilter{
		UserID: &userID,
		Limit:  limit,
		Offset: offset,
	}

	rows, err := s.storage.Categories.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *CategoryCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &CategoryCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedCategories := make([]BudgetCategory, len(rows))
	for i, row := range rows {
		convertedCategories[i] = categoryFromStorage(row)
	}

	return convertedCategories, nextCursor, nil
}
