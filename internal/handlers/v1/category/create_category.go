package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/logging"
	"github.com/carson-networks/wellness-server/internal/service"
)

// CreateCategoryBody is the request body for creating a budget category.
type CreateCategoryBody struct {
	UserID         string `json:"userID" required:"true" doc:"User UUID"`
	Name           string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	Type           string `json:"type" required:"true" enum:"income,fixed_expense,variable_expense,debt,investment" doc:"Category type"`
	BudgetedAmount string `json:"budgetedAmount" required:"true" doc:"Decimal budgeted amount, non-negative"`
	Color          string `json:"color,omitempty" doc:"Display color"`
	Icon           string `json:"icon,omitempty" doc:"Display icon"`
}

// CreateCategoryInput is the Huma input for creating a budget category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponseBody is the response body for creating a budget category.
type CreateCategoryResponseBody struct {
	ID string `json:"id" doc:"UUID of the created category"`
}

// CreateCategoryOutput is the Huma output for creating a budget category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponseBody
}

// categoryCreator is the interface for creating budget categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, category service.BudgetCategory) (uuid.UUID, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create budget category",
		Description:   "Creates a new budget category.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	budgeted, err := decimal.NewFromString(input.Body.BudgetedAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budgetedAmount", err)
	}
	if budgeted.IsNegative() {
		return nil, huma.NewError(http.StatusBadRequest, "budgetedAmount must be non-negative")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCategoryMs")
	}
	id, err := h.CategoryService.CreateCategory(ctx, service.BudgetCategory{
		UserID:         userID,
		Name:           input.Body.Name,
		Type:           input.Body.Type,
		BudgetedAmount: budgeted,
		Color:          input.Body.Color,
		Icon:           input.Body.Icon,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create category", err)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponseBody{ID: id.String()},
	}, nil
}
