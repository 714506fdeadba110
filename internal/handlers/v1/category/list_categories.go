package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wellness-server/internal/logging"
	"github.com/carson-networks/wellness-server/internal/service"
)

// ListCategoriesCursor represents a pagination cursor in request and response bodies.
type ListCategoriesCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListCategoriesBody is the request body for listing budget categories.
type ListCategoriesBody struct {
	UserID string                `json:"userID" required:"true" doc:"User UUID"`
	Cursor *ListCategoriesCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListCategoriesInput is the Huma input for listing budget categories.
type ListCategoriesInput struct {
	Body ListCategoriesBody
}

// ListCategoriesResponseBody is the response body for listing budget categories.
type ListCategoriesResponseBody struct {
	Categories []BudgetCategory      `json:"categories" doc:"Page of budget categories"`
	NextCursor *ListCategoriesCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListCategoriesOutput is the Huma output for listing budget categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing budget categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID, cursor *service.CategoryCursor) ([]service.BudgetCategory, *service.CategoryCursor, error)
}

// ListCategoriesHandler handles POST /v1/category/list.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodPost,
		Path:        "/v1/category/list",
		Summary:     "List budget categories",
		Description: "Returns a paginated list of the user's budget categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var requestCursor *service.CategoryCursor
	if input.Body.Cursor != nil {
		if input.Body.Cursor.Position < 0 {
			return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
		}
		requestCursor = &service.CategoryCursor{
			Position: input.Body.Cursor.Position,
			Limit:    input.Body.Cursor.Limit,
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCategoriesMs")
	}
	categories, nextCursor, err := h.CategoryService.ListCategories(ctx, userID, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]BudgetCategory, len(categories)),
	}

	for i, cat := range categories {
		resp.Categories[i] = BudgetCategory{
			ID:             cat.ID.String(),
			UserID:         cat.UserID.String(),
			Name:           cat.Name,
			Type:           cat.Type,
			BudgetedAmount: cat.BudgetedAmount.String(),
			ActualAmount:   cat.ActualAmount.String(),
			Color:          cat.Color,
			Icon:           cat.Icon,
		}
	}

	if nextCursor != nil {
		resp.NextCursor = &ListCategoriesCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
