package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/logging"
	"github.com/carson-networks/wellness-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	UserID       string `json:"userID" required:"true" doc:"User UUID"`
	CategoryID   string `json:"categoryID,omitempty" doc:"Budget category UUID"`
	Amount       string `json:"amount" required:"true" doc:"Decimal amount, non-negative"`
	Type         string `json:"type" required:"true" enum:"income,expense,transfer" doc:"Transaction type"`
	Description  string `json:"description" required:"true" doc:"Description of the transaction"`
	MerchantName string `json:"merchantName,omitempty" doc:"Merchant name"`
	IsHiddenFee  bool   `json:"isHiddenFee,omitempty" doc:"Flag the transaction as a hidden fee"`
	IsRecurring  bool   `json:"isRecurring,omitempty" doc:"Flag the transaction as recurring"`
	Date         string `json:"date,omitempty" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionBody parses and validates one transaction body.
// Shared with the bulk import endpoint, which maps a returned error to a
// skipped row instead of rejecting the request.
func parseCreateTransactionBody(body CreateTransactionBody) (service.Transaction, error) {
	userID, err := uuid.FromString(body.UserID)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var categoryID *uuid.UUID
	if body.CategoryID != "" {
		parsed, err := uuid.FromString(body.CategoryID)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		categoryID = &parsed
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.IsNegative() {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "amount must be non-negative")
	}

	var date time.Time
	if body.Date != "" {
		date, err = time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	} else {
		date = time.Now()
	}

	return service.Transaction{
		UserID:       userID,
		CategoryID:   categoryID,
		Amount:       amount,
		Type:         body.Type,
		Description:  body.Description,
		MerchantName: body.MerchantName,
		IsHiddenFee:  body.IsHiddenFee,
		IsRecurring:  body.IsRecurring,
		Date:         date,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	transaction, err := parseCreateTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, transaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponseBody{ID: id.String()},
	}, nil
}
