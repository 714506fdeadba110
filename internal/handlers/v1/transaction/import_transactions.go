package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wellness-server/internal/logging"
	"github.com/carson-networks/wellness-server/internal/service"
)

// ImportTransactionsBody is the request body for bulk importing transactions.
type ImportTransactionsBody struct {
	Transactions []CreateTransactionBody `json:"transactions" required:"true" minItems:"1" maxItems:"1000" doc:"Rows to import"`
}

// ImportTransactionsInput is the Huma input for bulk importing transactions.
type ImportTransactionsInput struct {
	Body ImportTransactionsBody
}

// ImportTransactionsResponseBody reports how many rows were inserted and how
// many were skipped because they failed validation.
type ImportTransactionsResponseBody struct {
	Inserted int `json:"inserted" doc:"Number of rows inserted"`
	Skipped  int `json:"skipped" doc:"Number of malformed rows skipped"`
}

// ImportTransactionsOutput is the Huma output for bulk importing transactions.
type ImportTransactionsOutput struct {
	Body ImportTransactionsResponseBody
}

// transactionImporter is the interface for bulk inserting transactions.
type transactionImporter interface {
	ImportTransactions(ctx context.Context, transactions []service.Transaction, skipped int) (service.ImportResult, error)
}

// ImportTransactionsHandler handles POST /v1/transaction/import.
type ImportTransactionsHandler struct {
	TransactionService transactionImporter
}

// NewImportTransactionsHandler creates a new ImportTransactionsHandler.
func NewImportTransactionsHandler(svc transactionImporter) *ImportTransactionsHandler {
	return &ImportTransactionsHandler{TransactionService: svc}
}

// Register registers the import transactions endpoint with the Huma API.
func (h *ImportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "import-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/import",
		Summary:     "Import transactions",
		Description: "Bulk imports transactions. Malformed rows are skipped and counted, not rejected.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ImportTransactionsHandler) handle(ctx context.Context, input *ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	// A malformed row drops out of the batch instead of failing the request.
	parsed := make([]service.Transaction, 0, len(input.Body.Transactions))
	skipped := 0
	for _, row := range input.Body.Transactions {
		transaction, err := parseCreateTransactionBody(row)
		if err != nil {
			skipped++
			continue
		}
		parsed = append(parsed, transaction)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("importTransactionsMs")
	}
	result, err := h.TransactionService.ImportTransactions(ctx, parsed, skipped)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to import transactions", err)
	}

	if logData != nil {
		logData.AddData("importedCount", result.Inserted)
		logData.AddData("skippedCount", result.Skipped)
	}

	return &ImportTransactionsOutput{
		Body: ImportTransactionsResponseBody{
			Inserted: result.Inserted,
			Skipped:  result.Skipped,
		},
	}, nil
}
