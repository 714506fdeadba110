package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           string  `json:"id" doc:"Transaction UUID"`
	UserID       string  `json:"userID" doc:"User UUID"`
	CategoryID   *string `json:"categoryID,omitempty" doc:"Budget category UUID"`
	Amount       string  `json:"amount" doc:"Decimal amount"`
	Type         string  `json:"type" doc:"Transaction type: income, expense or transfer"`
	Description  string  `json:"description" doc:"Description of the transaction"`
	MerchantName string  `json:"merchantName,omitempty" doc:"Merchant name"`
	IsHiddenFee  bool    `json:"isHiddenFee" doc:"Whether the transaction is flagged as a hidden fee"`
	IsRecurring  bool    `json:"isRecurring" doc:"Whether the transaction recurs"`
	Date         string  `json:"date" doc:"RFC3339 transaction date"`
	CreatedAt    string  `json:"createdAt" doc:"RFC3339 creation time"`
}
