package finance

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func expenseTransaction(amount, description, merchant string) Transaction {
	return Transaction{
		ID:           uuid.Must(uuid.NewV4()),
		Amount:       decimal.RequireFromString(amount),
		Type:         TransactionTypeExpense,
		Date:         time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Description:  description,
		MerchantName: merchant,
	}
}

func TestDetectFees_BankFeeExample(t *testing.T) {
	tx := expenseTransaction("3.5", "frais de tenue de compte", "")

	fees := DetectFees([]Transaction{tx}, DetectOptions{})

	assert.Len(t, fees, 1)
	fee := fees[0]
	assert.Equal(t, tx.ID, fee.TransactionID)
	assert.Equal(t, FeeTypeBank, fee.FeeType)
	assert.Equal(t, SeverityMedium, fee.Severity)
	// 0.70 base + 0.20 small amount + 0.20 "frais" match, capped at 1.
	assert.Equal(t, 1.0, fee.Confidence)
	assert.False(t, fee.Recurring)
	assert.True(t, fee.EstimatedAnnualImpact.Equal(tx.Amount))
}

func TestDetectFees_IgnoresNonExpense(t *testing.T) {
	income := expenseTransaction("3.5", "frais de tenue de compte", "")
	income.Type = TransactionTypeIncome
	transfer := expenseTransaction("3.5", "commission", "")
	transfer.Type = TransactionTypeTransfer

	fees := DetectFees([]Transaction{income, transfer}, DetectOptions{})

	assert.Empty(t, fees)
}

func TestDetectFees_NoMatchesIsEmptyNotNil(t *testing.T) {
	tx := expenseTransaction("120", "grocery run", "")

	fees := DetectFees([]Transaction{tx}, DetectOptions{})

	assert.NotNil(t, fees)
	assert.Empty(t, fees)
}

func TestDetectFees_MerchantNameMatches(t *testing.T) {
	tx := expenseTransaction("12.00", "aucun détail", "FX Currency Services")
	tx.IsHiddenFee = true // suppress the unmarked-fee probe for this case

	fees := DetectFees([]Transaction{tx}, DetectOptions{})

	assert.Len(t, fees, 1)
	assert.Equal(t, FeeTypeForeignExchange, fees[0].FeeType)
	assert.Equal(t, SeverityHigh, fees[0].Severity)
}

func TestDetectFees_RecurringBoostsConfidenceAndImpact(t *testing.T) {
	first := expenseTransaction("9.99", "abonnement streaming", "Streamco")
	second := expenseTransaction("9.99", "abonnement streaming", "Streamco")
	third := expenseTransaction("9.99", "abonnement streaming", "Streamco")

	fees := DetectFees([]Transaction{first, second, third}, DetectOptions{})

	assert.Len(t, fees, 3)
	for _, fee := range fees {
		assert.Equal(t, FeeTypeSubscription, fee.FeeType)
		assert.True(t, fee.Recurring, "two other matching merchant+amount rows")
		// 0.70 base + 0.10 recurring; 9.99 is neither small nor integer.
		assert.InDelta(t, 0.8, fee.Confidence, 1e-9)
		assert.True(t, fee.EstimatedAnnualImpact.Equal(decimal.RequireFromString("119.88")), "amount * 12")
	}
}

func TestDetectFees_RecurringNeedsTwoOthers(t *testing.T) {
	first := expenseTransaction("9.99", "abonnement streaming", "Streamco")
	second := expenseTransaction("9.99", "abonnement streaming", "Streamco")

	fees := DetectFees([]Transaction{first, second}, DetectOptions{})

	assert.Len(t, fees, 2)
	for _, fee := range fees {
		assert.False(t, fee.Recurring, "only one other matching row")
	}
}

func TestDetectFees_RecurringRequiresMerchant(t *testing.T) {
	txs := []Transaction{
		expenseTransaction("4.00", "commission mensuelle", ""),
		expenseTransaction("4.00", "commission mensuelle", ""),
		expenseTransaction("4.00", "commission mensuelle", ""),
	}

	fees := DetectFees(txs, DetectOptions{})

	for _, fee := range fees {
		assert.False(t, fee.Recurring, "empty merchant never recurs")
	}
}

func TestDetectFees_DuplicateCategoriesPreserved(t *testing.T) {
	tx := expenseTransaction("9.99", "abonnement premium service fee", "")
	tx.IsHiddenFee = true

	fees := DetectFees([]Transaction{tx}, DetectOptions{})

	// Matches both subscription and service keyword sets; current behavior
	// keeps one entry per matching category.
	assert.Len(t, fees, 2)
	assert.Equal(t, FeeTypeSubscription, fees[0].FeeType, "pattern table order preserved on ties")
	assert.Equal(t, FeeTypeService, fees[1].FeeType)
	assert.Equal(t, fees[0].TransactionID, fees[1].TransactionID)
	assert.Equal(t, fees[0].Confidence, fees[1].Confidence)
}

func TestDetectFees_DeduplicateOption(t *testing.T) {
	tx := expenseTransaction("9.99", "abonnement premium service fee", "")
	tx.IsHiddenFee = true

	fees := DetectFees([]Transaction{tx}, DetectOptions{Deduplicate: true})

	assert.Len(t, fees, 1)
	assert.Equal(t, tx.ID, fees[0].TransactionID)
}

func TestDetectFees_UnmarkedFeeProbe(t *testing.T) {
	tx := expenseTransaction("2.95", "retrait 2.95", "")

	fees := DetectFees([]Transaction{tx}, DetectOptions{})

	assert.Len(t, fees, 1)
	fee := fees[0]
	assert.Equal(t, "unknown", fee.Category)
	assert.Equal(t, SeverityLow, fee.Severity)
	assert.Equal(t, 0.5, fee.Confidence)
	assert.False(t, fee.Recurring)
	assert.True(t, fee.EstimatedAnnualImpact.Equal(tx.Amount))
}

func TestDetectFees_ProbeSkipsFlaggedAndLargeAmounts(t *testing.T) {
	flagged := expenseTransaction("2.95", "retrait 2.95", "")
	flagged.IsHiddenFee = true
	large := expenseTransaction("75.00", "admin charge 75.00", "")
	large.IsHiddenFee = true // keep the keyword table out of this case too

	fees := DetectFees([]Transaction{flagged, large}, DetectOptions{})

	for _, fee := range fees {
		assert.NotEqual(t, "unknown", fee.Category)
	}
}

func TestDetectFees_SortedByConfidenceDescending(t *testing.T) {
	strong := expenseTransaction("3.00", "late fee", "")    // small + integer + "fee"
	weak := expenseTransaction("42.50", "agios", "")        // base confidence only
	probe := expenseTransaction("7.95", "retrait 7.95", "") // unmarked probe, 0.5

	fees := DetectFees([]Transaction{probe, weak, strong}, DetectOptions{})

	assert.Len(t, fees, 3)
	for i := 1; i < len(fees); i++ {
		assert.GreaterOrEqual(t, fees[i-1].Confidence, fees[i].Confidence)
	}
	assert.Equal(t, strong.ID, fees[0].TransactionID)
	assert.Equal(t, probe.ID, fees[2].TransactionID)
}

func TestDetectFees_ConfidenceBounds(t *testing.T) {
	txs := []Transaction{
		expenseTransaction("1.00", "late fee frais penalty", "Bank"),
		expenseTransaction("1.00", "late fee frais penalty", "Bank"),
		expenseTransaction("1.00", "late fee frais penalty", "Bank"),
		expenseTransaction("250.00", "currency conversion", ""),
	}

	fees := DetectFees(txs, DetectOptions{})

	assert.NotEmpty(t, fees)
	for _, fee := range fees {
		assert.GreaterOrEqual(t, fee.Confidence, 0.0)
		assert.LessOrEqual(t, fee.Confidence, 1.0)
	}
}

func TestDetectFees_Idempotent(t *testing.T) {
	txs := []Transaction{
		expenseTransaction("3.5", "frais de tenue de compte", ""),
		expenseTransaction("9.99", "abonnement streaming", "Streamco"),
	}

	first := DetectFees(txs, DetectOptions{})
	second := DetectFees(txs, DetectOptions{})

	assert.Equal(t, first, second)
}
