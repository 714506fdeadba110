package finance

import (
	"math"
	"sort"
	"time"
)

// PredictionKind names what a forecast entry predicts.
type PredictionKind string

const (
	PredictionKindIncome  PredictionKind = "income"
	PredictionKindExpense PredictionKind = "expense"
	PredictionKindBalance PredictionKind = "balance"
)

// Impact marks whether a prediction moves the user's position up or down
// relative to the historical average.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
)

// Prediction is one forecast entry.
type Prediction struct {
	Kind       PredictionKind
	Label      string
	Value      float64
	Confidence float64
	Impact     Impact
}

const forecastMonths = 6

// Forecast derives income, per-category expense, and balance predictions from
// transaction history, sorted by confidence descending (stable). Entries that
// lack enough history are simply omitted.
func Forecast(transactions []Transaction, categories []BudgetCategory, now time.Time) []Prediction {
	var predictions []Prediction

	if p, ok := forecastIncome(transactions); ok {
		predictions = append(predictions, p)
	}
	for _, cat := range categories {
		if p, ok := forecastCategory(transactions, cat, now); ok {
			predictions = append(predictions, p)
		}
	}
	predictions = append(predictions, forecastBalance(transactions))

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})

	return predictions
}

// forecastIncome projects income six months out from a least-squares trend.
// Needs at least three income transactions.
func forecastIncome(transactions []Transaction) (Prediction, bool) {
	var amounts []float64
	for _, tx := range transactions {
		if tx.Type == TransactionTypeIncome {
			amount, _ := tx.Amount.Float64()
			amounts = append(amounts, amount)
		}
	}
	if len(amounts) < 3 {
		return Prediction{}, false
	}

	avg := mean(amounts)
	future := avg + LinearTrend(amounts)*forecastMonths

	impact := ImpactNegative
	if future > avg {
		impact = ImpactPositive
	}

	return Prediction{
		Kind:       PredictionKindIncome,
		Label:      "income",
		Value:      future,
		Confidence: math.Min(0.85, 0.5+float64(len(amounts))/20),
		Impact:     impact,
	}, true
}

// forecastCategory predicts next spend for one category, scaled by a seasonal
// factor and penalized by volatility. Needs at least two expense transactions
// in the category.
func forecastCategory(transactions []Transaction, cat BudgetCategory, now time.Time) (Prediction, bool) {
	var amounts []float64
	var dates []time.Time
	for _, tx := range transactions {
		if tx.Type != TransactionTypeExpense || tx.CategoryID == nil || *tx.CategoryID != cat.ID {
			continue
		}
		amount, _ := tx.Amount.Float64()
		amounts = append(amounts, amount)
		dates = append(dates, tx.Date)
	}
	if len(amounts) < 2 {
		return Prediction{}, false
	}

	avg := mean(amounts)
	volatility := 0.0
	if avg > 0 {
		volatility = math.Sqrt(Variance(amounts)) / avg
	}
	predicted := avg * seasonalFactor(amounts, dates, now)

	impact := ImpactPositive
	if predicted > avg {
		impact = ImpactNegative
	}

	return Prediction{
		Kind:       PredictionKindExpense,
		Label:      cat.Name,
		Value:      predicted,
		Confidence: math.Max(0.3, 0.9-volatility),
		Impact:     impact,
	}, true
}

// forecastBalance extrapolates the current balance by the monthly net over
// the forecast horizon. Always produced, confidence fixed at 0.75.
func forecastBalance(transactions []Transaction) Prediction {
	var income, expenses float64
	for _, tx := range transactions {
		amount, _ := tx.Amount.Float64()
		switch tx.Type {
		case TransactionTypeIncome:
			income += amount
		case TransactionTypeExpense:
			expenses += amount
		}
	}

	span := monthsSpan(transactions)
	current := income - expenses
	future := current + (income/span-expenses/span)*forecastMonths

	impact := ImpactNegative
	if future > current {
		impact = ImpactPositive
	}

	return Prediction{
		Kind:       PredictionKindBalance,
		Label:      "balance",
		Value:      future,
		Confidence: 0.75,
		Impact:     impact,
	}
}

// LinearTrend is the least-squares slope of amounts over their indices.
// Returns 0 for fewer than two points.
func LinearTrend(amounts []float64) float64 {
	n := float64(len(amounts))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range amounts {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// Variance is the population variance of amounts.
func Variance(amounts []float64) float64 {
	if len(amounts) == 0 {
		return 0
	}
	avg := mean(amounts)
	var sum float64
	for _, v := range amounts {
		sum += (v - avg) * (v - avg)
	}
	return sum / float64(len(amounts))
}

// seasonalFactor compares the current calendar month's historical average to
// the overall monthly average. 1 when there is no usable signal.
func seasonalFactor(amounts []float64, dates []time.Time, now time.Time) float64 {
	var totals, counts [12]float64
	for i, d := range dates {
		m := int(d.Month()) - 1
		totals[m] += amounts[i]
		counts[m]++
	}

	var overall float64
	for m := range totals {
		if counts[m] > 0 {
			totals[m] /= counts[m]
		}
		overall += totals[m]
	}
	overall /= 12

	if overall <= 0 {
		return 1
	}
	return totals[int(now.Month())-1] / overall
}

// monthsSpan is the number of calendar months covered by the transactions,
// always at least 1.
func monthsSpan(transactions []Transaction) float64 {
	if len(transactions) == 0 {
		return 1
	}

	min, max := transactions[0].Date, transactions[0].Date
	for _, tx := range transactions[1:] {
		if tx.Date.Before(min) {
			min = tx.Date
		}
		if tx.Date.After(max) {
			max = tx.Date
		}
	}

	months := (max.Year()-min.Year())*12 + int(max.Month()) - int(min.Month())
	if months < 1 {
		return 1
	}
	return float64(months)
}

func mean(amounts []float64) float64 {
	if len(amounts) == 0 {
		return 0
	}
	var sum float64
	for _, v := range amounts {
		sum += v
	}
	return sum / float64(len(amounts))
}
