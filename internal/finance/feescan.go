package finance

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Severity grades how much a detected fee deserves attention.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// FeeType names the pattern category that produced a detection.
type FeeType string

const (
	FeeTypeBank            FeeType = "bank"
	FeeTypeSubscription    FeeType = "subscription"
	FeeTypeService         FeeType = "service"
	FeeTypeForeignExchange FeeType = "foreign_exchange"
	FeeTypePenalty         FeeType = "penalty"
)

// DetectedFee is one hidden-fee judgement derived from a single transaction.
type DetectedFee struct {
	TransactionID         uuid.UUID
	Amount                decimal.Decimal
	Description           string
	MerchantName          string
	Date                  time.Time
	Category              string
	FeeType               FeeType
	Confidence            float64
	Severity              Severity
	Recurring             bool
	EstimatedAnnualImpact decimal.Decimal
}

// feePattern is one keyword category of the precompiled pattern table.
type feePattern struct {
	feeType  FeeType
	keywords []string
	severity Severity
}

// Pattern table order is fixed; it determines the relative order of multiple
// matches for one transaction before the confidence sort.
var feePatterns = []feePattern{
	{
		feeType:  FeeTypeBank,
		keywords: []string{"frais bancaires", "commission", "agios", "découvert", "tenue de compte", "carte bancaire"},
		severity: SeverityMedium,
	},
	{
		feeType:  FeeTypeSubscription,
		keywords: []string{"abonnement", "subscription", "monthly", "annual", "premium", "pro"},
		severity: SeverityHigh,
	},
	{
		feeType:  FeeTypeService,
		keywords: []string{"service fee", "processing fee", "handling", "administration", "gestion"},
		severity: SeverityMedium,
	},
	{
		feeType:  FeeTypeForeignExchange,
		keywords: []string{"change", "foreign", "fx", "currency", "devise"},
		severity: SeverityHigh,
	},
	{
		feeType:  FeeTypePenalty,
		keywords: []string{"penalty", "late fee", "retard", "pénalité", "amende"},
		severity: SeverityCritical,
	},
}

// Probes for unmarked low-amount fees, compiled once.
var suspiciousProbes = []*regexp.Regexp{
	regexp.MustCompile(`\d+\.\d{2}$`),
	regexp.MustCompile(`(?i)service|admin|process|handle`),
	regexp.MustCompile(`(?i)monthly|annual|yearly`),
}

var (
	smallFeeThreshold  = decimal.NewFromInt(5)
	unmarkedThreshold  = decimal.NewFromInt(50)
	recurringTolerance = decimal.NewFromFloat(0.01)
	annualMultiplier   = decimal.NewFromInt(12)
)

// DetectOptions tunes detector output. The zero value is the documented
// current behavior: a transaction matching several keyword categories appears
// once per category.
type DetectOptions struct {
	// Deduplicate collapses multi-category matches for one transaction into
	// the single highest-confidence entry.
	Deduplicate bool
}

// DetectFees scans expense transactions against the fee pattern table and the
// unmarked-fee probes, returning detections stable-sorted by confidence
// descending. It never fails; no matches yields an empty slice.
func DetectFees(transactions []Transaction, opts DetectOptions) []DetectedFee {
	var detected []DetectedFee

	for _, tx := range transactions {
		if tx.Type != TransactionTypeExpense {
			continue
		}

		description := strings.ToLower(tx.Description)
		merchant := strings.ToLower(tx.MerchantName)
		recurring := isRecurring(tx, transactions)

		matchStart := len(detected)
		for _, pattern := range feePatterns {
			if !matchesAnyKeyword(description, merchant, pattern.keywords) {
				continue
			}
			detected = append(detected, buildDetection(tx, pattern, description, recurring))
		}
		if opts.Deduplicate && len(detected)-matchStart > 1 {
			detected = append(detected[:matchStart], bestOf(detected[matchStart:]))
		}

		// Low-amount expenses without a hidden-fee flag get a second look.
		if !tx.IsHiddenFee && tx.Amount.LessThan(unmarkedThreshold) && matchesAnyProbe(description, merchant) {
			detected = append(detected, DetectedFee{
				TransactionID:         tx.ID,
				Amount:                tx.Amount,
				Description:           tx.Description,
				MerchantName:          tx.MerchantName,
				Date:                  tx.Date,
				Category:              "unknown",
				FeeType:               FeeTypeService,
				Confidence:            0.5,
				Severity:              SeverityLow,
				Recurring:             false,
				EstimatedAnnualImpact: tx.Amount,
			})
		}
	}

	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].Confidence > detected[j].Confidence
	})

	if detected == nil {
		return []DetectedFee{}
	}
	return detected
}

func buildDetection(tx Transaction, pattern feePattern, description string, recurring bool) DetectedFee {
	confidence := 0.7
	if tx.Amount.LessThan(smallFeeThreshold) {
		confidence += 0.2
	}
	if tx.Amount.IsInteger() {
		confidence += 0.1
	}
	if strings.Contains(description, "fee") || strings.Contains(description, "frais") {
		confidence += 0.2
	}
	if recurring {
		confidence += 0.1
	}
	if confidence > 1 {
		confidence = 1
	}

	impact := tx.Amount
	if recurring {
		impact = tx.Amount.Mul(annualMultiplier)
	}

	return DetectedFee{
		TransactionID:         tx.ID,
		Amount:                tx.Amount,
		Description:           tx.Description,
		MerchantName:          tx.MerchantName,
		Date:                  tx.Date,
		Category:              string(pattern.feeType),
		FeeType:               pattern.feeType,
		Confidence:            confidence,
		Severity:              pattern.severity,
		Recurring:             recurring,
		EstimatedAnnualImpact: impact,
	}
}

// isRecurring reports whether at least two other transactions share the same
// non-empty merchant name and an amount within 0.01 absolute tolerance.
func isRecurring(tx Transaction, all []Transaction) bool {
	if tx.MerchantName == "" {
		return false
	}

	similar := 0
	for _, other := range all {
		if other.ID == tx.ID || other.MerchantName != tx.MerchantName {
			continue
		}
		if other.Amount.Sub(tx.Amount).Abs().LessThan(recurringTolerance) {
			similar++
		}
	}
	return similar >= 2
}

func matchesAnyKeyword(description, merchant string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(description, keyword) || strings.Contains(merchant, keyword) {
			return true
		}
	}
	return false
}

func matchesAnyProbe(description, merchant string) bool {
	for _, probe := range suspiciousProbes {
		if probe.MatchString(description) || probe.MatchString(merchant) {
			return true
		}
	}
	return false
}

func bestOf(matches []DetectedFee) DetectedFee {
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Confidence > best.Confidence {
			best = m
		}
	}
	return best
}
