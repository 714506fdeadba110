// Package analytics exposes the read-only analysis endpoints. Each request
// builds one AnalysisRun so every stage in the request shares a single
// storage snapshot.
package analytics

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wellness-server/internal/finance"
	"github.com/carson-networks/wellness-server/internal/service"
)

// analysisRunner starts per-request analysis runs.
type analysisRunner interface {
	NewRun(userID uuid.UUID) *service.AnalysisRun
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	return userID, nil
}

// parseWindow validates an inclusive RFC3339 date range.
func parseWindow(start, end string) (finance.Window, error) {
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return finance.Window{}, huma.NewError(http.StatusBadRequest, "invalid start", err)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return finance.Window{}, huma.NewError(http.StatusBadRequest, "invalid end", err)
	}
	if endTime.Before(startTime) {
		return finance.Window{}, huma.NewError(http.StatusBadRequest, "end must not precede start")
	}
	return finance.Window{Start: startTime, End: endTime}, nil
}
