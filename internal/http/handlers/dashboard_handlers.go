package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stocktrack/inventory-api/internal/report"
)

// GetDashboardHandler godoc
// @Summary Dashboard metrics computed from the current item list
// @Tags dashboard
// @Produce json
// @Success 200 {object} report.Summary
// @Failure 500 {object} ErrorResult
// @Router /api/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetAll(r.Context())
	if err != nil {
		logger.Error("dashboard fetch failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not fetch items")
		return
	}
	writeJSON(w, http.StatusOK, report.Summarize(items, time.Now()))
}
