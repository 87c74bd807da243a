package summary

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/spendwell/spendwell/internal/rest"
	"github.com/spendwell/spendwell/pkg/expense"
)

type SummaryDTO struct {
	TotalAmount       float64            `json:"total_amount"`
	TotalCount        int                `json:"total_count"`
	AveragePerExpense float64            `json:"average_per_expense"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	MonthlyBreakdown  map[string]float64 `json:"monthly_breakdown"`
}

type Handler struct {
	summaryService Service
	csvRenderer    Renderer
}

func NewHandler(summaryService Service, csvRenderer Renderer) *Handler {
	return &Handler{summaryService: summaryService, csvRenderer: csvRenderer}
}

// GetSummary godoc
// @Summary Aggregate the authenticated user's expenses
// @Tags Summary
// @Produce json
// @Param category_id query int false "Category filter"
// @Param start_date query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param format query string false "Set to csv for a CSV rendering"
// @Success 200 {object} SummaryDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid filter"
// @Failure 422 {object} rest.ErrorResponse "Malformed expense data"
// @Router /api/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := expense.FilterFromQuery(r)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid filter", Details: err.Error()})
		return
	}
	// the limit only applies to expense listings
	filter.Limit = 0

	summary, err := h.summaryService.GetSummary(r.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Malformed expense data", Details: err.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := h.csvRenderer.Render(summary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SummaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SummaryToDTO rounds amounts to currency precision for presentation.
func SummaryToDTO(summary Summary) SummaryDTO {
	categoryBreakdown := make(map[string]float64, len(summary.CategoryBreakdown))
	for name, amount := range summary.CategoryBreakdown {
		categoryBreakdown[name] = amount.Float64()
	}
	monthlyBreakdown := make(map[string]float64, len(summary.MonthlyBreakdown))
	for key, amount := range summary.MonthlyBreakdown {
		monthlyBreakdown[key] = amount.Float64()
	}
	return SummaryDTO{
		TotalAmount:       summary.TotalAmount.Float64(),
		TotalCount:        summary.TotalCount,
		AveragePerExpense: math.Round(summary.AveragePerExpense*100) / 100,
		CategoryBreakdown: categoryBreakdown,
		MonthlyBreakdown:  monthlyBreakdown,
	}
}
