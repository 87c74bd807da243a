package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummaryService struct {
	summary Summary
	err     error
	// lastFilter records what the handler asked for
	lastFilter expense.Filter
}

func (s *stubSummaryService) GetSummary(ctx context.Context, filter expense.Filter) (Summary, error) {
	s.lastFilter = filter
	if s.err != nil {
		return Summary{}, s.err
	}
	return s.summary, nil
}

func setupHandlerTest(summary Summary, err error) (*Handler, *stubSummaryService) {
	service := &stubSummaryService{summary: summary, err: err}
	return NewHandler(service, NewCsvRenderer()), service
}

func TestHandler_GetSummary(t *testing.T) {
	sampleSummary := Summary{
		TotalAmount:       3500,
		TotalCount:        3,
		AveragePerExpense: 11.666666666666666,
		CategoryBreakdown: map[string]money.Amount{"Food": 3000, "Transport": 500},
		MonthlyBreakdown:  map[string]money.Amount{"2024-01": 3000, "2024-02": 500},
	}

	t.Run("should return the summary as JSON with rounded amounts", func(t *testing.T) {
		// given
		handler, _ := setupHandlerTest(sampleSummary, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		w := httptest.NewRecorder()

		// when
		handler.GetSummary(w, req)

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var dto SummaryDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, 35.00, dto.TotalAmount)
		assert.Equal(t, 3, dto.TotalCount)
		assert.Equal(t, 11.67, dto.AveragePerExpense)
		assert.Equal(t, map[string]float64{"Food": 30.00, "Transport": 5.00}, dto.CategoryBreakdown)
		assert.Equal(t, map[string]float64{"2024-01": 30.00, "2024-02": 5.00}, dto.MonthlyBreakdown)
	})

	t.Run("should pass filter parameters to the service without a limit", func(t *testing.T) {
		// given
		handler, service := setupHandlerTest(sampleSummary, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/summary?category_id=2&start_date=2024-01-01&end_date=2024-02-01&limit=5", nil)
		w := httptest.NewRecorder()

		// when
		handler.GetSummary(w, req)

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, service.lastFilter.CategoryId)
		assert.Equal(t, "2024-01-01", service.lastFilter.StartDate.Format(expense.DateFormat))
		assert.Equal(t, "2024-02-01", service.lastFilter.EndDate.Format(expense.DateFormat))
		assert.Equal(t, 0, service.lastFilter.Limit)
	})

	t.Run("should render CSV when requested", func(t *testing.T) {
		// given
		handler, _ := setupHandlerTest(sampleSummary, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/summary?format=csv", nil)
		w := httptest.NewRecorder()

		// when
		handler.GetSummary(w, req)

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "Total,35.00")
		assert.Contains(t, w.Body.String(), "Food,30.00")
	})

	t.Run("should reject a malformed filter", func(t *testing.T) {
		// given
		handler, _ := setupHandlerTest(sampleSummary, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/summary?start_date=yesterday", nil)
		w := httptest.NewRecorder()

		// when
		handler.GetSummary(w, req)

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should report malformed expense data as unprocessable", func(t *testing.T) {
		// given
		handler, _ := setupHandlerTest(Summary{}, fmt.Errorf("%w: expense 3 has no category", ErrInvalidInput))
		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		w := httptest.NewRecorder()

		// when
		handler.GetSummary(w, req)

		// then
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
