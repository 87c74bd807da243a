package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/rest"
	"github.com/spendwell/spendwell/pkg/money"
)

// DateFormat is the wire format for calendar days.
const DateFormat = "2006-01-02"

const defaultListLimit = 50

type ExpenseDTO struct {
	Id          int       `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	CategoryId  int       `json:"categoryId"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateExpenseDTO struct {
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	CategoryId  int         `json:"categoryId"`
	Date        string      `json:"date,omitempty"`
}

type Handler struct {
	expenseService Service
}

func NewHandler(expenseService Service) *Handler {
	return &Handler{expenseService: expenseService}
}

// List godoc
// @Summary List the authenticated user's expenses
// @Tags Expense
// @Produce json
// @Param category_id query int false "Category filter"
// @Param start_date query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of records (default 50)"
// @Success 200 {array} ExpenseDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid filter"
// @Router /api/expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter, err := FilterFromQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid filter", Details: err.Error()})
		return
	}
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}

	expenses, err := h.expenseService.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	expensesDTO := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		expensesDTO = append(expensesDTO, ExpenseToDTO(expense))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expensesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Create godoc
// @Summary Record a new expense
// @Tags Expense
// @Accept json
// @Produce json
// @Param expense body CreateExpenseDTO true "Expense"
// @Success 201 {object} ExpenseDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating expense")

	var createDTO CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"})
		return
	}

	amount, err := money.ParseAmount(createDTO.Amount.String())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid amount format"})
		return
	}

	var date time.Time
	if createDTO.Date != "" {
		date, err = time.ParseInLocation(DateFormat, createDTO.Date, time.UTC)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid date format", Details: "date must be YYYY-MM-DD"})
			return
		}
	}

	created, err := h.expenseService.Create(r.Context(), Expense{
		Description: createDTO.Description,
		Amount:      amount,
		CategoryId:  createDTO.CategoryId,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidExpense) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(rest.ErrorResponse{Error: err.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Delete godoc
// @Summary Delete an expense owned by the authenticated user
// @Tags Expense
// @Param expenseId path int true "Expense ID"
// @Success 204
// @Failure 404 {string} string "Expense not found"
// @Router /api/expenses/{expenseId} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	expenseId, err := strconv.Atoi(vars["expenseId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.expenseService.Delete(r.Context(), expenseId); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FilterFromQuery parses the shared filter query parameters.
func FilterFromQuery(r *http.Request) (Filter, error) {
	var filter Filter
	query := r.URL.Query()

	if v := query.Get("category_id"); v != "" {
		categoryId, err := strconv.Atoi(v)
		if err != nil {
			return Filter{}, err
		}
		filter.CategoryId = categoryId
	}
	if v := query.Get("start_date"); v != "" {
		startDate, err := time.ParseInLocation(DateFormat, v, time.UTC)
		if err != nil {
			return Filter{}, err
		}
		filter.StartDate = startDate
	}
	if v := query.Get("end_date"); v != "" {
		endDate, err := time.ParseInLocation(DateFormat, v, time.UTC)
		if err != nil {
			return Filter{}, err
		}
		filter.EndDate = endDate
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return Filter{}, err
		}
		filter.Limit = limit
	}

	return filter, nil
}

func ExpenseToDTO(expense Expense) ExpenseDTO {
	return ExpenseDTO{
		Id:          expense.Id,
		Description: expense.Description,
		Amount:      expense.Amount.Float64(),
		Category:    expense.CategoryName,
		CategoryId:  expense.CategoryId,
		Date:        expense.Date.Format(DateFormat),
		CreatedAt:   expense.CreatedAt,
	}
}
