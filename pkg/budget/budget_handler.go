package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/rest"
	"github.com/spendwell/spendwell/pkg/money"
)

type BudgetDTO struct {
	Id          int     `json:"id"`
	CategoryId  int     `json:"categoryId"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Period      string  `json:"period"`
	Active      bool    `json:"active"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	Utilization float64 `json:"utilization"`
}

type UpsertBudgetDTO struct {
	CategoryId int         `json:"categoryId"`
	Amount     json.Number `json:"amount"`
	Period     string      `json:"period,omitempty"`
	Active     *bool       `json:"active,omitempty"`
}

type Handler struct {
	budgetService Service
}

func NewHandler(budgetService Service) *Handler {
	return &Handler{budgetService: budgetService}
}

// List godoc
// @Summary List the authenticated user's budgets with current-period spending
// @Tags Budget
// @Produce json
// @Success 200 {array} BudgetDTO
// @Router /api/budgets [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	statuses, err := h.budgetService.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	budgetsDTO := make([]BudgetDTO, 0, len(statuses))
	for _, status := range statuses {
		budgetsDTO = append(budgetsDTO, StatusToDTO(status))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Upsert godoc
// @Summary Create or replace the budget for a category
// @Tags Budget
// @Accept json
// @Produce json
// @Param budget body UpsertBudgetDTO true "Budget"
// @Success 200 {object} BudgetDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid budget"
// @Router /api/budgets [put]
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Upserting budget")

	var upsertDTO UpsertBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&upsertDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"})
		return
	}

	amount, err := money.ParseAmount(upsertDTO.Amount.String())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid amount format"})
		return
	}
	active := true
	if upsertDTO.Active != nil {
		active = *upsertDTO.Active
	}

	budget, err := h.budgetService.Upsert(r.Context(), Budget{
		CategoryId: upsertDTO.CategoryId,
		Amount:     amount,
		Period:     Period(upsertDTO.Period),
		Active:     active,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidBudget) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(rest.ErrorResponse{Error: err.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(StatusToDTO(StatusOf(budget, 0))); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Delete godoc
// @Summary Delete a budget owned by the authenticated user
// @Tags Budget
// @Param budgetId path int true "Budget ID"
// @Success 204
// @Failure 404 {string} string "Budget not found"
// @Router /api/budgets/{budgetId} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	budgetId, err := strconv.Atoi(vars["budgetId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.budgetService.Delete(r.Context(), budgetId); err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			http.Error(w, "Budget not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func StatusToDTO(status BudgetStatus) BudgetDTO {
	return BudgetDTO{
		Id:          status.Budget.Id,
		CategoryId:  status.Budget.CategoryId,
		Category:    status.Budget.CategoryName,
		Amount:      status.Budget.Amount.Float64(),
		Period:      string(status.Budget.Period),
		Active:      status.Budget.Active,
		Spent:       status.Spent.Float64(),
		Remaining:   status.Remaining.Float64(),
		Utilization: status.Utilization,
	}
}
