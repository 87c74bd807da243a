package app

import (
	"github.com/gorilla/mux"
	"github.com/spendwell/spendwell/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Registration and authentication
	r.HandleFunc("/api/register", deps.UserHandler.Register).Methods("POST")
	r.HandleFunc("/api/login", deps.AuthHandler.Login).Methods("POST")
	r.HandleFunc("/api/logout", deps.AuthHandler.Logout).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")

	// Categories
	r.HandleFunc("/api/categories", deps.CategoryHandler.List).Methods("GET")
	r.HandleFunc("/api/categories", deps.CategoryHandler.Create).Methods("POST")

	// Expenses
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expenses/{expenseId}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Summary
	r.HandleFunc("/api/summary", deps.SummaryHandler.GetSummary).Methods("GET")

	// Budgets
	r.HandleFunc("/api/budgets", deps.BudgetHandler.List).Methods("GET")
	r.HandleFunc("/api/budgets", deps.BudgetHandler.Upsert).Methods("PUT")
	r.HandleFunc("/api/budgets/{budgetId}", deps.BudgetHandler.Delete).Methods("DELETE")
}
