package app

import (
	"database/sql"

	"github.com/spendwell/spendwell/internal/config"
	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/spendwell/spendwell/internal/utils"
	"github.com/spendwell/spendwell/pkg/budget"
	"github.com/spendwell/spendwell/pkg/category"
	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/session"
	"github.com/spendwell/spendwell/pkg/summary"
	"github.com/spendwell/spendwell/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	SessionService session.Service
	AuthHandler    *session.AuthHandler

	CategoryService category.Service
	CategoryHandler *category.Handler

	ExpenseRepo    expense.Repo
	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	SummaryService *summary.ServiceImpl
	CsvRenderer    *summary.CsvRendererImpl
	SummaryHandler *summary.Handler

	BudgetRepo     budget.Repo
	BudgetService  *budget.BudgetServiceImpl
	BudgetHandler  *budget.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.SessionService = session.NewSessionService(session.NewSessionRepo(db), cfg.Session.TTL, deps.Clock)
	deps.AuthHandler = session.NewAuthHandler(deps.UserService, deps.SessionService, cfg.Session.SecureCookie)

	deps.CategoryService = category.NewCategoryService(category.NewCategoryRepo(db))
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo, deps.CategoryService, deps.EventBus, deps.Clock)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.SummaryService = summary.NewService(deps.ExpenseRepo)
	deps.CsvRenderer = summary.NewCsvRenderer()
	deps.SummaryHandler = summary.NewHandler(deps.SummaryService, deps.CsvRenderer)

	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo, deps.ExpenseRepo, deps.CategoryService, deps.Clock)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)
	deps.BudgetService.RegisterEventHandlers(deps.EventBus)

	return deps
}
