package handler

import (
	"log/slog"
	"net/http"

	"github.com/chanlloyd12/backend-repo/internal/middleware"
)

// Handlers объединяет обработчики всех ресурсов API
type Handlers struct {
	Accounts    *AccountHandler
	Departments *DepartmentHandler
	Employees   *EmployeeHandler
	Transfers   *TransferHandler
	Requests    *RequestHandler
	Workflows   *WorkflowHandler
}

// Router настраивает маршруты API
type Router struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	handlers Handlers
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, logger *slog.Logger) *Router {
	return &Router{
		mux:      http.NewServeMux(),
		logger:   logger,
		handlers: handlers,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	h := r.handlers

	r.mux.HandleFunc("POST /accounts/{$}", h.Accounts.Create)
	r.mux.HandleFunc("GET /accounts/{id}", h.Accounts.GetByID)

	r.mux.HandleFunc("POST /departments/{$}", h.Departments.Create)
	r.mux.HandleFunc("GET /departments/{$}", h.Departments.List)
	r.mux.HandleFunc("GET /departments/{id}", h.Departments.GetByID)
	r.mux.HandleFunc("PUT /departments/{id}", h.Departments.Update)
	r.mux.HandleFunc("DELETE /departments/{id}", h.Departments.Delete)

	r.mux.HandleFunc("POST /employees/{$}", h.Employees.Create)
	r.mux.HandleFunc("GET /employees/{$}", h.Employees.List)
	r.mux.HandleFunc("GET /employees/next-id", h.Employees.NextID)
	r.mux.HandleFunc("GET /employees/available-accounts", h.Employees.AvailableAccounts)
	r.mux.HandleFunc("GET /employees/{id}", h.Employees.GetByID)
	r.mux.HandleFunc("PUT /employees/{id}", h.Employees.Update)
	r.mux.HandleFunc("DELETE /employees/{id}", h.Employees.Delete)

	r.mux.HandleFunc("POST /transfers/{$}", h.Transfers.Create)
	r.mux.HandleFunc("GET /transfers/{$}", h.Transfers.List)
	r.mux.HandleFunc("GET /transfers/{id}", h.Transfers.GetByID)
	r.mux.HandleFunc("GET /transfers/employee/{employeeId}", h.Transfers.ListByEmployee)
	r.mux.HandleFunc("DELETE /transfers/{id}", h.Transfers.Delete)

	r.mux.HandleFunc("POST /requests/{$}", h.Requests.Create)
	r.mux.HandleFunc("GET /requests/{$}", h.Requests.List)
	r.mux.HandleFunc("GET /requests/{id}", h.Requests.GetByID)
	r.mux.HandleFunc("GET /requests/employee/{employeeId}", h.Requests.ListByEmployee)
	r.mux.HandleFunc("PUT /requests/{id}", h.Requests.Update)
	r.mux.HandleFunc("DELETE /requests/{id}", h.Requests.Delete)

	// Процессы создаются только вместе с заявкой или переводом
	r.mux.HandleFunc("GET /workflows/{$}", h.Workflows.List)
	r.mux.HandleFunc("GET /workflows/{id}", h.Workflows.GetByID)
	r.mux.HandleFunc("GET /workflows/employee/{employeeId}", h.Workflows.ListByEmployee)
	r.mux.HandleFunc("PUT /workflows/{id}", h.Workflows.Update)
	r.mux.HandleFunc("DELETE /workflows/{id}", h.Workflows.Delete)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}
