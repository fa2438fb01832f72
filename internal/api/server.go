// Package api exposes the JSON HTTP surface of the service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"dutchpay/internal/auth"
	"dutchpay/internal/metrics"
	"dutchpay/internal/middleware"
	"dutchpay/internal/service"
	"dutchpay/internal/storage"
)

// Server holds the services behind the HTTP handlers.
type Server struct {
	users    *service.UserService
	groups   *service.GroupService
	expenses *service.ExpenseService
	debts    *service.DebtService
	tokens   *auth.JWTManager

	corsOrigins []string
}

// NewServer wires the services onto a store and token manager.
func NewServer(store storage.Store, tokens *auth.JWTManager, corsOrigins []string) *Server {
	return &Server{
		users:       service.NewUserService(store),
		groups:      service.NewGroupService(store),
		expenses:    service.NewExpenseService(store),
		debts:       service.NewDebtService(store),
		tokens:      tokens,
		corsOrigins: corsOrigins,
	}
}

// Routes builds the router with middleware and every endpoint registered.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(metrics.Middleware)
	r.Use(middleware.SessionAuth(s.tokens))
	r.Use(middleware.RequestLogger)

	r.Get("/", s.handleRoot)
	r.Handle("/metrics", metrics.Handler())

	r.Post("/kakao-login", s.handleKakaoLogin)
	r.Get("/users", s.handleListUsers)
	r.Get("/users/{kakaoId}", s.handleGetUser)
	r.Put("/users/{kakaoId}", s.handleUpdateUser)

	r.Get("/debts/{kakaoId}/balance", s.handleBalances)
	r.Get("/debts/{kakaoId}/groups", s.handleGroupSummaries)
	r.Get("/debts/{kakaoId}/{personKakaoId}", s.handleDebtsWith)
	r.Post("/debts", s.handleCreateDebt)

	r.Post("/groups", s.handleCreateGroup)
	r.Post("/groups/{groupId}/simplify-debts", s.handleSimplifyDebts)

	r.Post("/expense", s.handleCreateExpense)
	r.Get("/expenses/{id}", s.handleExpensesByID)
	r.Get("/expenses/group/{groupId}", s.handleGroupExpenses)
	r.Delete("/expenses/{id}", s.handleDeleteExpense)

	r.Post("/delete/{kakaoId}/{personKakaoId}", s.handleSettle)

	return r
}

// handleRoot is the liveness endpoint.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}
