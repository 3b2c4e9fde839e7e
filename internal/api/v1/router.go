// Package v1 provides version 1 of the HTTP API.
package v1

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/api/middleware"
	"github.com/kaan-t/go-fin-ledger/internal/auth"
	"github.com/kaan-t/go-fin-ledger/internal/service"
)

// Router holds the dependencies needed for v1 API routes.
type Router struct {
	services   *service.Services
	jwtManager *auth.JWTManager
}

// NewRouter creates a new v1 API router.
func NewRouter(services *service.Services, jwtManager *auth.JWTManager) *Router {
	return &Router{
		services:   services,
		jwtManager: jwtManager,
	}
}

// RegisterRoutes registers all v1 API routes on the provided mux.
func (r *Router) RegisterRoutes(mux *http.ServeMux) {
	// Health/ping endpoint
	mux.HandleFunc("GET /api/v1/ping", r.handlePing)

	// Auth routes
	mux.HandleFunc("POST /api/v1/users", r.handleRegister)
	mux.HandleFunc("POST /api/v1/sessions", r.handleLogin)
	mux.HandleFunc("POST /api/v1/sessions/refresh", r.handleRefresh)
	mux.HandleFunc("GET /api/v1/profile", r.handleProfile)

	// Statement routes. Balance is registered before {id} so the literal
	// segment wins the route match.
	mux.HandleFunc("POST /api/v1/statements/deposit", r.handleDeposit)
	mux.HandleFunc("POST /api/v1/statements/withdraw", r.handleWithdraw)
	mux.HandleFunc("GET /api/v1/statements/balance", r.handleGetBalance)
	mux.HandleFunc("GET /api/v1/statements/{id}", r.handleGetStatement)
}

// handlePing responds to ping requests for testing connectivity.
func (r *Router) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message":"pong"}`))
}

// authenticated wraps a handler with the JWT middleware and hands it the
// caller's user ID.
func (r *Router) authenticated(handler func(w http.ResponseWriter, req *http.Request, userID uuid.UUID)) http.Handler {
	authMiddleware := middleware.AuthMiddleware(r.jwtManager)

	return authMiddleware(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		claims, ok := middleware.GetUserFromContext(req.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		handler(w, req, claims.UserID)
	}))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Status is already written; nothing sensible left to do.
		return
	}
}

// errorResponse is the fixed error envelope of the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: status})
}
