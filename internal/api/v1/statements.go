package v1

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/api/middleware"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
)

// handleDeposit records a deposit for the authenticated user.
func (r *Router) handleDeposit(w http.ResponseWriter, req *http.Request) {
	r.recordStatement(w, req, domain.OperationDeposit)
}

// handleWithdraw records a withdrawal for the authenticated user.
func (r *Router) handleWithdraw(w http.ResponseWriter, req *http.Request) {
	r.recordStatement(w, req, domain.OperationWithdraw)
}

// recordStatement is the shared deposit/withdraw handler. The operation type
// comes from the route, never from the request body.
func (r *Router) recordStatement(w http.ResponseWriter, req *http.Request, op domain.OperationType) {
	r.authenticated(func(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
		handler := middleware.ValidateJSON(func(w http.ResponseWriter, req *http.Request, body *domain.CreateStatementRequest) {
			stmt, err := r.services.Statement.Record(req.Context(), userID, op, body)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUserNotFound):
					writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
				case errors.Is(err, domain.ErrInsufficientFunds):
					writeError(w, http.StatusBadRequest, domain.ErrInsufficientFunds.Error())
				default:
					writeError(w, http.StatusBadRequest, "Failed to record statement")
				}
				return
			}

			writeJSON(w, http.StatusCreated, stmt)
		})

		handler.ServeHTTP(w, req)
	}).ServeHTTP(w, req)
}

// handleGetStatement fetches a single statement owned by the caller.
func (r *Router) handleGetStatement(w http.ResponseWriter, req *http.Request) {
	r.authenticated(func(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
		statementID, err := uuid.Parse(req.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid statement ID format")
			return
		}

		stmt, err := r.services.Statement.Get(req.Context(), userID, statementID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUserNotFound):
				writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
			case errors.Is(err, domain.ErrStatementNotFound):
				writeError(w, http.StatusNotFound, domain.ErrStatementNotFound.Error())
			default:
				writeError(w, http.StatusInternalServerError, "Failed to get statement")
			}
			return
		}

		writeJSON(w, http.StatusOK, stmt)
	}).ServeHTTP(w, req)
}
