package v1

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
)

// handleGetBalance returns the caller's derived balance together with the
// full statement history it was folded from.
func (r *Router) handleGetBalance(w http.ResponseWriter, req *http.Request) {
	r.authenticated(func(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
		balance, err := r.services.Balance.Get(req.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to get balance")
			return
		}

		writeJSON(w, http.StatusOK, balance)
	}).ServeHTTP(w, req)
}
