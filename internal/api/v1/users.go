package v1

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/api/middleware"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
)

// handleRegister handles user registration.
func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	handler := middleware.ValidateJSON(func(w http.ResponseWriter, req *http.Request, body *domain.CreateUserRequest) {
		user, err := r.services.Auth.Register(req.Context(), body)
		if err != nil {
			if errors.Is(err, domain.ErrUserAlreadyExists) {
				writeError(w, http.StatusConflict, domain.ErrUserAlreadyExists.Error())
				return
			}
			writeError(w, http.StatusBadRequest, "Registration failed")
			return
		}

		writeJSON(w, http.StatusCreated, user)
	})

	handler.ServeHTTP(w, req)
}

// handleLogin handles session creation.
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	handler := middleware.ValidateJSON(func(w http.ResponseWriter, req *http.Request, body *domain.LoginRequest) {
		login, err := r.services.Auth.Login(req.Context(), body.Email, body.Password)
		if err != nil {
			if errors.Is(err, domain.ErrAuthenticationFailed) {
				writeError(w, http.StatusUnauthorized, domain.ErrAuthenticationFailed.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		writeJSON(w, http.StatusOK, login)
	})

	handler.ServeHTTP(w, req)
}

// handleRefresh handles access token refresh.
func (r *Router) handleRefresh(w http.ResponseWriter, req *http.Request) {
	handler := middleware.ValidateJSON(func(w http.ResponseWriter, req *http.Request, body *domain.RefreshRequest) {
		token, err := r.services.Auth.RefreshToken(req.Context(), body.RefreshToken)
		if err != nil {
			writeError(w, http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			return
		}

		writeJSON(w, http.StatusOK, token)
	})

	handler.ServeHTTP(w, req)
}

// handleProfile returns the authenticated user's profile.
func (r *Router) handleProfile(w http.ResponseWriter, req *http.Request) {
	r.authenticated(func(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
		user, err := r.services.User.GetProfile(req.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to get profile")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}).ServeHTTP(w, req)
}
