package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"colorsrest/internal/server/identity"
	"colorsrest/internal/server/models"
	"colorsrest/internal/server/repository"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	var body registerRequest
	if err := r.decodeJSON(w, req, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Email == "" {
		writeMessage(w, http.StatusBadRequest, "The Email field is required.")
		return
	}
	raw, err := r.services.Auth.Register(req.Context(), body.Email, body.Password)
	if err != nil {
		var policy *identity.PolicyError
		switch {
		case errors.As(err, &policy):
			writeMessage(w, http.StatusBadRequest, policy.Error())
		case errors.Is(err, repository.ErrDuplicateEmail):
			writeMessage(w, http.StatusBadRequest, "Email is already taken.")
		default:
			r.internalError(w, "register", err)
		}
		return
	}
	r.logger.Info("user registered", zap.String("email", body.Email))
	writeJSON(w, http.StatusOK, models.TokenResponse{Token: raw})
}

// handleLogin answers the same generic message whether the email is unknown
// or the password is wrong.
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	var body loginRequest
	if err := r.decodeJSON(w, req, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	raw, err := r.services.Auth.Login(req.Context(), body.Email, body.Password)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid Login")
		return
	}
	writeJSON(w, http.StatusOK, models.TokenResponse{Token: raw})
}
