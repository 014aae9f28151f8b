package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tfxlab/internal/domain"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthSignUp creates a free-tier account.
func (a *App) AuthSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	identity, err := a.Identity.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.error(w, http.StatusBadRequest, "validation", "name is required")
			return
		}
		a.Logger.Error().Err(err).Msg("sign-up failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create account")
		return
	}
	a.json(w, http.StatusCreated, identity)
}

// AuthLogIn runs the mock login. Empty credentials are a silent no-op and
// answer 204 with no session change, matching the hosted client.
func (a *App) AuthLogIn(w http.ResponseWriter, r *http.Request) {
	var req logInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	identity, err := a.Identity.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		a.Logger.Error().Err(err).Msg("login failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to log in")
		return
	}
	if identity == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	a.json(w, http.StatusOK, identity)
}

// AuthGoogle runs the simulated federated sign-in.
func (a *App) AuthGoogle(w http.ResponseWriter, r *http.Request) {
	identity, err := a.Identity.SignInGoogle(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			// Client gave up during the simulated hand-off.
			return
		}
		a.Logger.Error().Err(err).Msg("google sign-in failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign in")
		return
	}
	a.json(w, http.StatusOK, identity)
}

// AuthLogOut clears the session slot.
func (a *App) AuthLogOut(w http.ResponseWriter, r *http.Request) {
	if err := a.Identity.SignOut(r.Context()); err != nil {
		a.Logger.Error().Err(err).Msg("sign-out failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the current identity.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	identity := a.currentIdentity(r)
	if identity == nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "no active session")
		return
	}
	a.json(w, http.StatusOK, identity)
}
