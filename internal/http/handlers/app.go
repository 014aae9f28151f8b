// Package handlers exposes the laboratory over HTTP. Views of the hosted
// client map one-to-one onto routes; each handler resolves the session from
// the request context and delegates to the owning service.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"tfxlab/internal/analyzer"
	"tfxlab/internal/catalog"
	"tfxlab/internal/domain"
	"tfxlab/internal/infra"
	"tfxlab/internal/middleware"
	"tfxlab/internal/notify"
)

// IdentityService is the mock identity provider surface consumed by the
// auth handlers.
type IdentityService interface {
	SignUp(ctx context.Context, name, email, password string) (*domain.UserIdentity, error)
	LogIn(ctx context.Context, email, password string) (*domain.UserIdentity, error)
	SignInGoogle(ctx context.Context) (*domain.UserIdentity, error)
	SignOut(ctx context.Context) error
}

// AnalysisRunner is the pipeline surface consumed by the analyzer handlers.
type AnalysisRunner interface {
	Analyze(ctx context.Context, user *domain.UserIdentity, req analyzer.Request) (analyzer.Outcome, error)
	Result() string
}

// NotificationSource reads the currently visible toast.
type NotificationSource interface {
	Current() *notify.Event
}

// Contacts is the static support configuration.
type Contacts struct {
	Subscription string `json:"subscription"`
	General      string `json:"general"`
}

// App is the handler container; main wires it once at startup.
type App struct {
	Logger    infra.Logger
	Identity  IdentityService
	Analyzer  AnalysisRunner
	Notifier  NotificationSource
	Clipboard catalog.ClipboardSink
	Contacts  Contacts
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

func (a *App) currentIdentity(r *http.Request) *domain.UserIdentity {
	return middleware.IdentityFromContext(r.Context())
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
