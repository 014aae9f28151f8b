package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tfxlab/internal/analyzer"
	"tfxlab/internal/domain"
)

type analyzerResultResponse struct {
	Result string `json:"result"`
}

// AnalyzerRun submits one analysis request. Gate denials answer 403 with the
// upgrade call-to-action; a run started while another is outstanding answers
// 409. Provider failures are not HTTP errors: the run terminates normally
// with the fixed failure message in its result.
func (a *App) AnalyzerRun(w http.ResponseWriter, r *http.Request) {
	var req analyzer.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	out, err := a.Analyzer.Analyze(r.Context(), a.currentIdentity(r), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUpgradeRequired):
			a.error(w, http.StatusForbidden, "upgrade_required",
				fmt.Sprintf("AI analysis requires Standard or Premium access. Contact %s to upgrade.", a.Contacts.Subscription))
		case errors.Is(err, domain.ErrAnalysisBusy):
			a.error(w, http.StatusConflict, "busy", "an analysis is already in progress")
		case r.Context().Err() != nil:
			// Client walked away; nothing left to answer.
		default:
			a.Logger.Error().Err(err).Msg("analysis failed")
			a.error(w, http.StatusInternalServerError, "internal", "analysis failed")
		}
		return
	}
	a.json(w, http.StatusOK, out)
}

// AnalyzerResult reads the shared result cell.
func (a *App) AnalyzerResult(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, analyzerResultResponse{Result: a.Analyzer.Result()})
}

// NotificationsCurrent returns the visible toast, or 204 when none.
func (a *App) NotificationsCurrent(w http.ResponseWriter, r *http.Request) {
	ev := a.Notifier.Current()
	if ev == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	a.json(w, http.StatusOK, ev)
}
