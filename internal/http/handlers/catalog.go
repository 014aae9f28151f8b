package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tfxlab/internal/catalog"
	"tfxlab/internal/domain"
)

// SignalsList returns the canned signal desk.
func (a *App) SignalsList(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, catalog.Signals())
}

type signalCopyResponse struct {
	Entry string `json:"entry"`
}

// SignalCopy formats a signal's entry line and hands it to the clipboard
// sink. The sink is fire-and-forget; the formatted line is echoed back.
func (a *App) SignalCopy(w http.ResponseWriter, r *http.Request) {
	s, err := catalog.SignalByID(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "signal not found")
		return
	}
	entry := catalog.FormatSignalEntry(s)
	a.Clipboard.Write(r.Context(), entry)
	a.json(w, http.StatusOK, signalCopyResponse{Entry: entry})
}

// StudyList returns the education track.
func (a *App) StudyList(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, catalog.StudyMap())
}

type chartResponse struct {
	Pairs  []string            `json:"pairs"`
	Config catalog.ChartConfig `json:"config"`
}

// Chart supplies the TradingView widget parameters for a pair/interval.
func (a *App) Chart(w http.ResponseWriter, r *http.Request) {
	cfg, err := catalog.NewChartConfig(r.URL.Query().Get("pair"), r.URL.Query().Get("interval"))
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedPair) {
			a.error(w, http.StatusBadRequest, "bad_request", "unsupported pair")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to build chart config")
		return
	}
	a.json(w, http.StatusOK, chartResponse{Pairs: catalog.ChartPairs(), Config: cfg})
}

// Support returns the static contact configuration.
func (a *App) Support(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Contacts)
}
