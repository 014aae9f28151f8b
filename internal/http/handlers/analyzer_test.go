package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tfxlab/internal/analyzer"
	"tfxlab/internal/domain"
	"tfxlab/internal/middleware"
	"tfxlab/internal/notify"
)

func TestAnalyzerRunUpgradeRequired(t *testing.T) {
	app, _, runner, _ := newTestApp()
	runner.analyze = func(user *domain.UserIdentity, req analyzer.Request) (analyzer.Outcome, error) {
		return analyzer.Outcome{}, domain.ErrUpgradeRequired
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyzer", strings.NewReader(`{"prompt":"x"}`))
	app.AnalyzerRun(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	body := decodeBody[errorBody](t, rec)
	if body.Error.Code != "upgrade_required" {
		t.Fatalf("error code = %q", body.Error.Code)
	}
	if !strings.Contains(body.Error.Message, "subscriptions@tfx-id.pro") {
		t.Fatalf("upgrade prompt must carry the subscription contact, got %q", body.Error.Message)
	}
}

func TestAnalyzerRunBusy(t *testing.T) {
	app, _, runner, _ := newTestApp()
	runner.analyze = func(user *domain.UserIdentity, req analyzer.Request) (analyzer.Outcome, error) {
		return analyzer.Outcome{}, domain.ErrAnalysisBusy
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyzer", strings.NewReader(`{"prompt":"x"}`))
	app.AnalyzerRun(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestAnalyzerRunSuccess(t *testing.T) {
	app, _, runner, _ := newTestApp()
	runner.analyze = func(user *domain.UserIdentity, req analyzer.Request) (analyzer.Outcome, error) {
		if user == nil || user.Tier != domain.TierStandard {
			t.Fatalf("expected session identity forwarded, got %+v", user)
		}
		if req.Prompt != "Analyze EURUSD" {
			t.Fatalf("prompt = %q", req.Prompt)
		}
		return analyzer.Outcome{RequestID: "req-1", Status: analyzer.StatusSucceeded, Result: "Bullish."}, nil
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/analyzer", strings.NewReader(`{"prompt":"Analyze EURUSD"}`))
	ctx := middleware.ContextWithIdentity(req.Context(), &domain.UserIdentity{Name: "Google User", Tier: domain.TierStandard})
	rec := httptest.NewRecorder()
	app.AnalyzerRun(rec, req.WithContext(ctx))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	out := decodeBody[analyzer.Outcome](t, rec)
	if out.Status != analyzer.StatusSucceeded || out.Result != "Bullish." {
		t.Fatalf("outcome = %+v", out)
	}
}

func TestAnalyzerRunFailedIsStillHTTP200(t *testing.T) {
	app, _, runner, _ := newTestApp()
	runner.analyze = func(user *domain.UserIdentity, req analyzer.Request) (analyzer.Outcome, error) {
		return analyzer.Outcome{RequestID: "req-2", Status: analyzer.StatusFailed, Result: analyzer.FailureMessage}, nil
	}
	rec := httptest.NewRecorder()
	app.AnalyzerRun(rec, httptest.NewRequest(http.MethodPost, "/v1/analyzer", strings.NewReader(`{}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	out := decodeBody[analyzer.Outcome](t, rec)
	if out.Result != analyzer.FailureMessage {
		t.Fatalf("result = %q, want fixed failure message", out.Result)
	}
}

func TestAnalyzerResult(t *testing.T) {
	app, _, runner, _ := newTestApp()
	runner.result = "AI Insight Report"
	rec := httptest.NewRecorder()
	app.AnalyzerResult(rec, httptest.NewRequest(http.MethodGet, "/v1/analyzer/result", nil))
	body := decodeBody[analyzerResultResponse](t, rec)
	if body.Result != "AI Insight Report" {
		t.Fatalf("result = %q", body.Result)
	}
}

func TestNotificationsCurrent(t *testing.T) {
	app, _, _, _ := newTestApp()
	rec := httptest.NewRecorder()
	app.NotificationsCurrent(rec, httptest.NewRequest(http.MethodGet, "/v1/notifications/current", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 when nothing is visible", rec.Code)
	}

	app.Notifier = &stubToasts{current: &notify.Event{Message: "AI Scan Finished.", Kind: notify.KindSuccess}}
	rec = httptest.NewRecorder()
	app.NotificationsCurrent(rec, httptest.NewRequest(http.MethodGet, "/v1/notifications/current", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	ev := decodeBody[notify.Event](t, rec)
	if ev.Message != "AI Scan Finished." {
		t.Fatalf("event = %+v", ev)
	}
}
