// Package analyzer orchestrates an AI chart-analysis run: tier gate, payload
// assembly, the external Gemini call and projection of the outcome into the
// single shared result slot.
package analyzer

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tfxlab/internal/domain"
	"tfxlab/internal/notify"
	"tfxlab/internal/providers/genai"
)

const (
	// DefaultPrompt is sent when the trader supplies no prompt text.
	DefaultPrompt = "Analyze this chart structure."
	// FailureMessage replaces the result on any provider error. Error
	// subtypes are deliberately collapsed; the trader cannot act on them.
	FailureMessage = "AI connection failed. Ensure your API Key is valid."
	// EmptyResultMessage stands in when the model answers with no text.
	EmptyResultMessage = "Analysis complete but no text returned."

	imageMIMEType = "image/jpeg"
)

// Status is the terminal state of one pipeline run.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Request is one analysis invocation. ImageDataURL may be a raw base64
// payload or a full data URL; any data-URL prefix is stripped before
// transmission.
type Request struct {
	Prompt       string `json:"prompt"`
	ImageDataURL string `json:"image"`
}

// Outcome is the projection of a finished run.
type Outcome struct {
	RequestID string `json:"request_id"`
	Status    Status `json:"status"`
	Result    string `json:"result"`
}

// TextGenerator is the external analysis collaborator.
type TextGenerator interface {
	GenerateContent(ctx context.Context, req genai.ContentRequest) (string, error)
}

// Notifier publishes transient status messages.
type Notifier interface {
	Publish(message string, kind notify.Kind)
}

// Pipeline owns the single result cell. Runs are mutually exclusive: a new
// invocation is rejected while one is outstanding. Each run is stamped with
// a generation; an abandoned run that resolves late finds its generation
// superseded and must not touch the slot.
type Pipeline struct {
	gen      TextGenerator
	notifier Notifier
	logger   zerolog.Logger

	mu         sync.Mutex
	inFlight   bool
	generation uint64
	result     string
}

// New constructs a pipeline around the given generator.
func New(gen TextGenerator, notifier Notifier, logger zerolog.Logger) *Pipeline {
	return &Pipeline{gen: gen, notifier: notifier, logger: logger}
}

// Result returns the content of the shared result cell.
func (p *Pipeline) Result() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Analyze runs one full cycle. A gate denial returns domain.ErrUpgradeRequired
// after publishing the upgrade toast; a run started while another is
// outstanding returns domain.ErrAnalysisBusy. Provider failures are not
// errors to the caller: they terminate in StatusFailed with the fixed
// failure message in the result slot.
func (p *Pipeline) Analyze(ctx context.Context, user *domain.UserIdentity, req Request) (Outcome, error) {
	if !domain.CanUseAIAnalysis(user) {
		p.notifier.Publish("Upgrade required for AI analysis.", notify.KindError)
		return Outcome{}, domain.ErrUpgradeRequired
	}

	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return Outcome{}, domain.ErrAnalysisBusy
	}
	p.inFlight = true
	p.generation++
	gen := p.generation
	p.result = ""
	p.mu.Unlock()

	requestID := uuid.NewString()
	content := assemblePayload(req)

	type resolution struct {
		text string
		err  error
	}
	done := make(chan resolution, 1)
	go func() {
		text, err := p.gen.GenerateContent(ctx, content)
		done <- resolution{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		// The caller walked away. Release the slot for the next run and
		// let the late resolution find itself superseded.
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
		go func() {
			res := <-done
			p.finish(gen, requestID, res.text, res.err)
		}()
		return Outcome{}, ctx.Err()
	case res := <-done:
		out := p.finish(gen, requestID, res.text, res.err)
		return out, nil
	}
}

// finish projects a resolution into the result slot, unless the run has been
// superseded by a newer generation.
func (p *Pipeline) finish(gen uint64, requestID, text string, err error) Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inFlight && gen == p.generation {
		p.inFlight = false
	}
	if gen != p.generation {
		p.logger.Debug().Str("request_id", requestID).Msg("discarding stale analysis result")
		return Outcome{RequestID: requestID}
	}
	if err != nil {
		p.logger.Error().Err(err).Str("request_id", requestID).Msg("analysis call failed")
		p.result = FailureMessage
		return Outcome{RequestID: requestID, Status: StatusFailed, Result: p.result}
	}
	if strings.TrimSpace(text) == "" {
		text = EmptyResultMessage
	}
	p.result = text
	p.notifier.Publish("AI Scan Finished.", notify.KindSuccess)
	return Outcome{RequestID: requestID, Status: StatusSucceeded, Result: p.result}
}

// assemblePayload applies the default instruction and splits off a data-URL
// prefix. The prefix must never reach the wire; Gemini expects bare base64.
func assemblePayload(req Request) genai.ContentRequest {
	prompt := req.Prompt
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultPrompt
	}
	content := genai.ContentRequest{Prompt: prompt}
	if req.ImageDataURL != "" {
		content.Image = &genai.InlineImage{
			Data:     stripDataURLPrefix(req.ImageDataURL),
			MIMEType: imageMIMEType,
		}
	}
	return content
}

func stripDataURLPrefix(raw string) string {
	if strings.HasPrefix(raw, "data:") {
		if idx := strings.Index(raw, ","); idx >= 0 {
			return raw[idx+1:]
		}
	}
	return raw
}
