// Package identity implements the mock identity provider of the laboratory.
// There is no real credential verification: each entry path synthesizes a
// fully-populated account with a path-specific tier and audit entry, persists
// it through the session store and announces the outcome.
package identity

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"tfxlab/internal/domain"
	"tfxlab/internal/notify"
)

// Defaults for the simulated Google hand-off.
const DefaultGoogleDelay = 1500 * time.Millisecond

// SessionWriter is the persistence boundary the provider writes through.
type SessionWriter interface {
	Save(identity domain.UserIdentity) error
	Clear() error
}

// Notifier publishes transient status messages.
type Notifier interface {
	Publish(message string, kind notify.Kind)
}

// Service produces and destroys the single current identity.
type Service struct {
	sessions    SessionWriter
	notifier    Notifier
	googleDelay time.Duration
	now         func() time.Time
	randInt     func(n int) int
}

// NewService wires the provider to its collaborators. A non-positive delay
// falls back to DefaultGoogleDelay.
func NewService(sessions SessionWriter, notifier Notifier, googleDelay time.Duration) *Service {
	if googleDelay <= 0 {
		googleDelay = DefaultGoogleDelay
	}
	return &Service{
		sessions:    sessions,
		notifier:    notifier,
		googleDelay: googleDelay,
		now:         time.Now,
		randInt:     rand.Intn,
	}
}

// SignUp creates a fresh free-tier account. The name is the only field that
// is actually validated.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (*domain.UserIdentity, error) {
	if strings.TrimSpace(name) == "" {
		s.notifier.Publish("Name is required.", notify.KindError)
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	identity := domain.UserIdentity{
		Name:       name,
		Email:      email,
		TFXID:      s.newTFXID(""),
		Tier:       domain.TierFree,
		ExpiryDate: "N/A",
		AuditLogs: []domain.AuditEntry{
			{Action: "Account created", Timestamp: s.timestamp()},
		},
		StudyProgress: domain.StudyProgress{Completed: 0, Total: 10, LastLesson: "None"},
	}
	if err := s.sessions.Save(identity); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.notifier.Publish("Welcome to TFX ID!", notify.KindSuccess)
	return &identity, nil
}

// LogIn accepts any non-empty credential pair and always grants Premium.
// This mirrors the demo policy of the hosted client and is deliberately not
// a real authentication rule. Empty email or password is a silent no-op:
// no identity, no session write, no error.
func (s *Service) LogIn(ctx context.Context, email, password string) (*domain.UserIdentity, error) {
	if email == "" || password == "" {
		return nil, nil
	}
	identity := domain.UserIdentity{
		Name:       "Trader One",
		Email:      email,
		TFXID:      s.newTFXID("L"),
		Tier:       domain.TierPremium,
		ExpiryDate: "Jan 2026",
		AuditLogs: []domain.AuditEntry{
			{Action: "Login successful", Timestamp: s.timestamp()},
		},
		StudyProgress: domain.StudyProgress{Completed: 4, Total: 10, LastLesson: "Institutional Concepts"},
	}
	if err := s.sessions.Save(identity); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.notifier.Publish("Welcome back!", notify.KindSuccess)
	return &identity, nil
}

// SignInGoogle simulates the federated hand-off: a fixed latency window, then
// a standard-tier account with the Google source tag.
func (s *Service) SignInGoogle(ctx context.Context) (*domain.UserIdentity, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.googleDelay):
	}
	identity := domain.UserIdentity{
		Name:       "Google User",
		Email:      "user@gmail.com",
		TFXID:      s.newTFXID("G"),
		Tier:       domain.TierStandard,
		ExpiryDate: "Dec 2025",
		AuditLogs: []domain.AuditEntry{
			{Action: "Google sign-in successful", Timestamp: s.timestamp()},
		},
		StudyProgress: domain.StudyProgress{Completed: 1, Total: 10, LastLesson: "None"},
	}
	if err := s.sessions.Save(identity); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.notifier.Publish("Signed in with Google.", notify.KindSuccess)
	return &identity, nil
}

// SignOut clears the persisted session. Signing out twice is harmless.
func (s *Service) SignOut(ctx context.Context) error {
	return s.sessions.Clear()
}

// newTFXID draws a laboratory id: TFX prefix, optional source tag, five
// digits from [10000, 99999]. Uniqueness is probabilistic, which is fine for
// a mock identity; tests rely on the shape, not the value.
func (s *Service) newTFXID(source string) string {
	n := 10000 + s.randInt(90000)
	if source == "" {
		return fmt.Sprintf("TFX-%d", n)
	}
	return fmt.Sprintf("TFX-%s-%d", source, n)
}

func (s *Service) timestamp() string {
	return s.now().Format("3:04:05 PM")
}
