// Package identity tracks the signed-in learner. All persistence of
// mood history and progress is scoped to the current profile; with no
// profile the app runs anonymously and skips persistence.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hajira/edumood/internal/store"
)

// Profile is the signed-in learner.
type Profile struct {
	ID          string
	Email       string
	DisplayName string
	AvatarURL   string
}

// AuthError indicates a sign-in attempt was rejected.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Reason, e.Err)
	}
	return "auth: " + e.Reason
}

func (e *AuthError) Unwrap() error { return e.Err }

// Service manages the local session.
type Service struct {
	mu       sync.Mutex
	current  *Profile
	profiles store.ProfileRepo
	logger   *zap.Logger
}

// NewService creates a Service backed by the given profile repository.
// A nil logger disables logging.
func NewService(profiles store.ProfileRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{profiles: profiles, logger: logger}
}

// Current returns the signed-in profile, or nil when anonymous.
func (s *Service) Current() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	p := *s.current
	return &p
}

// SignIn creates or reuses the profile for the given email and makes it
// the active session.
func (s *Service) SignIn(ctx context.Context, email, name string) (*Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return nil, &AuthError{Reason: "invalid email"}
	}
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}

	rec := &store.ProfileRecord{Email: email, FullName: name}
	if err := s.profiles.Upsert(ctx, rec); err != nil {
		return nil, &AuthError{Reason: "save profile", Err: err}
	}
	if err := s.profiles.SetCurrent(ctx, rec.ID); err != nil {
		return nil, &AuthError{Reason: "remember session", Err: err}
	}

	p := profileFrom(rec)
	s.mu.Lock()
	s.current = &p
	s.mu.Unlock()

	s.logger.Info("signed in", zap.String("profile_id", p.ID))
	out := p
	return &out, nil
}

// SignOut clears the active session. The app continues anonymously.
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.profiles.ClearCurrent(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.logger.Info("signed out")
	return nil
}

// Restore loads the remembered session, if any. A missing session is
// not an error; the service simply stays anonymous.
func (s *Service) Restore(ctx context.Context) error {
	rec, err := s.profiles.Current(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	p := profileFrom(rec)
	s.mu.Lock()
	s.current = &p
	s.mu.Unlock()

	s.logger.Info("session restored", zap.String("profile_id", p.ID))
	return nil
}

func profileFrom(rec *store.ProfileRecord) Profile {
	return Profile{
		ID:          rec.ID,
		Email:       rec.Email,
		DisplayName: rec.FullName,
		AvatarURL:   rec.AvatarURL,
	}
}
