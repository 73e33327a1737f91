// Package services contains the application services of the Poken client:
// the profile synchronizer (local cache ⇄ remote source of truth) and the
// auth flow (login/signup/logout orchestration).
package services

import (
	"context"

	"github.com/poken-app/poken/internal/client/api"
	"github.com/poken-app/poken/internal/profile"
)

// Transport is the remote API surface the services depend on. api.Client
// implements it; tests substitute fakes.
type Transport interface {
	Login(ctx context.Context, userID, password string) (*api.AuthResponse, error)
	Signup(ctx context.Context, userID, password string) (*api.AuthResponse, error)
	FetchProfile(ctx context.Context) (profile.Profile, error)
	UpdateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error)
}

// ToastLevel classifies a transient user-facing notice.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// Notifier is the narrow surface through which the services reach the UI:
// transient toasts plus the two cross-cutting navigation events. It is
// injected so the auth flow never imports view/routing code.
type Notifier interface {
	Toast(message string, level ToastLevel)
	// SessionStarted signals "session became authenticated, navigate to app".
	SessionStarted()
	// SessionEnded signals "session ended, navigate to login".
	SessionEnded()
}

// Callbacks are the downstream consumers the auth flow invokes, injected to
// avoid circular coupling with history/interview components. Nil fields are
// skipped.
type Callbacks struct {
	// RefreshHistory reloads the interview history after login. Failures are
	// logged, never surfaced.
	RefreshHistory func(ctx context.Context) error
	// ResetInterview tears down any active interview session on logout.
	ResetInterview func()
}
