// Package session holds the in-memory state of the running client: the
// auth token, the current user id, the cached profile and the UI-facing
// view fields. There is exactly one Session per client; it is constructed
// by the application root and passed by reference into the components that
// are allowed to mutate it (auth flow and profile synchronizer). Everything
// else reads it.
package session

import (
	"strings"

	"github.com/poken-app/poken/internal/profile"
)

// View identifies a top-level screen of the client.
type View string

const (
	ViewLogin View = "login"
	ViewApp   View = "app"
)

// DefaultTab is the tab shown right after a session starts.
const DefaultTab = "top-page-view"

// Session is the process-wide client state. Access is single-threaded
// cooperative: mutations happen only from the auth flow and the profile
// synchronizer, so no locking is used.
type Session struct {
	token string

	CurrentUserID string
	Profile       profile.Profile

	// UI-facing fields. Owned by this store; consumers render them but
	// never write them.
	ActiveView    View
	ActiveTab     string
	InterviewID   string
	HistoryFilter string
	Mode          string
}

// New constructs a Session in the anonymous state with the given initial
// profile (typically rehydrated from the persistent cache at startup).
func New(initial profile.Profile) *Session {
	return &Session{
		Profile:       initial.WithDefaults(),
		ActiveView:    ViewLogin,
		ActiveTab:     DefaultTab,
		HistoryFilter: "all",
		Mode:          "training",
	}
}

// Token returns the bearer credential, empty when unauthenticated.
// Session satisfies the transport's token source with this method.
func (s *Session) Token() string { return s.token }

// SetToken installs the bearer credential obtained from authentication.
func (s *Session) SetToken(token string) { s.token = token }

// Authenticated reports whether a bearer credential is present.
func (s *Session) Authenticated() bool { return s.token != "" }

// SetUser records the authenticated user id, trimmed of whitespace.
func (s *Session) SetUser(userID string) {
	s.CurrentUserID = strings.TrimSpace(userID)
}

// Reset returns the session to the anonymous state: token and user id
// cleared, profile back to defaults, interview and history state dropped.
// The persistent cache is deliberately left untouched.
func (s *Session) Reset() {
	s.token = ""
	s.CurrentUserID = ""
	s.Profile = profile.Default()
	s.InterviewID = ""
	s.HistoryFilter = "all"
	s.ActiveView = ViewLogin
	s.ActiveTab = DefaultTab
}
