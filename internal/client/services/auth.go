package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/poken-app/poken/internal/client/session"
	"github.com/poken-app/poken/internal/logging"
)

// Localized fallback messages for the two recognized auth failures.
const (
	loginFailedMessage  = "ユーザーIDまたはパスワードが正しくありません。"
	signupFailedMessage = "このユーザーIDは既に使用されています。"

	loggedInToast  = "ログインしました。"
	loggedOutToast = "ログアウトしました。"
)

var alreadyPattern = regexp.MustCompile(`(?i)already`)

// AuthService orchestrates login, signup and logout: token acquisition,
// session population, profile hydration, and the navigation/teardown
// signals consumed by the UI layer.
type AuthService struct {
	transport Transport
	session   *session.Session
	sync      *SyncService
	notifier  Notifier
	callbacks Callbacks
	log       logging.Logger
}

func NewAuthService(transport Transport, sess *session.Session, sync *SyncService, notifier Notifier, callbacks Callbacks, log logging.Logger) *AuthService {
	return &AuthService{
		transport: transport,
		session:   sess,
		sync:      sync,
		notifier:  notifier,
		callbacks: callbacks,
		log:       log,
	}
}

// Login authenticates against the backend. On failure the returned error
// carries the inline form message: the recognized invalid-credentials
// response maps to a localized fallback, everything else surfaces the raw
// transport message.
func (a *AuthService) Login(ctx context.Context, userID, password string) error {
	resp, err := a.transport.Login(ctx, userID, password)
	if err != nil {
		return normalizeAuthError(err, loginFailedMessage, func(msg string) bool {
			return strings.Contains(msg, "Invalid user ID or password")
		})
	}

	a.establishSession(ctx, userID, resp.AccessToken)
	return nil
}

// Signup creates an account and starts its first session. A duplicate user
// id maps to the localized fallback message.
func (a *AuthService) Signup(ctx context.Context, userID, password string) error {
	resp, err := a.transport.Signup(ctx, userID, password)
	if err != nil {
		return normalizeAuthError(err, signupFailedMessage, func(msg string) bool {
			return alreadyPattern.MatchString(msg)
		})
	}

	a.establishSession(ctx, userID, resp.AccessToken)
	return nil
}

// establishSession populates the session and fans out to the injected
// consumers. Token assignment precedes the authenticated profile fetch;
// local hydration precedes the remote one (which wins when it arrives).
func (a *AuthService) establishSession(ctx context.Context, userID, token string) {
	a.session.SetToken(token)
	a.session.SetUser(userID)

	a.sync.HydrateOnLogin(ctx, a.session.CurrentUserID)

	a.session.ActiveView = session.ViewApp
	a.session.ActiveTab = session.DefaultTab
	a.notifier.Toast(loggedInToast, ToastInfo)
	a.notifier.SessionStarted()

	if a.callbacks.RefreshHistory != nil {
		if err := a.callbacks.RefreshHistory(ctx); err != nil {
			a.log.Warn(ctx, "failed to load interview history", "error", err)
		}
	}
}

// Logout tears the session down: token and user id cleared, profile back to
// defaults, injected teardown invoked, session-ended signaled. The local
// cache for the user is left untouched and is recoverable on next login.
// Logout never fails.
func (a *AuthService) Logout(ctx context.Context) {
	a.session.Reset()

	if a.callbacks.ResetInterview != nil {
		a.callbacks.ResetInterview()
	}

	a.notifier.SessionEnded()
	a.notifier.Toast(loggedOutToast, ToastInfo)
}

// normalizeAuthError maps a recognized transport failure to its localized
// fallback message; unrecognized messages pass through untouched, and an
// empty message also falls back.
func normalizeAuthError(err error, fallback string, recognized func(string) bool) error {
	msg := err.Error()
	if msg == "" || recognized(msg) {
		return errors.New(fallback)
	}
	return err
}
