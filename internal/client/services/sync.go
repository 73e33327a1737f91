package services

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/poken-app/poken/internal/client/profilestore"
	"github.com/poken-app/poken/internal/client/session"
	"github.com/poken-app/poken/internal/logging"
	"github.com/poken-app/poken/internal/profile"
)

// Outcome says where an edited profile ended up.
type Outcome string

const (
	// OutcomeSynced: the remote write succeeded and the server-returned
	// profile is the new truth.
	OutcomeSynced Outcome = "synced"
	// OutcomeLocalOnly: the edit landed in the local cache only, either
	// because there is no session token or the remote write failed.
	OutcomeLocalOnly Outcome = "local-only"
)

// SyncResult is the user-visible result of a write-on-edit.
type SyncResult struct {
	Outcome Outcome
	// RemoteErr is the remote failure behind a local-only outcome, nil when
	// there was no token to try with.
	RemoteErr error
}

// SyncService reconciles the session's profile between the local cache and
// the remote service. Reads prefer availability (a failed remote fetch
// keeps the cache), writes prefer the server but never lose the edit.
//
// No concurrency token is exchanged with the server: overlapping edits from
// multiple clients are last-write-wins.
type SyncService struct {
	transport Transport
	session   *session.Session
	store     *profilestore.Store
	log       logging.Logger
}

func NewSyncService(transport Transport, sess *session.Session, store *profilestore.Store, log logging.Logger) *SyncService {
	return &SyncService{transport: transport, session: sess, store: store, log: log}
}

// HydrateOnLogin populates the session profile after authentication: the
// local cache first as a low-latency default, then the remote profile,
// which wholly replaces it and is written back to the cache. A failed
// remote fetch is logged and the cached profile retained.
func (s *SyncService) HydrateOnLogin(ctx context.Context, userID string) {
	cached := s.store.Load(ctx, userID)
	s.session.Profile = cached

	remote, err := s.transport.FetchProfile(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch profile from API, using local cache", "error", err)
		return
	}

	s.session.Profile = remote
	s.store.Save(ctx, remote, userID)
}

// WriteOnEdit pushes a fully-formed edited profile. With a token it
// attempts the remote write-through; on success the server-returned profile
// becomes the truth. On failure, or without a token, the edit is persisted
// locally only. Either way the mutation lands at least in the local cache.
func (s *SyncService) WriteOnEdit(ctx context.Context, edited profile.Profile) SyncResult {
	result := SyncResult{Outcome: OutcomeLocalOnly}
	saved := edited.WithDefaults()

	if s.session.Authenticated() {
		remote, err := s.transport.UpdateProfile(ctx, saved)
		if err == nil {
			saved = remote
			result.Outcome = OutcomeSynced
		} else {
			s.log.Warn(ctx, "failed to save profile to API, falling back to local cache", "error", err)
			result.RemoteErr = err
		}
	}

	s.session.Profile = saved
	s.store.Save(ctx, saved, s.session.CurrentUserID)
	return result
}

// UpdateAvatar inlines the selected image as a data URI and routes it
// through the standard write-on-edit path as a single-field change.
func (s *SyncService) UpdateAvatar(ctx context.Context, image []byte) SyncResult {
	edited := s.session.Profile
	edited.AvatarData = dataURI(image)
	return s.WriteOnEdit(ctx, edited)
}

func dataURI(image []byte) string {
	mediaType := http.DetectContentType(image)
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(image)
}
