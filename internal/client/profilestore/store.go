// Package profilestore keeps the durable, per-user profile cache. It sits
// between the session and the raw key-value repository: keys are namespaced
// by user id, a pre-multi-user legacy record is migrated on the way in, and
// every storage failure is downgraded to defaults right here — the cache is
// not the source of truth, so its errors never reach callers.
package profilestore

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/poken-app/poken/internal/client/repositories/profilecache"
	"github.com/poken-app/poken/internal/logging"
	"github.com/poken-app/poken/internal/profile"
)

// BaseKey is the versioned storage key prefix. A bare BaseKey record is the
// legacy, pre-multi-user cache entry.
const BaseKey = "poken_profile_v1"

type Store struct {
	repo profilecache.Repository
	log  logging.Logger
}

func New(repo profilecache.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// KeyFor returns the cache key for userID: "<BaseKey>:<id>" when an id is
// known, the bare BaseKey otherwise (used only pre-authentication).
func KeyFor(userID string) string {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return BaseKey
	}
	return BaseKey + ":" + trimmed
}

// Load reads the cached profile for userID. When no namespaced record
// exists yet, a legacy bare-key record (if any) is merged over defaults
// instead. A missing, corrupt or unreadable record yields defaults; Load
// never fails.
func (s *Store) Load(ctx context.Context, userID string) profile.Profile {
	key := KeyFor(userID)

	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "failed to load profile from cache", "key", key, "error", err)
		return profile.Default()
	}

	if raw == nil && key != BaseKey {
		raw, err = s.repo.Get(ctx, BaseKey)
		if err != nil {
			s.log.Warn(ctx, "failed to load legacy profile from cache", "error", err)
			return profile.Default()
		}
	}
	if raw == nil {
		return profile.Default()
	}

	p, err := profile.Unmarshal(raw)
	if err != nil {
		s.log.Warn(ctx, "discarding unparsable cached profile", "key", key, "error", err)
		return profile.Default()
	}
	return p
}

// Save writes the profile under the namespaced key for userID. A per-user
// write also removes the legacy bare-key record, atomically: the one-way
// migration can never drop the legacy entry without the namespaced write
// landing. Failures are logged and swallowed.
func (s *Store) Save(ctx context.Context, p profile.Profile, userID string) {
	key := KeyFor(userID)

	data, err := json.Marshal(p)
	if err != nil {
		s.log.Warn(ctx, "failed to serialize profile for cache", "key", key, "error", err)
		return
	}

	if key == BaseKey {
		if err := s.repo.Set(ctx, key, data); err != nil {
			s.log.Warn(ctx, "failed to save profile to cache", "key", key, "error", err)
		}
		return
	}

	if err := s.repo.Promote(ctx, key, data, BaseKey); err != nil {
		s.log.Warn(ctx, "failed to save profile to cache", "key", key, "error", err)
	}
}
