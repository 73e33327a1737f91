package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/poken-app/poken/internal/common"
	"github.com/poken-app/poken/internal/logging"
	"github.com/poken-app/poken/internal/profile"
	"github.com/poken-app/poken/internal/server/repositories/profiles"
)

type ProfileService struct {
	profiles profiles.Repository
	log      logging.Logger
}

func NewProfileService(repo profiles.Repository, log logging.Logger) *ProfileService {
	return &ProfileService{profiles: repo, log: log}
}

// Get returns the user's profile with defaults filled in. A user who has
// never saved one gets the default profile, not an error. A stored document
// that no longer parses is also replaced by defaults rather than failing
// the read.
func (s *ProfileService) Get(ctx context.Context, userID string) (profile.Profile, error) {
	document, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return profile.Default(), nil
		}
		return profile.Profile{}, common.ErrorInternal
	}

	p, err := profile.Unmarshal(document)
	if err != nil {
		s.log.Warn(ctx, "stored profile is not valid JSON, serving defaults", "user_id", userID, "error", err)
		return profile.Default(), nil
	}

	return p, nil
}

// Update persists the submitted profile and returns the authoritative
// version, with status coerced and the avatar placeholder applied.
func (s *ProfileService) Update(ctx context.Context, userID string, p profile.Profile) (profile.Profile, error) {
	saved := p.WithDefaults()

	document, err := json.Marshal(saved)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("marshal error: %w", err)
	}

	if err := s.profiles.Upsert(ctx, userID, document); err != nil {
		return profile.Profile{}, common.ErrorInternal
	}

	return saved, nil
}
