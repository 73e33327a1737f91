package profiles

import "context"

// Repository stores one profile document per user, as raw JSON. Get returns
// common.ErrorNotFound when the user has never saved a profile.
type Repository interface {
	Get(ctx context.Context, userID string) ([]byte, error)
	Upsert(ctx context.Context, userID string, document []byte) error
}
