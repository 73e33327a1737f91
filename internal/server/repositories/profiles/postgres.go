package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/poken-app/poken/internal/common"
	"github.com/poken-app/poken/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) ([]byte, error) {
	query :=
		`SELECT document FROM profiles
		 WHERE user_id = $1
		 `

	var document []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&document)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return document, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, userID string, document []byte) error {
	query :=
		`INSERT INTO profiles (user_id, document, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id)
		 DO UPDATE SET document = EXCLUDED.document, updated_at = now()
		 `

	_, err := r.db.ExecContext(ctx, query, userID, document)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
