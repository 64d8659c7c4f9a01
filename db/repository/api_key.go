package repository

import (
	"context"
	"database/sql"
	"twitter_post_api/internal/models"
)

func (dbr *DBRepository) GetAPIKeyByHash(ctx context.Context, keyHash string) (*models.APIKey, error) {

	query := `
		select
			id,
			user_id,
			name,
			key_hash,
			key_prefix,
			scopes,
			expires_at,
			revoked_at,
			created_at
		from api_keys
		where key_hash = $1;
	`

	var key models.APIKey
	err := dbr.db.GetContext(ctx, &key, query, keyHash)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &key, nil
}

func (dbr *DBRepository) AddAPIKey(ctx context.Context, key models.APIKey) (err error) {

	query := `
		insert into api_keys (id, user_id, name, key_hash, key_prefix, scopes, expires_at)
			values ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = dbr.db.ExecContext(ctx, query,
		key.ID, key.UserID, key.Name, key.KeyHash, key.KeyPrefix, key.Scopes, key.ExpiresAt)

	return
}

func (dbr *DBRepository) RevokeAPIKey(ctx context.Context, keyID string) (err error) {

	query := `
		update api_keys
			set revoked_at = now()
		where id = $1
			and revoked_at is null;
	`
	_, err = dbr.db.ExecContext(ctx, query, keyID)

	return
}
