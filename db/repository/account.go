package repository

import (
	"context"
	"database/sql"
	"twitter_post_api/internal/models"
)

const twitterProviderID = "twitter"

// GetTwitterTokens returns the stored token pair for (userID, twitter).
// A missing row or a row without an access token yields (nil, nil).
func (dbr *DBRepository) GetTwitterTokens(ctx context.Context, userID string) (*models.TwitterTokens, error) {

	query := `
		select
			access_token,
			refresh_token
		from account
		where user_id = $1
			and provider_id = $2
		limit 1;
	`

	var row models.AccountTokensRow
	err := dbr.db.GetContext(ctx, &row, query, userID, twitterProviderID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if row.AccessToken == nil || *row.AccessToken == "" {
		return nil, nil
	}

	tokens := &models.TwitterTokens{AccessToken: *row.AccessToken}
	if row.RefreshToken != nil {
		tokens.RefreshToken = *row.RefreshToken
	}

	return tokens, nil
}

// HasTwitterAccount reports whether the user linked a twitter account at all,
// independent of token validity.
func (dbr *DBRepository) HasTwitterAccount(ctx context.Context, userID string) (linked bool, err error) {

	query := `
		select exists (
			select 1
			from account
			where user_id = $1
				and provider_id = $2
		);
	`

	err = dbr.db.GetContext(ctx, &linked, query, userID, twitterProviderID)

	return
}

// UpdateTwitterTokens upserts the pair after a refresh. An empty refresh
// token is stored as null.
func (dbr *DBRepository) UpdateTwitterTokens(ctx context.Context, userID string, tokens models.TwitterTokens) (err error) {

	query := `
		update account
			set (access_token, refresh_token, updated_at) = ($1, nullif($2, ''), now())
		where user_id = $3
			and provider_id = $4;
	`
	_, err = dbr.db.ExecContext(ctx, query, tokens.AccessToken, tokens.RefreshToken, userID, twitterProviderID)
	if err != nil {
		return err
	}

	return
}
