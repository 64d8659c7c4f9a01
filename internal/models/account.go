package models

// TwitterTokens is the OAuth pair linked to a (user, provider) row.
// RefreshToken is empty when the provider issued none.
type TwitterTokens struct {
	AccessToken  string
	RefreshToken string
}

type AccountTokensRow struct {
	AccessToken  *string `db:"access_token"`
	RefreshToken *string `db:"refresh_token"`
}
