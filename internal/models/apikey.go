package models

import (
	"time"

	"github.com/lib/pq"
)

type Scope string

const (
	ScopeTweetsWrite Scope = "tweets:write"
	ScopeProfileRead Scope = "profile:read"
)

// APIKey is a stored bearer credential. Only the sha256 hash of the raw key
// is kept; the prefix exists for display purposes.
type APIKey struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Name      string         `db:"name"`
	KeyHash   string         `db:"key_hash"`
	KeyPrefix string         `db:"key_prefix"`
	Scopes    pq.StringArray `db:"scopes"`
	ExpiresAt *time.Time     `db:"expires_at"`
	RevokedAt *time.Time     `db:"revoked_at"`
	CreatedAt time.Time      `db:"created_at"`
}

func (k *APIKey) HasScope(scope Scope) bool {
	for _, s := range k.Scopes {
		if s == string(scope) {
			return true
		}
	}
	return false
}
