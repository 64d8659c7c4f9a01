package apikey_service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
	"twitter_post_api/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const keyPrefixLen = 8

type keyStore interface {
	GetAPIKeyByHash(ctx context.Context, keyHash string) (*models.APIKey, error)
	AddAPIKey(ctx context.Context, key models.APIKey) error
}

type APIKeyService struct {
	store keyStore
}

func NewAPIKeyService(store keyStore) *APIKeyService {
	return &APIKeyService{
		store: store,
	}
}

// Verify resolves a raw bearer key to its owning user, requiring scope.
// Unknown, revoked, expired and under-scoped keys all collapse into
// ErrInvalidAPIKey so callers leak nothing about which case it was.
func (aks *APIKeyService) Verify(ctx context.Context, rawKey string, scope models.Scope) (string, error) {

	if rawKey == "" {
		return "", models.ErrInvalidAPIKey
	}

	key, err := aks.store.GetAPIKeyByHash(ctx, HashKey(rawKey))
	if err != nil {
		return "", errors.Wrap(err, "GetAPIKeyByHash")
	}

	if key == nil || key.RevokedAt != nil {
		return "", models.ErrInvalidAPIKey
	}

	if key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now()) {
		return "", models.ErrInvalidAPIKey
	}

	if !key.HasScope(scope) {
		return "", models.ErrInvalidAPIKey
	}

	if key.UserID == "" {
		logrus.Errorf("api key %s has no user attached", key.ID)
		return "", models.ErrKeyWithoutUser
	}

	return key.UserID, nil
}

// Issue creates a key for the user and returns the raw secret. The secret is
// only available here; the store keeps its hash and a display prefix.
func (aks *APIKeyService) Issue(ctx context.Context, userID, name string, scopes []models.Scope, expiresAt *time.Time) (string, *models.APIKey, error) {

	rawKey, err := newRawKey()
	if err != nil {
		return "", nil, errors.Wrap(err, "newRawKey")
	}

	scopeStrs := make(pq.StringArray, 0, len(scopes))
	for _, s := range scopes {
		scopeStrs = append(scopeStrs, string(s))
	}

	key := models.APIKey{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		KeyHash:   HashKey(rawKey),
		KeyPrefix: rawKey[:keyPrefixLen],
		Scopes:    scopeStrs,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}

	if err := aks.store.AddAPIKey(ctx, key); err != nil {
		return "", nil, errors.Wrap(err, "AddAPIKey")
	}

	return rawKey, &key, nil
}

func HashKey(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}

func newRawKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "tpa_" + hex.EncodeToString(buf), nil
}
