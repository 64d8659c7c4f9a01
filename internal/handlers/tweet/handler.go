package tweet_handler

import (
	"context"
	"net/http"
	"strings"
	"twitter_post_api/internal/models"
)

type apiKeyVerifier interface {
	Verify(ctx context.Context, rawKey string, scope models.Scope) (string, error)
}

type tweetService interface {
	PostTweet(ctx context.Context, userID, text string, media []models.MediaItem) (*models.TweetResult, error)
	ValidateTokens(ctx context.Context, userID string) *models.TokenValidation
}

type TweetHandler struct {
	apiKeyService apiKeyVerifier
	tweetService  tweetService
}

func NewTweetHandler(apiKeyService apiKeyVerifier, tweetService tweetService) *TweetHandler {
	return &TweetHandler{
		apiKeyService: apiKeyService,
		tweetService:  tweetService,
	}
}

func bearerKey(r *http.Request) (string, bool) {
	authStr := r.Header.Get("Authorization")
	if !strings.HasPrefix(authStr, "Bearer ") {
		return "", false
	}

	return authStr[len("Bearer "):], true
}
