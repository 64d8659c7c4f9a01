package tweet_service

import (
	"context"
	"twitter_post_api/internal/models"

	twitter_client "twitter_post_api/internal/client/twitter-client"
	twitter_oauth_client "twitter_post_api/internal/client/twitter-oauth-client"

	"github.com/sirupsen/logrus"
)

type tokenRepository interface {
	GetTwitterTokens(ctx context.Context, userID string) (*models.TwitterTokens, error)
	HasTwitterAccount(ctx context.Context, userID string) (bool, error)
	UpdateTwitterTokens(ctx context.Context, userID string, tokens models.TwitterTokens) error
}

type twitterPoster interface {
	PostTweet(ctx context.Context, text string, media []models.MediaItem) (*models.TweetResult, error)
	VerifyCredentials(ctx context.Context) (*models.TwitterUser, error)
}

type TweetService struct {
	dbRepo tokenRepository

	// newTwitterClient builds the per-request client bound to one user's
	// token pair; swappable in tests.
	newTwitterClient func(userID string, tokens models.TwitterTokens, sink twitter_client.TokenSink) twitterPoster
}

func NewTweetService(dbRepo tokenRepository, oauthClient *twitter_oauth_client.TwitterOauthClient) *TweetService {
	return &TweetService{
		dbRepo: dbRepo,
		newTwitterClient: func(userID string, tokens models.TwitterTokens, sink twitter_client.TokenSink) twitterPoster {
			return twitter_client.NewTwitterClient(userID, tokens, sink, oauthClient)
		},
	}
}

// repoTokenSink persists refreshed pairs best-effort: a failed write is
// logged and the in-flight post proceeds on the in-memory tokens.
type repoTokenSink struct {
	dbRepo tokenRepository
}

func (s *repoTokenSink) Persist(ctx context.Context, userID string, tokens models.TwitterTokens) {
	if err := s.dbRepo.UpdateTwitterTokens(ctx, userID, tokens); err != nil {
		logrus.Errorf("failed to persist refreshed twitter tokens for user %s: %v", userID, err)
		return
	}

	logrus.Infof("updated twitter tokens for user %s", userID)
}
