package tweet_service

import (
	"context"
	"twitter_post_api/internal/models"

	"github.com/sirupsen/logrus"
)

// PostTweet runs the submission pipeline for one user: linkage check, token
// fetch, per-request client build, delegate. Storage errors on the read path
// degrade to the matching precondition failures rather than surfacing raw.
func (ts *TweetService) PostTweet(ctx context.Context, userID, text string, media []models.MediaItem) (*models.TweetResult, error) {

	linked, err := ts.dbRepo.HasTwitterAccount(ctx, userID)
	if err != nil {
		logrus.Errorf("failed to check twitter account for user %s: %v", userID, err)
		linked = false
	}

	if !linked {
		return nil, models.ErrAccountNotConnected
	}

	tokens, err := ts.dbRepo.GetTwitterTokens(ctx, userID)
	if err != nil {
		logrus.Errorf("failed to fetch twitter tokens for user %s: %v", userID, err)
		tokens = nil
	}

	if tokens == nil {
		return nil, models.ErrTokensNotFound
	}

	client := ts.newTwitterClient(userID, *tokens, &repoTokenSink{dbRepo: ts.dbRepo})

	return client.PostTweet(ctx, text, media)
}
