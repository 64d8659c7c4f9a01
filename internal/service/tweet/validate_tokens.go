package tweet_service

import (
	"context"
	"twitter_post_api/internal/models"

	"github.com/sirupsen/logrus"
)

// ValidateTokens reports token validity as data: upstream rejections become
// {valid:false, error} instead of an error return.
func (ts *TweetService) ValidateTokens(ctx context.Context, userID string) *models.TokenValidation {

	tokens, err := ts.dbRepo.GetTwitterTokens(ctx, userID)
	if err != nil {
		logrus.Errorf("failed to fetch twitter tokens for user %s: %v", userID, err)
		tokens = nil
	}

	if tokens == nil {
		return &models.TokenValidation{Valid: false, Error: "No Twitter tokens found"}
	}

	client := ts.newTwitterClient(userID, *tokens, &repoTokenSink{dbRepo: ts.dbRepo})

	user, err := client.VerifyCredentials(ctx)
	if err != nil {
		return &models.TokenValidation{Valid: false, Error: err.Error()}
	}

	return &models.TokenValidation{Valid: true, User: user}
}
