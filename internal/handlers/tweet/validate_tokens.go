package tweet_handler

import (
	"net/http"
	"twitter_post_api/internal/middleware"
	"twitter_post_api/internal/models"

	"github.com/sirupsen/logrus"
)

// ValidateTokens handles GET /api/v1/x/validate-tokens. Validity is data:
// the response is 200 whether or not the stored tokens still work.
func (th *TweetHandler) ValidateTokens(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	key, ok := bearerKey(r)
	if !ok {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, "Missing or invalid authorization header")
		return
	}

	userID, err := th.apiKeyService.Verify(ctx, key, models.ScopeProfileRead)
	if err != nil {
		logrus.Errorf("ValidateTokens: api key verification failed: %v", err)
		writeAuthError(w, err)
		return
	}

	validation := th.tweetService.ValidateTokens(ctx, userID)

	middleware.WriteSuccessData(w, validation, "")
}
