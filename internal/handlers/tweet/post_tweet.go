package tweet_handler

import (
	"net/http"
	"twitter_post_api/internal/middleware"
	"twitter_post_api/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// PostTweet handles POST /api/v1/x/post: bearer key with tweets:write scope,
// validated payload, then the full submission pipeline.
func (th *TweetHandler) PostTweet(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	key, ok := bearerKey(r)
	if !ok {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, "Missing or invalid authorization header")
		return
	}

	userID, err := th.apiKeyService.Verify(ctx, key, models.ScopeTweetsWrite)
	if err != nil {
		logrus.Errorf("PostTweet: api key verification failed: %v", err)
		writeAuthError(w, err)
		return
	}

	reqDTO := models.PostTweetRequest{}
	if err := jsoniter.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logrus.Errorf("PostTweet: failed decode request, error: %v", err)
		middleware.WriteErrorResponse(w, http.StatusBadRequest, "Missing or invalid 'text' field")
		return
	}

	if msg, ok := validatePostTweetRequest(&reqDTO); !ok {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	res, err := th.tweetService.PostTweet(ctx, userID, reqDTO.Text, reqDTO.Media)
	if err != nil {
		logrus.Errorf("PostTweet: %v", err)
		writeTweetError(w, err)
		return
	}

	middleware.WriteSuccessData(w, models.PostTweetData{
		TweetResult: *res,
		UserID:      userID,
	}, "Tweet posted successfully")
}
