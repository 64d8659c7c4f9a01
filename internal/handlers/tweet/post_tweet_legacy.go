package tweet_handler

import (
	"fmt"
	"net/http"
	"time"
	"twitter_post_api/internal/middleware"
	"twitter_post_api/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type legacyTweetData struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

// PostTweetLegacy handles POST /api/v1/post.
//
// Deprecated: demo endpoint kept for existing callers. It authenticates and
// validates like the real path but returns a synthesized result without ever
// calling the platform. Use /api/v1/x/post instead.
func (th *TweetHandler) PostTweetLegacy(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	key, ok := bearerKey(r)
	if !ok {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, "Missing or invalid authorization header")
		return
	}

	userID, err := th.apiKeyService.Verify(ctx, key, models.ScopeTweetsWrite)
	if err != nil {
		logrus.Errorf("PostTweetLegacy: api key verification failed: %v", err)
		writeAuthError(w, err)
		return
	}

	reqDTO := models.PostTweetRequest{}
	if err := jsoniter.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logrus.Errorf("PostTweetLegacy: failed decode request, error: %v", err)
		middleware.WriteErrorResponse(w, http.StatusBadRequest, "Missing or invalid 'text' field")
		return
	}

	reqDTO.Media = nil
	if msg, ok := validatePostTweetRequest(&reqDTO); !ok {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()

	middleware.WriteSuccessData(w, legacyTweetData{
		ID:        fmt.Sprintf("tweet_%d", now.UnixMilli()),
		Text:      reqDTO.Text,
		UserID:    userID,
		CreatedAt: now.UTC().Format(time.RFC3339),
		Status:    "posted",
	}, "Tweet posted successfully")
}
