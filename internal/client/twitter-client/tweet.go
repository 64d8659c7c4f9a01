package twitter_client

import (
	"bytes"
	"context"
	"io/ioutil"
	"net/http"
	"time"
	"twitter_post_api/internal/models"

	jsoniter "github.com/json-iterator/go"
)

// PostTweet uploads any attached media and creates the status. All-or-nothing:
// a failed upload aborts the submission before anything is posted.
func (twc *TwitterClient) PostTweet(ctx context.Context, text string, media []models.MediaItem) (*models.TweetResult, error) {

	var mediaIDs []string

	if len(media) > 0 {
		if vErr := validateMediaSet(media); vErr != nil {
			return nil, vErr
		}

		uploaded, err := twc.uploadMedia(ctx, media)
		if err != nil {
			return nil, err
		}
		mediaIDs = uploaded
	}

	payload := models.TweetCreateRequest{Text: text}
	if len(mediaIDs) > 0 {
		payload.Media = &models.TweetMedia{MediaIDs: mediaIDs}
	}

	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return nil, err
	}

	build := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, "POST", twc.apiSchemeHost+"/2/tweets", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		return req, nil
	}

	resp, err := twc.doAuthorized(ctx, build)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	readedResp, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, classifyError(resp.StatusCode, readedResp)
	}

	var tweetInfo models.TweetCreateResponse
	err = jsoniter.Unmarshal(readedResp, &tweetInfo)
	if err != nil {
		return nil, err
	}

	return &models.TweetResult{
		ID:         tweetInfo.Data.ID,
		Text:       tweetInfo.Data.Text,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Status:     "posted",
		MediaCount: len(mediaIDs),
	}, nil
}
