package twitter_client

import (
	"context"
	"encoding/base64"
	"io/ioutil"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"twitter_post_api/internal/models"

	jsoniter "github.com/json-iterator/go"
)

const fallbackMimeType = "image/jpeg"

var dataURIPrefix = regexp.MustCompile(`^data:([^;]+);base64,`)

func validateMediaSet(media []models.MediaItem) *models.MediaValidationError {

	if len(media) > 4 {
		return &models.MediaValidationError{Message: "Maximum 4 media items allowed per tweet"}
	}

	hasImages, hasVideos := false, false
	for _, item := range media {
		if strings.HasPrefix(item.MimeType, "image/") {
			hasImages = true
		}
		if strings.HasPrefix(item.MimeType, "video/") {
			hasVideos = true
		}
	}

	if hasImages && hasVideos {
		return &models.MediaValidationError{Message: "Cannot mix images and videos in the same tweet"}
	}

	if hasVideos && len(media) > 1 {
		return &models.MediaValidationError{Message: "Only one video allowed per tweet"}
	}

	return nil
}

// uploadMedia resolves and uploads every item in input order. Identifiers are
// attached to the tweet in this order, so no parallel fan-out here. Any single
// failure aborts the whole set.
func (twc *TwitterClient) uploadMedia(ctx context.Context, media []models.MediaItem) ([]string, error) {

	mediaIDs := make([]string, 0, len(media))

	for _, item := range media {
		payload, mimeType, err := twc.resolveMedia(ctx, item)
		if err != nil {
			return nil, err
		}

		mediaID, err := twc.uploadOne(ctx, payload, mimeType)
		if err != nil {
			return nil, err
		}

		mediaIDs = append(mediaIDs, mediaID)
	}

	return mediaIDs, nil
}

func (twc *TwitterClient) resolveMedia(ctx context.Context, item models.MediaItem) ([]byte, string, error) {
	switch item.Type {
	case models.MediaTypeBase64:
		return decodeBase64Media(item)
	case models.MediaTypeURL:
		return twc.downloadMedia(ctx, item)
	}

	return nil, "", models.NewTwitterError(models.TwitterAPIError, "Twitter API error: unsupported media type: "+string(item.Type))
}

func decodeBase64Media(item models.MediaItem) ([]byte, string, error) {

	raw := item.Data
	mimeType := item.MimeType

	if match := dataURIPrefix.FindStringSubmatch(raw); match != nil {
		mimeType = match[1]
		raw = raw[len(match[0]):]
	}

	if mimeType == "" {
		mimeType = fallbackMimeType
	}

	payload, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", models.NewTwitterError(models.TwitterAPIError, "Twitter API error: invalid base64 media data")
	}

	return payload, mimeType, nil
}

func (twc *TwitterClient) downloadMedia(ctx context.Context, item models.MediaItem) ([]byte, string, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", item.Data, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := twc.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", models.NewTwitterError(models.TwitterAPIError,
			"Failed to download media from URL: "+resp.Status)
	}

	payload, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return payload, mimeTypeFromURL(item.Data, item.MimeType), nil
}

func mimeTypeFromURL(mediaURL, declared string) string {
	urlLower := strings.ToLower(mediaURL)

	switch {
	case strings.Contains(urlLower, ".png"):
		return "image/png"
	case strings.Contains(urlLower, ".jpg"), strings.Contains(urlLower, ".jpeg"):
		return "image/jpeg"
	case strings.Contains(urlLower, ".gif"):
		return "image/gif"
	case strings.Contains(urlLower, ".webp"):
		return "image/webp"
	case strings.Contains(urlLower, ".mp4"):
		return "video/mp4"
	}

	if declared != "" {
		return declared
	}

	return fallbackMimeType
}

func mediaCategory(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return "tweet_video"
	case mimeType == "image/gif":
		return "tweet_gif"
	}
	return "tweet_image"
}

func (twc *TwitterClient) uploadOne(ctx context.Context, payload []byte, mimeType string) (string, error) {

	build := func() (*http.Request, error) {
		form := url.Values{}
		form.Set("media_data", base64.StdEncoding.EncodeToString(payload))
		form.Set("media_category", mediaCategory(mimeType))

		req, err := http.NewRequestWithContext(ctx, "POST", twc.uploadSchemeHost+"/1.1/media/upload.json", strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		return req, nil
	}

	resp, err := twc.doAuthorized(ctx, build)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	readedResp, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusUnauthorized {
			return "", classifyError(resp.StatusCode, readedResp)
		}

		var apiErr models.TwitterAPIErrorResponse
		_ = jsoniter.Unmarshal(readedResp, &apiErr)

		return "", models.NewTwitterError(models.TwitterAPIError,
			"Failed to upload media: "+upstreamMessage(&apiErr, resp.StatusCode))
	}

	var uploadInfo models.MediaUploadResponse
	err = jsoniter.Unmarshal(readedResp, &uploadInfo)
	if err != nil {
		return "", err
	}

	if uploadInfo.MediaIDString == "" {
		return "", models.NewTwitterError(models.TwitterAPIError, "Failed to upload media: empty media id in response")
	}

	return uploadInfo.MediaIDString, nil
}
