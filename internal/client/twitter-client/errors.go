package twitter_client

import (
	"net/http"
	"strings"
	"twitter_post_api/internal/models"

	jsoniter "github.com/json-iterator/go"
)

const duplicateStatusCode = 187 // upstream "status is a duplicate" code

// classifyError turns a non-success upstream response into the closed error
// vocabulary. Raw upstream text is only carried by TWITTER_API_ERROR.
func classifyError(statusCode int, body []byte) *models.TwitterError {

	var apiErr models.TwitterAPIErrorResponse
	_ = jsoniter.Unmarshal(body, &apiErr)

	switch statusCode {
	case http.StatusUnauthorized:
		return models.NewTwitterError(models.TwitterAuthExpired,
			"Twitter authentication failed. Token may be expired.")

	case http.StatusForbidden:
		if isDuplicate(&apiErr) {
			return models.NewTwitterError(models.TwitterDuplicate,
				"Duplicate tweet detected. Cannot post the same content twice.")
		}
		return models.NewTwitterError(models.TwitterAccessForbidden,
			"Twitter API access forbidden. Check account permissions.")

	case http.StatusTooManyRequests:
		return models.NewTwitterError(models.TwitterRateLimit,
			"Twitter API rate limit exceeded. Please try again later.")
	}

	return models.NewTwitterError(models.TwitterAPIError, "Twitter API error: "+upstreamMessage(&apiErr, statusCode))
}

func upstreamMessage(apiErr *models.TwitterAPIErrorResponse, statusCode int) string {
	if apiErr.Detail != "" {
		return apiErr.Detail
	}
	if apiErr.Title != "" {
		return apiErr.Title
	}
	if len(apiErr.Errors) > 0 && apiErr.Errors[0].Message != "" {
		return apiErr.Errors[0].Message
	}
	return http.StatusText(statusCode)
}

func isDuplicate(apiErr *models.TwitterAPIErrorResponse) bool {
	for _, e := range apiErr.Errors {
		if e.Code == duplicateStatusCode {
			return true
		}
	}
	return strings.Contains(strings.ToLower(apiErr.Detail), "duplicate")
}
