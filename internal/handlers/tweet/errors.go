package tweet_handler

import (
	"errors"
	"net/http"
	"twitter_post_api/internal/middleware"
	"twitter_post_api/internal/models"
)

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidAPIKey):
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid API key or insufficient permissions")
	case errors.Is(err, models.ErrKeyWithoutUser):
		middleware.WriteErrorResponse(w, http.StatusInternalServerError, "Unable to identify user")
	default:
		middleware.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// writeTweetError maps the posting pipeline's error vocabulary onto HTTP.
// Raw upstream text only leaks through the 502 branch.
func writeTweetError(w http.ResponseWriter, err error) {

	var twErr *models.TwitterError
	if errors.As(err, &twErr) {
		switch twErr.Code {
		case models.TwitterAuthExpired:
			middleware.WriteErrorResponseWithCode(w, http.StatusUnauthorized,
				"Twitter authentication failed",
				"Your Twitter access token has expired. Please reconnect your Twitter account.",
				string(twErr.Code))
		case models.TwitterAccessForbidden:
			middleware.WriteErrorResponseWithCode(w, http.StatusForbidden,
				"Twitter access forbidden",
				"Your Twitter account doesn't have permission to post tweets. Please check your account settings.",
				string(twErr.Code))
		case models.TwitterRateLimit:
			middleware.WriteErrorResponseWithCode(w, http.StatusTooManyRequests,
				"Rate limit exceeded",
				"Twitter API rate limit reached. Please try again later.",
				string(twErr.Code))
		case models.TwitterDuplicate:
			middleware.WriteErrorResponseWithCode(w, http.StatusConflict,
				"Duplicate tweet",
				"This tweet content has already been posted. Please try different content.",
				string(twErr.Code))
		default:
			middleware.WriteErrorResponseWithCode(w, http.StatusBadGateway,
				"Twitter API error",
				twErr.Message,
				string(models.TwitterAPIError))
		}
		return
	}

	var mvErr *models.MediaValidationError
	if errors.As(err, &mvErr) {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, mvErr.Message)
		return
	}

	switch {
	case errors.Is(err, models.ErrAccountNotConnected):
		middleware.WriteErrorResponseWithCode(w, http.StatusBadRequest,
			"Twitter account not connected",
			"Please connect your Twitter account first",
			"")
	case errors.Is(err, models.ErrTokensNotFound):
		middleware.WriteErrorResponseWithCode(w, http.StatusInternalServerError,
			"Twitter tokens not found",
			"Unable to retrieve Twitter authentication. Please reconnect your account.",
			"")
	default:
		middleware.WriteErrorResponseWithCode(w, http.StatusInternalServerError,
			"Internal server error",
			"An unexpected error occurred while posting your tweet. Please try again.",
			"INTERNAL_ERROR")
	}
}
