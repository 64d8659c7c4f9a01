package models

import (
	"errors"
	"fmt"
)

type TwitterErrorCode string

const (
	TwitterAuthExpired     TwitterErrorCode = "TWITTER_AUTH_EXPIRED"
	TwitterAccessForbidden TwitterErrorCode = "TWITTER_ACCESS_FORBIDDEN"
	TwitterRateLimit       TwitterErrorCode = "TWITTER_RATE_LIMIT"
	TwitterDuplicate       TwitterErrorCode = "TWITTER_DUPLICATE"
	TwitterAPIError        TwitterErrorCode = "TWITTER_API_ERROR"
)

// TwitterError is an upstream failure already classified by the client.
// Handlers switch on Code, never on message text.
type TwitterError struct {
	Code    TwitterErrorCode
	Message string
}

func (e *TwitterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTwitterError(code TwitterErrorCode, message string) *TwitterError {
	return &TwitterError{
		Code:    code,
		Message: message,
	}
}

// MediaValidationError reports a media set that breaks the posting rules
// (count limits, image/video mixing). Maps to a 400 response.
type MediaValidationError struct {
	Message string
}

func (e *MediaValidationError) Error() string {
	return e.Message
}

var (
	ErrInvalidAPIKey       = errors.New("invalid api key or insufficient permissions")
	ErrKeyWithoutUser      = errors.New("api key has no associated user")
	ErrAccountNotConnected = errors.New("twitter account not connected")
	ErrTokensNotFound      = errors.New("twitter tokens not found")
)
