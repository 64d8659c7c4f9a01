package tweet_handler

import (
	"fmt"
	"net/url"
	"twitter_post_api/internal/models"
	"unicode/utf16"
)

const maxTweetLength = 280 // UTF-16 code units, the platform's counting

func validatePostTweetRequest(req *models.PostTweetRequest) (string, bool) {

	if req.Text == "" {
		return "Missing or invalid 'text' field", false
	}

	if len(utf16.Encode([]rune(req.Text))) > maxTweetLength {
		return "Tweet text exceeds 280 characters", false
	}

	if req.Media == nil {
		return "", true
	}

	if len(req.Media) > 4 {
		return "Maximum 4 media items allowed per tweet", false
	}

	for i, item := range req.Media {
		n := i + 1

		if item.Type == "" || item.Data == "" {
			return fmt.Sprintf("Media item %d: 'type' and 'data' fields are required", n), false
		}

		if item.Type != models.MediaTypeBase64 && item.Type != models.MediaTypeURL {
			return fmt.Sprintf("Media item %d: type must be 'base64' or 'url'", n), false
		}

		if item.Type == models.MediaTypeURL {
			u, err := url.Parse(item.Data)
			if err != nil || !u.IsAbs() || u.Host == "" {
				return fmt.Sprintf("Media item %d: invalid URL format", n), false
			}
		}
	}

	return "", true
}
