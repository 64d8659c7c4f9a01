package models

type MediaType string

const (
	MediaTypeBase64 MediaType = "base64"
	MediaTypeURL    MediaType = "url"
)

// MediaItem is a single attachment from the request body. Data holds either a
// base64 payload (optionally a full data: URI) or an absolute URL, depending
// on Type. MimeType is the caller-declared content type and may be empty.
type MediaItem struct {
	Type     MediaType `json:"type"`
	Data     string    `json:"data"`
	MimeType string    `json:"mediaType,omitempty"`
}

type PostTweetRequest struct {
	Text  string      `json:"text"`
	Media []MediaItem `json:"media,omitempty"`
}

type TweetResult struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	CreatedAt  string `json:"created_at"`
	Status     string `json:"status"`
	MediaCount int    `json:"media_count"`
}

type PostTweetData struct {
	TweetResult
	UserID string `json:"user_id"`
}

type TokenValidation struct {
	Valid bool         `json:"valid"`
	Error string       `json:"error,omitempty"`
	User  *TwitterUser `json:"user"`
}
