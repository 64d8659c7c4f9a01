package models

// Wire shapes of the Twitter endpoints this service calls.

type TweetCreateRequest struct {
	Text  string      `json:"text"`
	Media *TweetMedia `json:"media,omitempty"`
}

type TweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type TweetCreateResponse struct {
	Data TweetCreateData `json:"data"`
}

type TweetCreateData struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type MediaUploadResponse struct {
	MediaID       uint64 `json:"media_id"`
	MediaIDString string `json:"media_id_string"`
}

type TwitterUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type GetMeResponse struct {
	Data TwitterUser `json:"data"`
}

// TwitterAPIErrorResponse covers both the v2 problem shape (title/detail)
// and the v1.1 errors array carrying numeric codes.
type TwitterAPIErrorResponse struct {
	Title  string                 `json:"title"`
	Detail string                 `json:"detail"`
	Status int                    `json:"status"`
	Errors []TwitterAPIErrorEntry `json:"errors"`
}

type TwitterAPIErrorEntry struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type TwitterOauthRefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int32  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
}
