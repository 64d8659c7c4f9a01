package twitter_oauth_client

import (
	"net/http"
	"time"
)

const twitterAPISchemeHost string = "https://api.twitter.com"

type TwitterOauthClient struct {
	schemeHost string
	httpClient *http.Client
}

func NewTwitterOauthClient() *TwitterOauthClient {
	return &TwitterOauthClient{
		schemeHost: twitterAPISchemeHost,
		httpClient: &http.Client{
			Timeout: time.Second * 5,
		},
	}
}
