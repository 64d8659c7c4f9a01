package twitter_client

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"twitter_post_api/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	twitterAPISchemeHost    string = "https://api.twitter.com"
	twitterUploadSchemeHost string = "https://upload.twitter.com"
)

// TokenSink persists a refreshed token pair. Persistence is best-effort:
// implementations log failures and never interrupt the in-flight call.
type TokenSink interface {
	Persist(ctx context.Context, userID string, tokens models.TwitterTokens)
}

// TokenRefresher exchanges a refresh token for a new pair.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, refreshToken string) (*models.TwitterOauthRefreshResponse, error)
}

// TwitterClient is built per request, bound to one user's token pair.
// Never share an instance across users.
type TwitterClient struct {
	userID      string
	tokens      models.TwitterTokens
	tokenSink   TokenSink
	oauthClient TokenRefresher

	httpClient *http.Client

	apiSchemeHost    string
	uploadSchemeHost string
}

func NewTwitterClient(
	userID string,
	tokens models.TwitterTokens,
	tokenSink TokenSink,
	oauthClient TokenRefresher,
) *TwitterClient {
	return &TwitterClient{
		userID:      userID,
		tokens:      tokens,
		tokenSink:   tokenSink,
		oauthClient: oauthClient,
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		apiSchemeHost:    twitterAPISchemeHost,
		uploadSchemeHost: twitterUploadSchemeHost,
	}
}

// doAuthorized runs the request built by build with the current access token.
// On a 401 it refreshes the token pair once, persists it through the sink and
// retries the call. A failed refresh only logs: the original 401 response is
// returned and classified at the point of use.
func (twc *TwitterClient) doAuthorized(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {

	req, err := build()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", twc.tokens.AccessToken))

	resp, err := twc.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || twc.tokens.RefreshToken == "" || twc.oauthClient == nil {
		return resp, nil
	}

	if !twc.refreshTokens(ctx) {
		return resp, nil
	}

	resp.Body.Close()

	retry, err := build()
	if err != nil {
		return nil, err
	}
	retry.Header.Set("Authorization", fmt.Sprintf("Bearer %s", twc.tokens.AccessToken))

	return twc.httpClient.Do(retry)
}

func (twc *TwitterClient) refreshTokens(ctx context.Context) bool {

	tokenInfo, err := twc.oauthClient.RefreshToken(ctx, twc.tokens.RefreshToken)
	if err != nil {
		logrus.Errorf("twitter token refresh failed for user %s: %v", twc.userID, err)
		return false
	}

	twc.tokens = models.TwitterTokens{
		AccessToken:  tokenInfo.AccessToken,
		RefreshToken: tokenInfo.RefreshToken,
	}

	logrus.Infof("twitter tokens refreshed for user %s", twc.userID)

	if twc.tokenSink != nil {
		twc.tokenSink.Persist(ctx, twc.userID, twc.tokens)
	}

	return true
}
