package twitter_oauth_client

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"strings"
	"twitter_post_api/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// RefreshToken exchanges a refresh token for a fresh access/refresh pair.
// Twitter rotates the refresh token on every exchange, so callers must
// persist the returned pair.
func (toc *TwitterOauthClient) RefreshToken(ctx context.Context, refreshToken string) (data *models.TwitterOauthRefreshResponse, err error) {

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", os.Getenv("TWITTER_CLIENT_ID"))

	req, err := http.NewRequestWithContext(ctx, "POST", toc.schemeHost+"/2/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(os.Getenv("TWITTER_CLIENT_ID"), os.Getenv("TWITTER_CLIENT_SECRET"))

	resp, err := toc.httpClient.Do(req)
	if err != nil {
		return
	}

	defer resp.Body.Close()

	readedResp, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("token refresh failed with status code: %d", resp.StatusCode)
	}

	var tokenInfo models.TwitterOauthRefreshResponse
	err = jsoniter.Unmarshal(readedResp, &tokenInfo)
	if err != nil {
		return
	}

	if tokenInfo.AccessToken == "" {
		return nil, errors.New("empty access token in refresh response")
	}

	data = &tokenInfo

	return
}
