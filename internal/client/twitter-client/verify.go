package twitter_client

import (
	"context"
	"io/ioutil"
	"net/http"
	"twitter_post_api/internal/models"

	jsoniter "github.com/json-iterator/go"
)

// VerifyCredentials calls the "who am I" endpoint with the held access token.
func (twc *TwitterClient) VerifyCredentials(ctx context.Context) (*models.TwitterUser, error) {

	build := func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, "GET", twc.apiSchemeHost+"/2/users/me", nil)
	}

	resp, err := twc.doAuthorized(ctx, build)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	readedResp, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyError(resp.StatusCode, readedResp)
	}

	var meInfo models.GetMeResponse
	err = jsoniter.Unmarshal(readedResp, &meInfo)
	if err != nil {
		return nil, err
	}

	return &meInfo.Data, nil
}
