package tweet_service

import (
	"context"
	"errors"
	"testing"
	"twitter_post_api/internal/models"

	twitter_client "twitter_post_api/internal/client/twitter-client"
)

type mockTokenRepo struct {
	getTokensFn  func(ctx context.Context, userID string) (*models.TwitterTokens, error)
	hasAccountFn func(ctx context.Context, userID string) (bool, error)
	updateFn     func(ctx context.Context, userID string, tokens models.TwitterTokens) error

	updateCalls int
}

func (m *mockTokenRepo) GetTwitterTokens(ctx context.Context, userID string) (*models.TwitterTokens, error) {
	if m.getTokensFn != nil {
		return m.getTokensFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTokenRepo) HasTwitterAccount(ctx context.Context, userID string) (bool, error) {
	if m.hasAccountFn != nil {
		return m.hasAccountFn(ctx, userID)
	}
	return false, nil
}

func (m *mockTokenRepo) UpdateTwitterTokens(ctx context.Context, userID string, tokens models.TwitterTokens) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, tokens)
	}
	return nil
}

type mockPoster struct {
	postTweetFn func(ctx context.Context, text string, media []models.MediaItem) (*models.TweetResult, error)
	verifyFn    func(ctx context.Context) (*models.TwitterUser, error)
}

func (m *mockPoster) PostTweet(ctx context.Context, text string, media []models.MediaItem) (*models.TweetResult, error) {
	if m.postTweetFn != nil {
		return m.postTweetFn(ctx, text, media)
	}
	return nil, errors.New("unexpected PostTweet call")
}

func (m *mockPoster) VerifyCredentials(ctx context.Context) (*models.TwitterUser, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx)
	}
	return nil, errors.New("unexpected VerifyCredentials call")
}

func serviceWithPoster(repo *mockTokenRepo, poster *mockPoster, onBuild func(tokens models.TwitterTokens, sink twitter_client.TokenSink)) *TweetService {
	ts := &TweetService{dbRepo: repo}
	ts.newTwitterClient = func(userID string, tokens models.TwitterTokens, sink twitter_client.TokenSink) twitterPoster {
		if onBuild != nil {
			onBuild(tokens, sink)
		}
		return poster
	}
	return ts
}

func TestPostTweet_NotLinked(t *testing.T) {
	repo := &mockTokenRepo{
		hasAccountFn: func(ctx context.Context, userID string) (bool, error) {
			return false, nil
		},
	}
	built := false
	ts := serviceWithPoster(repo, &mockPoster{}, func(models.TwitterTokens, twitter_client.TokenSink) {
		built = true
	})

	_, err := ts.PostTweet(context.Background(), "user-1", "hi", nil)
	if !errors.Is(err, models.ErrAccountNotConnected) {
		t.Errorf("err = %v, want ErrAccountNotConnected", err)
	}
	if built {
		t.Error("client must not be built when the account is not linked")
	}
}

// A storage failure on the linkage check degrades to "not connected".
func TestPostTweet_LinkageCheckStorageError(t *testing.T) {
	repo := &mockTokenRepo{
		hasAccountFn: func(ctx context.Context, userID string) (bool, error) {
			return false, errors.New("connection refused")
		},
	}
	ts := serviceWithPoster(repo, &mockPoster{}, nil)

	_, err := ts.PostTweet(context.Background(), "user-1", "hi", nil)
	if !errors.Is(err, models.ErrAccountNotConnected) {
		t.Errorf("err = %v, want ErrAccountNotConnected", err)
	}
}

// Linked account without a stored pair is a data-integrity error.
func TestPostTweet_LinkedButNoTokens(t *testing.T) {
	repo := &mockTokenRepo{
		hasAccountFn: func(ctx context.Context, userID string) (bool, error) {
			return true, nil
		},
		getTokensFn: func(ctx context.Context, userID string) (*models.TwitterTokens, error) {
			return nil, nil
		},
	}
	ts := serviceWithPoster(repo, &mockPoster{}, nil)

	_, err := ts.PostTweet(context.Background(), "user-1", "hi", nil)
	if !errors.Is(err, models.ErrTokensNotFound) {
		t.Errorf("err = %v, want ErrTokensNotFound", err)
	}
}

func TestPostTweet_BuildsClientWithStoredTokens(t *testing.T) {
	repo := &mockTokenRepo{
		hasAccountFn: func(ctx context.Context, userID string) (bool, error) {
			return true, nil
		},
		getTokensFn: func(ctx context.Context, userID string) (*models.TwitterTokens, error) {
			return &models.TwitterTokens{AccessToken: "tok", RefreshToken: "ref"}, nil
		},
	}

	var gotTokens models.TwitterTokens
	poster := &mockPoster{
		postTweetFn: func(ctx context.Context, text string, media []models.MediaItem) (*models.TweetResult, error) {
			return &models.TweetResult{ID: "abc123", Text: text, Status: "posted"}, nil
		},
	}
	ts := serviceWithPoster(repo, poster, func(tokens models.TwitterTokens, sink twitter_client.TokenSink) {
		gotTokens = tokens
	})

	res, err := ts.PostTweet(context.Background(), "user-1", "hi", nil)
	if err != nil {
		t.Fatalf("PostTweet: %v", err)
	}
	if res.ID != "abc123" {
		t.Errorf("id = %q, want abc123", res.ID)
	}
	if gotTokens.AccessToken != "tok" || gotTokens.RefreshToken != "ref" {
		t.Errorf("client tokens = %+v, want the stored pair", gotTokens)
	}
}

// The sink handed to the client writes refreshed pairs back to the store and
// swallows write failures.
func TestRepoTokenSink(t *testing.T) {
	repo := &mockTokenRepo{}
	sink := &repoTokenSink{dbRepo: repo}

	sink.Persist(context.Background(), "user-1", models.TwitterTokens{AccessToken: "fresh"})
	if repo.updateCalls != 1 {
		t.Errorf("update calls = %d, want 1", repo.updateCalls)
	}

	repo.updateFn = func(ctx context.Context, userID string, tokens models.TwitterTokens) error {
		return errors.New("write failed")
	}
	// must not panic or surface anything
	sink.Persist(context.Background(), "user-1", models.TwitterTokens{AccessToken: "fresh"})
}

func TestValidateTokens_NoTokens(t *testing.T) {
	repo := &mockTokenRepo{}
	ts := serviceWithPoster(repo, &mockPoster{}, nil)

	v := ts.ValidateTokens(context.Background(), "user-1")
	if v.Valid {
		t.Error("valid = true, want false")
	}
	if v.Error != "No Twitter tokens found" {
		t.Errorf("error = %q", v.Error)
	}
}

func TestValidateTokens_UpstreamRejectionIsData(t *testing.T) {
	repo := &mockTokenRepo{
		getTokensFn: func(ctx context.Context, userID string) (*models.TwitterTokens, error) {
			return &models.TwitterTokens{AccessToken: "tok"}, nil
		},
	}
	poster := &mockPoster{
		verifyFn: func(ctx context.Context) (*models.TwitterUser, error) {
			return nil, models.NewTwitterError(models.TwitterAuthExpired, "expired")
		},
	}
	ts := serviceWithPoster(repo, poster, nil)

	v := ts.ValidateTokens(context.Background(), "user-1")
	if v.Valid {
		t.Error("valid = true, want false")
	}
	if v.Error == "" {
		t.Error("error should carry the verification failure")
	}
}

func TestValidateTokens_Valid(t *testing.T) {
	repo := &mockTokenRepo{
		getTokensFn: func(ctx context.Context, userID string) (*models.TwitterTokens, error) {
			return &models.TwitterTokens{AccessToken: "tok"}, nil
		},
	}
	poster := &mockPoster{
		verifyFn: func(ctx context.Context) (*models.TwitterUser, error) {
			return &models.TwitterUser{ID: "42", Username: "testuser"}, nil
		},
	}
	ts := serviceWithPoster(repo, poster, nil)

	v := ts.ValidateTokens(context.Background(), "user-1")
	if !v.Valid {
		t.Fatalf("valid = false (error %q), want true", v.Error)
	}
	if v.User == nil || v.User.Username != "testuser" {
		t.Errorf("user = %+v", v.User)
	}
}
