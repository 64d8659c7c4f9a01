package twitter_oauth_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRefreshToken(t *testing.T) {
	t.Setenv("TWITTER_CLIENT_ID", "client-id")
	t.Setenv("TWITTER_CLIENT_SECRET", "client-secret")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/2/oauth2/token" {
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
		}

		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			t.Errorf("basic auth = %q:%q", user, pass)
		}

		_ = r.ParseForm()
		if r.PostFormValue("grant_type") != "refresh_token" {
			t.Errorf("grant_type = %q", r.PostFormValue("grant_type"))
		}
		if r.PostFormValue("refresh_token") != "refresh-1" {
			t.Errorf("refresh_token = %q", r.PostFormValue("refresh_token"))
		}

		_, _ = w.Write([]byte(`{"access_token":"fresh","refresh_token":"refresh-2","expires_in":7200,"token_type":"bearer"}`))
	}))
	defer srv.Close()

	toc := NewTwitterOauthClient()
	toc.schemeHost = srv.URL

	data, err := toc.RefreshToken(context.Background(), "refresh-1")
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}

	if data.AccessToken != "fresh" {
		t.Errorf("access token = %q, want fresh", data.AccessToken)
	}
	if data.RefreshToken != "refresh-2" {
		t.Errorf("refresh token = %q, want refresh-2", data.RefreshToken)
	}
}

func TestRefreshToken_UpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	toc := NewTwitterOauthClient()
	toc.schemeHost = srv.URL

	if _, err := toc.RefreshToken(context.Background(), "stale"); err == nil {
		t.Fatal("expected error for rejected refresh")
	}
}

func TestRefreshToken_EmptyAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
	}))
	defer srv.Close()

	toc := NewTwitterOauthClient()
	toc.schemeHost = srv.URL

	if _, err := toc.RefreshToken(context.Background(), "refresh-1"); err == nil {
		t.Fatal("expected error for empty access token")
	}
}
