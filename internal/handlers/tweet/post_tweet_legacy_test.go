package tweet_handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

type legacyEnvelope struct {
	Success bool            `json:"success"`
	Data    legacyTweetData `json:"data"`
	Message string          `json:"message"`
}

func doLegacyPost(t *testing.T, h *TweetHandler, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/post", strings.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()

	h.PostTweetLegacy(w, req)

	return w
}

// The legacy endpoint synthesizes a result and never reaches the platform.
func TestPostTweetLegacy_SynthesizesResult(t *testing.T) {
	svc := &mockTweetService{}
	h := NewTweetHandler(allowKey("user-1"), svc)

	w := doLegacyPost(t, h, `{"text":"Hello"}`, "Bearer key")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if svc.postCalls != 0 {
		t.Error("legacy endpoint must not invoke the posting pipeline")
	}

	var resp legacyEnvelope
	if err := jsoniter.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !strings.HasPrefix(resp.Data.ID, "tweet_") {
		t.Errorf("data.id = %q, want synthesized tweet_ prefix", resp.Data.ID)
	}
	if resp.Data.Status != "posted" {
		t.Errorf("data.status = %q, want posted", resp.Data.Status)
	}
	if resp.Data.UserID != "user-1" {
		t.Errorf("data.user_id = %q, want user-1", resp.Data.UserID)
	}
}

func TestPostTweetLegacy_TextValidation(t *testing.T) {
	h := NewTweetHandler(allowKey("user-1"), &mockTweetService{})

	w := doLegacyPost(t, h, `{"text":"`+strings.Repeat("a", 281)+`"}`, "Bearer key")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestPostTweetLegacy_MissingAuthHeader(t *testing.T) {
	h := NewTweetHandler(&mockAPIKeyService{}, &mockTweetService{})

	w := doLegacyPost(t, h, `{"text":"Hello"}`, "")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
