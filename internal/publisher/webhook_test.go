package publisher

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhook_CreatePost(t *testing.T) {
	const secret = "hook-secret"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))
		assert.Equal(t, expected, r.Header.Get("X-Automnator-Signature"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "linkedin", payload["provider"])
		assert.Equal(t, "hook@example.com", payload["email"])
		assert.Equal(t, "post body", payload["text"])

		json.NewEncoder(w).Encode(map[string]string{
			"postId": "li_123",
			"url":    "https://example.com/li_123",
		})
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, secret)
	res, err := wh.CreatePost(context.Background(), "hook@example.com", "post body")
	require.NoError(t, err)
	assert.Equal(t, "li_123", res.PostID)
	assert.Equal(t, "https://example.com/li_123", res.URL)
}

func TestWebhook_NoSignatureWithoutSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Automnator-Signature"))
		json.NewEncoder(w).Encode(map[string]string{"postId": "li_1"})
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, "")
	_, err := wh.CreatePost(context.Background(), "a@b.com", "text")
	require.NoError(t, err)
}

func TestWebhook_ReceiverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, "")
	_, err := wh.CreatePost(context.Background(), "a@b.com", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestWebhook_MissingPostID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"url": "https://example.com/x"})
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, "")
	_, err := wh.CreatePost(context.Background(), "a@b.com", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing postId")
}

func TestWebhook_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, "")
	_, err := wh.CreatePost(context.Background(), "a@b.com", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestWebhook_BadEchoedSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Automnator-Signature", "deadbeef")
		json.NewEncoder(w).Encode(map[string]string{"postId": "li_1"})
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, "hook-secret")
	_, err := wh.CreatePost(context.Background(), "a@b.com", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature verification failed")
}

func TestWebhook_MissingURL(t *testing.T) {
	wh := NewWebhook("", "")
	_, err := wh.CreatePost(context.Background(), "a@b.com", "text")
	require.Error(t, err)
}
