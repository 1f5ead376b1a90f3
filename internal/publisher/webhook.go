package publisher

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const signatureHeader = "X-Automnator-Signature"

// Webhook delivers posts to an external receiver that performs the actual
// provider call. The request body is signed with HMAC-SHA256 when a secret
// is configured, and a signature echoed by the receiver is verified.
type Webhook struct {
	url    string
	secret string
	client *http.Client
}

func NewWebhook(url, secret string) *Webhook {
	return &Webhook{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type webhookPayload struct {
	Provider  string    `json:"provider"`
	Email     string    `json:"email"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (w *Webhook) CreatePost(ctx context.Context, email, text string) (*Result, error) {
	if w.url == "" {
		return nil, errors.New("missing webhook URL for webhook publisher")
	}

	body, err := json.Marshal(webhookPayload{
		Provider:  "linkedin",
		Email:     email,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if w.secret != "" {
		req.Header.Set(signatureHeader, sign(body, w.secret))
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook publisher request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("webhook publisher failed (%d)", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.New("webhook publisher returned invalid JSON")
	}
	if result.PostID == "" {
		return nil, errors.New("webhook publisher missing postId")
	}

	// Receivers may echo the signature back as a handshake.
	if echoed := resp.Header.Get(signatureHeader); echoed != "" && w.secret != "" {
		expected := sign(body, w.secret)
		if !hmac.Equal([]byte(echoed), []byte(expected)) {
			return nil, errors.New("webhook signature verification failed")
		}
	}

	return &result, nil
}
