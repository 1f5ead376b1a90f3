// Package publisher is the capability that actually posts content to the
// provider. Implementations are selected by configuration at startup.
package publisher

import "context"

type Result struct {
	PostID string `json:"postId"`
	URL    string `json:"url,omitempty"`
}

type Publisher interface {
	// CreatePost publishes text on behalf of the user identified by
	// email and returns the provider's receipt. Any provider-side
	// failure is returned as a descriptive error.
	CreatePost(ctx context.Context, email, text string) (*Result, error)
}
