package publisher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Mock fabricates a post id and url without calling any provider. It is
// the default so demo deployments work with no credentials.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) CreatePost(ctx context.Context, email, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("post text is empty")
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	postID := "mock_post_" + id
	return &Result{
		PostID: postID,
		URL:    fmt.Sprintf("https://www.linkedin.com/feed/update/%s/", postID),
	}, nil
}
