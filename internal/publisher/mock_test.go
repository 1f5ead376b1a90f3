package publisher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_CreatePost(t *testing.T) {
	m := NewMock()

	res, err := m.CreatePost(context.Background(), "mock@example.com", "hello")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.PostID, "mock_post_"))
	assert.Contains(t, res.URL, res.PostID)

	other, err := m.CreatePost(context.Background(), "mock@example.com", "hello")
	require.NoError(t, err)
	assert.NotEqual(t, res.PostID, other.PostID)
}

func TestMock_EmptyText(t *testing.T) {
	m := NewMock()
	_, err := m.CreatePost(context.Background(), "mock@example.com", "  ")
	require.Error(t, err)
}
