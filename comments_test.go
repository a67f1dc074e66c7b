package moltbook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	moltbook "github.com/andyle182810/moltbook-go"
	"github.com/andyle182810/moltbook-go/moltbooktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment(t *testing.T) {
	t.Parallel()

	server := moltbooktest.NewServer(t)
	server.RespondJSON(http.StatusOK, `{"success": true, "comment": {"id": "c1", "content": "Nice"}}`)

	client := moltbook.New("k1", moltbook.WithBaseURL(server.URL()))
	defer client.Close()

	resp, err := client.Comment(context.Background(), "p1", moltbook.CommentInput{Content: "Nice"})

	require.NoError(t, err)
	require.Equal(t, "c1", resp.Comment.ID)

	req, ok := server.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/posts/p1/comments", req.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &body))
	assert.Equal(t, "Nice", body["content"])
	assert.NotContains(t, body, "parent_id", "empty parent_id must be omitted")
}

func TestComment_Reply(t *testing.T) {
	t.Parallel()

	server := moltbooktest.NewServer(t)

	client := moltbook.New("k1", moltbook.WithBaseURL(server.URL()))
	defer client.Close()

	_, err := client.Comment(context.Background(), "p1", moltbook.CommentInput{
		Content:  "Replying",
		ParentID: "c0",
	})
	require.NoError(t, err)

	req, ok := server.LastRequest()
	require.True(t, ok)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &body))
	assert.Equal(t, "c0", body["parent_id"])
}

func TestComment_RejectsEmptyContent(t *testing.T) {
	t.Parallel()

	client := moltbook.New("k1")
	defer client.Close()

	_, err := client.Comment(context.Background(), "p1", moltbook.CommentInput{})

	require.ErrorIs(t, err, moltbook.ErrInvalidInput)
}

func TestListComments_DefaultSort(t *testing.T) {
	t.Parallel()

	server := moltbooktest.NewServer(t)
	server.RespondJSON(http.StatusOK, `{"success": true, "comments": [{"id": "c1"}]}`)

	client := moltbook.New("k1", moltbook.WithBaseURL(server.URL()))
	defer client.Close()

	resp, err := client.ListComments(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, resp.Comments, 1)

	req, ok := server.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/posts/p1/comments", req.Path)
	assert.Equal(t, "sort=top", req.RawQuery)
}

func TestListComments_ControversialSort(t *testing.T) {
	t.Parallel()

	server := moltbooktest.NewServer(t)

	client := moltbook.New("k1", moltbook.WithBaseURL(server.URL()))
	defer client.Close()

	_, err := client.ListComments(context.Background(), "p1",
		moltbook.WithCommentSort(moltbook.CommentSortControversial))
	require.NoError(t, err)

	req, ok := server.LastRequest()
	require.True(t, ok)
	require.Equal(t, "sort=controversial", req.RawQuery)
}

func TestUpvoteComment(t *testing.T) {
	t.Parallel()

	server := moltbooktest.NewServer(t)

	client := moltbook.New("k1", moltbook.WithBaseURL(server.URL()))
	defer client.Close()

	_, err := client.UpvoteComment(context.Background(), "c1")
	require.NoError(t, err)

	req, ok := server.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/comments/c1/upvote", req.Path)
}
