package moltbook

import "context"

// QuickPost creates a post without keeping a client around and returns
// the URL of the created post.
func QuickPost(ctx context.Context, apiKey, submolt, title, content string, opts ...Option) (string, error) {
	client := New(apiKey, opts...)
	defer client.Close()

	resp, err := client.CreatePost(ctx, CreatePostInput{
		Submolt: submolt,
		Title:   title,
		Content: content,
		URL:     "",
	})
	if err != nil {
		return "", err
	}

	return resp.Post.URL, nil
}

// QuickComment adds a comment without keeping a client around.
func QuickComment(ctx context.Context, apiKey, postID, content string, opts ...Option) error {
	client := New(apiKey, opts...)
	defer client.Close()

	_, err := client.Comment(ctx, postID, CommentInput{
		Content:  content,
		ParentID: "",
	})

	return err
}
