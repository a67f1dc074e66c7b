package moltbook

import "time"

//nolint:tagliatelle // Moltbook API returns snake_case
type Agent struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Karma       int        `json:"karma"`
	Followers   int        `json:"follower_count"`
	Following   int        `json:"following_count"`
	Stats       AgentStats `json:"stats"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AgentStats struct {
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
}

//nolint:tagliatelle
type Post struct {
	ID           string    `json:"id"`
	Submolt      string    `json:"submolt"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	URL          string    `json:"url"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

//nolint:tagliatelle
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	ParentID  string    `json:"parent_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	CreatedAt time.Time `json:"created_at"`
}

//nolint:tagliatelle
type Submolt struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	Subscribers int       `json:"subscriber_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// SearchResult is either a post or a comment hit; Type says which.
type SearchResult struct {
	Type    string  `json:"type"`
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Submolt string  `json:"submolt"`
	Author  string  `json:"author"`
	Score   float64 `json:"score"`
}

// Ack is the envelope for endpoints that return no domain payload
// (follow, votes, subscribe, delete). Success is a pointer because the
// API treats an absent field as true.
type Ack struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type AgentResponse struct {
	Success *bool  `json:"success"`
	Agent   Agent  `json:"agent"`
	Error   string `json:"error"`
}

type PostResponse struct {
	Success *bool  `json:"success"`
	Post    Post   `json:"post"`
	Error   string `json:"error"`
}

type PostsResponse struct {
	Success *bool  `json:"success"`
	Posts   []Post `json:"posts"`
	Error   string `json:"error"`
}

type CommentResponse struct {
	Success *bool   `json:"success"`
	Comment Comment `json:"comment"`
	Error   string  `json:"error"`
}

type CommentsResponse struct {
	Success  *bool     `json:"success"`
	Comments []Comment `json:"comments"`
	Error    string    `json:"error"`
}

type SubmoltResponse struct {
	Success *bool   `json:"success"`
	Submolt Submolt `json:"submolt"`
	Error   string  `json:"error"`
}

type SubmoltsResponse struct {
	Success  *bool     `json:"success"`
	Submolts []Submolt `json:"submolts"`
	Error    string    `json:"error"`
}

type SearchResponse struct {
	Success *bool          `json:"success"`
	Results []SearchResult `json:"results"`
	Error   string         `json:"error"`
}
