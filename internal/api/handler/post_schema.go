package handler

import "time"

// --- Request / Response types for the post service ---

type createPostRequest struct {
	UserID  string `json:"userId"  validate:"required"`
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// updatePostRequest is a partial update: nil fields are left untouched.
type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type postResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// enrichedPostResponse is the post merged with its resolved author. The
// user field is always present: either the resolved identity or the
// explicit null absence marker.
type enrichedPostResponse struct {
	postResponse
	User *userRefResponse `json:"user"`
}

// postRefResponse is the cross-service post view embedded into enriched
// comments.
type postRefResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
