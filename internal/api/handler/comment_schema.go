package handler

import "time"

// --- Request / Response types for the comment service ---

type createCommentRequest struct {
	PostID string `json:"postId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
	Text   string `json:"text"   validate:"required"`
}

// enrichedCommentResponse is the comment merged with its resolved
// relations. Both fields are always present; null marks a relation that
// could not be resolved best-effort.
type enrichedCommentResponse struct {
	ID        string           `json:"id"`
	PostID    string           `json:"postId"`
	UserID    string           `json:"userId"`
	Text      string           `json:"text"`
	CreatedAt time.Time        `json:"createdAt"`
	User      *userRefResponse `json:"user"`
	Post      *postRefResponse `json:"post"`
}
