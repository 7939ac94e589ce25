package domain

import "time"

// Comment is owned by the comment service. PostID and UserID are soft
// references validated against the owning services at creation time.
// Comments are append-only: there is no update operation.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
