package domain

import "time"

// Post is a content record owned by the post service. UserID is a soft
// reference to an identity owned by the auth service: it is confirmed to
// exist at creation time and never enforced afterwards. There is no
// shared database and no cross-service cascade.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostRef is the view of a post resolved over the network by the comment
// service when validating and enriching comments.
type PostRef struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Ref returns the cross-service view of the post.
func (p *Post) Ref() *PostRef {
	return &PostRef{
		ID:      p.ID,
		UserID:  p.UserID,
		Title:   p.Title,
		Content: p.Content,
	}
}
