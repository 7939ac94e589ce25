package remote

import (
	"context"
	"errors"

	"github.com/microblog/platform/internal/core/domain"
)

// PostDirectory resolves posts against the post service's public read
// endpoints.
type PostDirectory struct {
	client client
}

func NewPostDirectory(baseURL string) *PostDirectory {
	return &PostDirectory{client: newClient(baseURL)}
}

func (d *PostDirectory) FindPost(ctx context.Context, id string) (*domain.PostRef, error) {
	var ref domain.PostRef
	if err := d.client.getJSON(ctx, "/posts/"+id, &ref); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &ref, nil
}
