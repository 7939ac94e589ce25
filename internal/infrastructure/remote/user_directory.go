package remote

import (
	"context"
	"errors"

	"github.com/microblog/platform/internal/core/domain"
)

// UserDirectory resolves identities against the auth service's public
// read endpoints.
type UserDirectory struct {
	client client
}

func NewUserDirectory(baseURL string) *UserDirectory {
	return &UserDirectory{client: newClient(baseURL)}
}

func (d *UserDirectory) FindUser(ctx context.Context, id string) (*domain.UserRef, error) {
	var ref domain.UserRef
	if err := d.client.getJSON(ctx, "/users/"+id, &ref); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &ref, nil
}
