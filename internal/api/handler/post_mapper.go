package handler

import (
	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

// Pure mapping functions from service results to response DTOs. The JSON
// contract is owned here, decoupled from storage and service shapes.

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toEnrichedPostResponse(ep *ports.EnrichedPost) enrichedPostResponse {
	return enrichedPostResponse{
		postResponse: toPostResponse(&ep.Post),
		User:         toUserRefResponse(ep.User),
	}
}

func toPostRefResponse(ref *domain.PostRef) *postRefResponse {
	if ref == nil {
		return nil
	}
	return &postRefResponse{
		ID:      ref.ID,
		UserID:  ref.UserID,
		Title:   ref.Title,
		Content: ref.Content,
	}
}
