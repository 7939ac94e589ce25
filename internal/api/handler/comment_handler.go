package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /comments. Both referenced records are confirmed
// concurrently before the comment is persisted; either failing rejects
// the creation.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      createCommentRequest  true  "Comment details"
// @Success      201   {object}  enrichedCommentResponse
// @Failure      400   {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		PostID: req.PostID,
		UserID: req.UserID,
		Text:   req.Text,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toEnrichedCommentResponse(comment))
}

// List handles GET /comments. Both relations are resolved best-effort
// per comment with independent failure isolation.
//
// @Summary      List all comments with related data
// @Tags         comments
// @Produce      json
// @Success      200  {array}  enrichedCommentResponse
// @Router       /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]enrichedCommentResponse, len(comments))
	for i := range comments {
		resp[i] = toEnrichedCommentResponse(&comments[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func toEnrichedCommentResponse(ec *ports.EnrichedComment) enrichedCommentResponse {
	return enrichedCommentResponse{
		ID:        ec.Comment.ID,
		PostID:    ec.Comment.PostID,
		UserID:    ec.Comment.UserID,
		Text:      ec.Comment.Text,
		CreatedAt: ec.Comment.CreatedAt,
		User:      toUserRefResponse(ec.User),
		Post:      toPostRefResponse(ec.Post),
	}
}
