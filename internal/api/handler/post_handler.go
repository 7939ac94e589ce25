package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts. The route is gated by the access guard;
// the referenced identity is confirmed before anything is persisted.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  enrichedPostResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	if _, err := ctxClaims(c); err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toEnrichedPostResponse(post))
}

// List handles GET /posts (admin only). Enrichment is best-effort: a
// post whose author cannot be resolved is returned with user null.
//
// @Summary      List all posts with author info
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   enrichedPostResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]enrichedPostResponse, len(posts))
	for i := range posts {
		resp[i] = toEnrichedPostResponse(&posts[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post by id with author info
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  enrichedPostResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEnrichedPostResponse(post))
}

// Update handles PUT /posts/:id. Absent fields are left untouched.
//
// @Summary      Partially update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  postResponse
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
