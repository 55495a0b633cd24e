package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for posts and their comments.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post fields"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), identity, ports.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postResponse{Message: "Post created", Post: post})
}

// List handles GET /api/posts. Page and limit default to 1 and 10 when
// absent or non-numeric.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listPostsResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		Posts: result.Posts,
		Total: result.Total,
		Page:  result.Page,
		Pages: result.Pages,
	})
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a single post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update handles PUT /api/posts/:id. Only supplied fields are overwritten;
// owner or admin only.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to overwrite"
// @Success      200   {object}  postResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), ports.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postResponse{Message: "Updated", Post: post})
}

// Delete handles DELETE /api/posts/:id. Owner or admin only.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted"})
}

// AddComment handles POST /api/posts/:id/comments. Any authenticated user
// may comment.
//
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      addCommentRequest  true  "Comment text"
// @Success      200   {object}  commentResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/posts/{id}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), identity, c.Param("id"), req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, commentResponse{Message: "Comment added", Comment: comment})
}

// DeleteComment handles DELETE /api/posts/:id/comments/:commentId. Allowed
// for the comment's author, the post's author, or an admin.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true  "Post id"
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  messageResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/posts/{id}/comments/{commentId} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteComment(c.Request().Context(), identity, c.Param("id"), c.Param("commentId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Comment deleted"})
}
