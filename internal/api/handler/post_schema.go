package handler

import "github.com/inkwell/blog-api/internal/core/domain"

type createPostRequest struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	CoverImage string `json:"coverImage"`
}

// updatePostRequest uses pointers so "field absent" and "field explicitly
// set to the empty string" stay distinguishable: nil keeps the stored
// value, a pointer overwrites it.
type updatePostRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CoverImage *string `json:"coverImage"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type postResponse struct {
	Message string       `json:"message"`
	Post    *domain.Post `json:"post"`
}

type commentResponse struct {
	Message string          `json:"message"`
	Comment *domain.Comment `json:"comment"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type listPostsResponse struct {
	Posts []*domain.Post `json:"posts"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}
