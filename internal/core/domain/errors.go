package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("missing or malformed input")
	ErrEmailTaken         = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("not allowed")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoFile             = errors.New("no file uploaded")
)
