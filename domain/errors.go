package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameConflict = errors.New("username conflict")
	ErrMazeNotFound     = errors.New("maze not found")
)
