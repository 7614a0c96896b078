package services

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrForbidden           = errors.New("not the owner of this record")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrSamePassword        = errors.New("new password equals the current one")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidSession      = errors.New("session is not active")
)
