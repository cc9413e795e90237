package auth

import "errors"

var (
	ErrCredentialsNotFound = errors.New("error credentials not found")
	ErrTokenNotFound       = errors.New("error token not found, run the auth command first")
	ErrTokenExpired        = errors.New("error token expired and has no refresh token")
)
