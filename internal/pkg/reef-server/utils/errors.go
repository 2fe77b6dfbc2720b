package utils

import "errors"

var (
	ErrResourceNotFound      = errors.New("requested resource not found")
	ErrResourceAlreadyExists = errors.New("requested resource already exists")
	ErrNotAuthorized         = errors.New("user does not have permission to perform this action")
)
