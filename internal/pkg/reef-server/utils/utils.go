package utils

import "context"

const (
	ManagerRole = "manager"
)

// SetContext replaces ctx with a child carrying the given value.
func SetContext(ctx *context.Context, key, value interface{}) {
	*ctx = context.WithValue(*ctx, key, value)
}
