package request

import (
	"context"

	"lendpool/core"
)

type key int

const (
	userKey key = iota
)

// WithUser context with user
func WithUser(ctx context.Context, user *core.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom get user from context
func UserFrom(ctx context.Context) (*core.User, bool) {
	user, ok := ctx.Value(userKey).(*core.User)
	return user, ok
}
