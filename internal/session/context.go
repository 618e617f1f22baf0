package session

import (
	"context"

	"algonest_webclient/internal/model"
)

type ctxKey struct{}

func WithSession(ctx context.Context, s *model.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*model.Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*model.Session)
	return s, ok && s != nil
}
