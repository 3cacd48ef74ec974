package entity

import "context"

// GuestID is used when nobody is signed in.
const GuestID = "me"

type viewerKey struct{}

// ContextWithViewer attaches the acting user id to ctx.
func ContextWithViewer(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, viewerKey{}, userID)
}

// ViewerFromContext returns the acting user id, if any.
func ViewerFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(viewerKey{}).(string)
	return id, ok && id != ""
}
