// Package utils provides general-purpose helpers shared by the server and the
// client binaries: typed context keys, JSON response writing, the resty HTTP
// client, owner token signing and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key the auth middleware stores the authenticated form
// owner under.
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, "owner-1")
var OwnerIDCtxKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the form owner identifier from the context.
// ok is false when the value is missing, empty or has an unexpected type.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}
