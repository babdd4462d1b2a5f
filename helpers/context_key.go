package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyToken is a specific key for identifying the bearer token added to
// the http request context
var ContextKeyToken = ContextKey("token")
