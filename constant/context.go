package constant

type contextKey string

// UsernameKey carries the authenticated admin username in a request context.
const UsernameKey contextKey = "username"
