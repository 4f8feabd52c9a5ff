package middleware

type contextKey string

// RequestIDKey holds the per-request id in the request context.
const RequestIDKey contextKey = "request_id"

// ClaimsKey holds the decoded token claims of an authorized request.
const ClaimsKey contextKey = "claims"
