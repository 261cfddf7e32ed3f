package requestctx

import "context"

// Context key type
type contextKey string

const requestIDKey contextKey = "request_id"
const remoteIPKey contextKey = "remote_ip"

// SetRequestID adds the request ID to the request context
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the request ID from the request context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// SetRemoteIP adds the resolved client IP to the request context
func SetRemoteIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, remoteIPKey, ip)
}

// GetRemoteIP retrieves the resolved client IP from the request context
func GetRemoteIP(ctx context.Context) string {
	ip, ok := ctx.Value(remoteIPKey).(string)
	if !ok {
		return ""
	}
	return ip
}
