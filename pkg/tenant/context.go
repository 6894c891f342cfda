package tenant

import (
	"context"
)

type contextKey string

const (
	tenantIDKey contextKey = "tenant_id"
	userIDKey   contextKey = "user_id"
)

// DefaultUserID é usado quando a requisição não identifica o usuário
const DefaultUserID = "default"

// SetTenantIDContext define o tenant ID no contexto
func SetTenantIDContext(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// GetTenantIDFromContext obtém o tenant ID do contexto
func GetTenantIDFromContext(ctx context.Context) string {
	if tenantID, ok := ctx.Value(tenantIDKey).(string); ok {
		return tenantID
	}
	return ""
}

// SetUserIDContext define o ID do usuário no contexto
func SetUserIDContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext obtém o ID do usuário do contexto
func GetUserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok && userID != "" {
		return userID
	}
	return DefaultUserID
}

// GetTenantID obtém o tenant ID de um contexto do Gin
func GetTenantID(c interface{ GetString(string) string }) string {
	return c.GetString(string(tenantIDKey))
}

// GetUserID obtém o ID do usuário de um contexto do Gin
func GetUserID(c interface{ GetString(string) string }) string {
	if userID := c.GetString(string(userIDKey)); userID != "" {
		return userID
	}
	return DefaultUserID
}
