package dto

import "time"

// RefreshTokenRequest representa a requisição de renovação de token
type RefreshTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// TokenResponse representa um token de sessão emitido
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TenantID    string    `json:"tenant_id"`
	UserID      string    `json:"user_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SessionResponse representa a empresa e o usuário identificados na requisição
type SessionResponse struct {
	TenantID      string `json:"tenant_id"`
	UserID        string `json:"user_id"`
	Authenticated bool   `json:"authenticated"`
}
