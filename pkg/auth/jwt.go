package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Erros específicos
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("chave secreta JWT não configurada")
	ErrMissingTenant = errors.New("empresa não informada para o token")
)

const issuer = "moneywise-api"

// DefaultExpiration é usada quando nenhuma duração é configurada
const DefaultExpiration = 24 * time.Hour

// JWTClaims representa as claims do token de sessão do assistente
type JWTClaims struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// JWTService emite e valida tokens de sessão
type JWTService struct {
	secretKey  []byte
	expiration time.Duration
	now        func() time.Time
}

// NewJWTService cria uma nova instância de JWTService
func NewJWTService(secret string, expiration time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingJWTKey
	}
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	return &JWTService{
		secretKey:  []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}, nil
}

// GenerateToken gera um token para o usuário dentro da empresa informada
func (s *JWTService) GenerateToken(userID, tenantID string) (string, error) {
	if tenantID == "" {
		return "", ErrMissingTenant
	}

	now := s.now()
	claims := JWTClaims{
		UserID:   userID,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID,
		},
	}

	return s.sign(&claims)
}

// ValidateToken valida um token JWT e retorna as claims se for válido
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verificar o método de assinatura
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	var claims *JWTClaims
	if token != nil {
		claims, _ = token.Claims.(*JWTClaims)
	}
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return claims, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims == nil || !token.Valid || claims.TenantID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// RefreshToken renova um token JWT, mesmo que já expirado
func (s *JWTService) RefreshToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil && !errors.Is(err, ErrExpiredToken) {
		return "", err
	}
	if claims == nil || claims.TenantID == "" {
		return "", ErrInvalidClaims
	}

	now := s.now()
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiration))
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)

	return s.sign(claims)
}

func (s *JWTService) sign(claims *JWTClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
