package tenant

import "errors"

// Erros comuns relacionados à identificação da empresa
var (
	// ErrTenantNotSpecified ocorre quando a requisição não identifica a empresa
	ErrTenantNotSpecified = errors.New("tenant ID não especificado")

	// ErrInvalidAuthorization ocorre quando o cabeçalho Authorization não é um Bearer válido
	ErrInvalidAuthorization = errors.New("cabeçalho Authorization inválido")
)
