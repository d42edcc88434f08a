// Package collaborator define los puertos de salida hacia el backend externo.
// El núcleo de la consola solo conoce estas interfaces; las implementaciones
// concretas viven en internal/infrastructure/restapi y para tests se inyectan
// fakes.
package collaborator

import "context"

// Credentials credenciales de login. El admin entra con username; el empleado
// con email.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// AuthService puerto de autenticación. La falla de login es una señal opaca
// (domain.ErrInvalidCredentials); no se expone taxonomía de errores del backend.
type AuthService interface {
	// Login autentica al administrador y devuelve el token bearer y el rol.
	Login(ctx context.Context, creds Credentials) (token, role string, err error)
	// EmployeeLogin autentica a un empleado y devuelve solo el token.
	EmployeeLogin(ctx context.Context, creds Credentials) (token string, err error)
}
