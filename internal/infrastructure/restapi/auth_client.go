package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/collaborator"
)

// AuthClient implementa collaborator.AuthService contra el backend.
type AuthClient struct {
	c *Client
}

// NewAuthClient construye el cliente de autenticación.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

// Login autentica al administrador. El backend espera el formulario OAuth2
// estándar (username/password form-encoded). Cualquier rechazo se colapsa en
// la señal opaca ErrInvalidCredentials.
func (a *AuthClient) Login(ctx context.Context, creds collaborator.Credentials) (string, string, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var out tokenResponse
	if err := a.c.doForm(ctx, "/auth/admin/login", form, &out); err != nil {
		return "", "", opaqueCredentialError(err)
	}
	role := out.Role
	if role == "" {
		// El backend original no devuelve rol en el login de admin; este
		// endpoint solo autentica admins.
		role = "admin"
	}
	return out.AccessToken, role, nil
}

// EmployeeLogin autentica a un empleado (JSON email/password). Devuelve solo
// el token; el rol employee lo asume la consola en este flujo.
func (a *AuthClient) EmployeeLogin(ctx context.Context, creds collaborator.Credentials) (string, error) {
	body := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}
	var out tokenResponse
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/login", body, &out, false); err != nil {
		return "", opaqueCredentialError(err)
	}
	return out.AccessToken, nil
}

// opaqueCredentialError colapsa cualquier rechazo del backend en
// ErrInvalidCredentials; los fallos de red sí se distinguen.
func opaqueCredentialError(err error) error {
	var se *StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("login: %w", domain.ErrInvalidCredentials)
	}
	return err
}
