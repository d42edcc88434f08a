// Package auth implementa los casos de uso de autenticación de la consola:
// login de admin, login de empleado y logout.
package auth

import (
	"context"
	"fmt"

	"github.com/tu-usuario/maxhelp-console/internal/application/session"
	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/collaborator"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// UseCase autenticación contra el AuthService externo más la persistencia de
// la sesión resultante.
type UseCase struct {
	auth     collaborator.AuthService
	sessions *session.Store
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(auth collaborator.AuthService, sessions *session.Store, log *logger.Logger) *UseCase {
	return &UseCase{auth: auth, sessions: sessions, log: log}
}

// LoginAdmin autentica al administrador y persiste la sesión completa
// (token, rol, username) como una unidad.
func (uc *UseCase) LoginAdmin(ctx context.Context, username, password string) (*entity.Session, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrValidation)
	}
	token, role, err := uc.auth.Login(ctx, collaborator.Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	sess := entity.Session{Token: token, Role: role, Username: username}
	if err := uc.sessions.Set(sess); err != nil {
		return nil, fmt.Errorf("persistir sesión: %w", err)
	}
	uc.log.Info().Str("username", username).Str("role", role).Msg("login de admin exitoso")
	return &sess, nil
}

// LoginEmployee autentica a un empleado. El backend no devuelve rol en este
// flujo; la consola registra employee, igual que la SPA original.
func (uc *UseCase) LoginEmployee(ctx context.Context, email, password string) (*entity.Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email y password son requeridos", domain.ErrValidation)
	}
	token, err := uc.auth.EmployeeLogin(ctx, collaborator.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	sess := entity.Session{Token: token, Role: entity.RoleEmployee, Username: email}
	if err := uc.sessions.Set(sess); err != nil {
		return nil, fmt.Errorf("persistir sesión: %w", err)
	}
	uc.log.Info().Str("email", email).Msg("login de empleado exitoso")
	return &sess, nil
}

// Logout borra la sesión persistida completa. No contacta al backend: el
// token es una credencial bearer sin revocación desde el cliente.
func (uc *UseCase) Logout() error {
	return uc.sessions.Clear()
}
