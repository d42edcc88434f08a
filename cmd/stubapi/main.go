// stubapi levanta un doble local del backend MaxHelp para desarrollar la
// consola sin el backend real.
//
// Uso: JWT_SECRET=dev-secret go run ./cmd/stubapi
package main

import (
	"github.com/tu-usuario/maxhelp-console/internal/stubapi"
	"github.com/tu-usuario/maxhelp-console/pkg/config"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	secret := cfg.JWT.Secret
	if secret == "" {
		// Fixture de desarrollo: un secreto por defecto es preferible a no arrancar.
		secret = "stub-dev-secret"
		log.Warn().Msg("JWT_SECRET no definido; usando secreto de desarrollo")
	}

	srv, err := stubapi.New(stubapi.Config{
		JWTSecret:     secret,
		JWTExpMinutes: cfg.JWT.Expiration,
		JWTIssuer:     cfg.JWT.Issuer,
		AdminName:     cfg.Admin.Name,
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.Password,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("construir stub")
	}

	log.Info().Str("addr", cfg.HTTP.Addr()).Str("admin", cfg.Admin.Name).Msg("stubapi escuchando")
	if err := srv.App.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor detenido")
	}
}
