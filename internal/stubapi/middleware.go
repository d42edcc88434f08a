package stubapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/tu-usuario/maxhelp-console/pkg/jwt"
)

// Locals keys cargadas por el middleware de auth.
const (
	localUserID = "user_id"
	localName   = "name"
	localRole   = "role"
)

// errorResponse cuerpo de error, formato {"detail": ...} del backend original.
type errorResponse struct {
	Detail string `json:"detail"`
}

// authMiddleware valida el Bearer Token JWT y carga user_id, name y role en
// c.Locals.
func authMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Detail: "Not authenticated"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Detail: "Invalid authorization header"})
		}
		userID, name, role, err := pkgjwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Detail: "Invalid or expired token"})
		}
		c.Locals(localUserID, userID)
		c.Locals(localName, name)
		c.Locals(localRole, role)
		return c.Next()
	}
}

// requireAdmin corta con 403 si la sesión no es de admin. Corre después de
// authMiddleware.
func requireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(localRole).(string)
		if role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(errorResponse{Detail: "Only admins can access this resource"})
		}
		return c.Next()
	}
}

func currentRole(c *fiber.Ctx) string {
	role, _ := c.Locals(localRole).(string)
	return role
}

func currentUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localUserID).(int64)
	return id
}
