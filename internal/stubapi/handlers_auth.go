package stubapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	pkgjwt "github.com/tu-usuario/maxhelp-console/pkg/jwt"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// adminLogin autentica al administrador. Como el backend real, espera el
// formulario OAuth2 (username/password form-encoded).
func (s *Server) adminLogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "username and password are required"})
	}

	s.state.mu.Lock()
	u := s.state.findUserByName(username)
	s.state.mu.Unlock()

	if u == nil || u.Role != "admin" || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Detail: "Invalid credentials"})
	}
	return s.issueToken(c, u)
}

// employeeLogin autentica a un empleado (JSON email/password).
func (s *Server) employeeLogin(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid body"})
	}

	s.state.mu.Lock()
	u := s.state.findUserByEmail(in.Email)
	s.state.mu.Unlock()

	if u == nil || u.Role != "employee" || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Detail: "Invalid credentials"})
	}
	return s.issueToken(c, u)
}

func (s *Server) issueToken(c *fiber.Ctx, u *user) error {
	token, err := pkgjwt.Generate(s.cfg.JWTSecret, u.ID, u.Name, u.Role, s.cfg.JWTIssuer, s.cfg.JWTExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Detail: err.Error()})
	}
	s.log.Info().Str("user", u.Name).Str("role", u.Role).Msg("login en stub")
	return c.JSON(tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// listEmployees devuelve todos los empleados (no el admin).
func (s *Server) listEmployees(c *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]user, 0, len(s.state.users))
	for _, u := range s.state.users {
		if u.Role == "employee" {
			out = append(out, u)
		}
	}
	return c.JSON(out)
}

// listStats conteos agregados del negocio.
func (s *Server) listStats(c *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	employees := 0
	for _, u := range s.state.users {
		if u.Role == "employee" {
			employees++
		}
	}
	return c.JSON(fiber.Map{
		"total_employees":      employees,
		"total_business_units": len(s.state.units),
	})
}

type employeeBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Gender   string `json:"gender"`
	UnitID   int64  `json:"unit_id"`
	Password string `json:"password"`
}

// createEmployee da de alta un empleado con id asignado por el servidor.
func (s *Server) createEmployee(c *fiber.Ctx) error {
	var in employeeBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid body"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "name, email and password are required"})
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if s.state.findUserByEmail(in.Email) != nil {
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Detail: "Email already registered"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Detail: err.Error()})
	}
	role := in.Role
	if role == "" {
		role = "employee"
	}
	u := user{
		ID:           s.state.id(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Gender:       in.Gender,
		UnitID:       in.UnitID,
		CreatedAt:    time.Now().UTC(),
	}
	s.state.users = append(s.state.users, u)
	return c.Status(fiber.StatusCreated).JSON(u)
}

// updateEmployee actualiza los campos presentes en el cuerpo.
func (s *Server) updateEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid id"})
	}
	var in struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Role     *string `json:"role"`
		Gender   *string `json:"gender"`
		UnitID   *int64  `json:"unit_id"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid body"})
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.users {
		u := &s.state.users[i]
		if u.ID != int64(id) || u.Role != "employee" {
			continue
		}
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		if in.Gender != nil {
			u.Gender = *in.Gender
		}
		if in.UnitID != nil {
			u.UnitID = *in.UnitID
		}
		if in.Password != nil && *in.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Detail: err.Error()})
			}
			u.PasswordHash = string(hash)
		}
		return c.JSON(*u)
	}
	return c.Status(fiber.StatusNotFound).JSON(errorResponse{Detail: "Employee not found"})
}

// deleteEmployee elimina un empleado.
func (s *Server) deleteEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid id"})
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.users {
		if s.state.users[i].ID == int64(id) && s.state.users[i].Role == "employee" {
			s.state.users = append(s.state.users[:i], s.state.users[i+1:]...)
			return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(errorResponse{Detail: "Employee not found"})
}

// createBusinessUnit registra una unidad de negocio (append-only).
func (s *Server) createBusinessUnit(c *fiber.Ctx) error {
	var in struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid body"})
	}
	if in.Name == "" || in.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "name and location are required"})
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	bu := businessUnit{ID: s.state.id(), Name: in.Name, Location: in.Location}
	s.state.units = append(s.state.units, bu)
	return c.Status(fiber.StatusCreated).JSON(bu)
}
