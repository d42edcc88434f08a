package entity

// Roles válidos para la sesión y los empleados.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Session credencial vigente de la consola: token bearer opaco, rol y nombre
// visible. La consola nunca inspecciona el contenido del token, solo su presencia.
type Session struct {
	Token    string
	Role     string // admin | employee
	Username string
}

// Valid indica si la sesión está completa. Presencia parcial (token sin rol,
// por ejemplo) se trata como sesión inválida.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.Role != "" && s.Username != ""
}
