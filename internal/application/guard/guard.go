// Package guard decide, por navegación, si la ruta destino exige sesión activa.
package guard

import (
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// Rutas de la consola. Coinciden con las rutas de la SPA original.
const (
	RouteHome          = "/"
	RouteAbout         = "/about"
	RouteOnboarding    = "/onboarding"
	RouteEmployeeLogin = "/login"
	RouteAdminLogin    = "/admin-login"
	RouteDashboard     = "/dashboard"
	RouteEmployees     = "/admin-employees"
	RouteNotifications = "/notifications"
	RouteFeedbacks     = "/feedbacks"
	RouteInventory     = "/inventory"
)

// publicRoutes nunca exigen sesión.
var publicRoutes = map[string]bool{
	RouteHome:          true,
	RouteAbout:         true,
	RouteOnboarding:    true,
	RouteEmployeeLogin: true,
}

// adminOnlyRoutes rutas cuya entrada de navegación se oculta a empleados.
// Ocultar no es bloquear: ver la nota de política en Guard.
var adminOnlyRoutes = map[string]bool{
	RouteEmployees:     true,
	RouteNotifications: true,
}

// navRoutes entradas de navegación de una sesión activa, en el orden del menú
// de la SPA original.
var navRoutes = []string{
	RouteDashboard,
	RouteEmployees,
	RouteInventory,
	RouteNotifications,
	RouteFeedbacks,
}

// Verdict resultado de evaluar una navegación.
type Verdict struct {
	Allow    bool
	Redirect string // destino de redirección cuando Allow es false
}

// SessionReader lo que el guard necesita del SessionStore. Se consulta en
// cada Check; el guard nunca cachea la sesión entre navegaciones.
type SessionReader interface {
	Get() *entity.Session
}

// Guard evalúa navegaciones contra la sesión vigente.
//
// Política de roles, deliberadamente permisiva: el rol solo filtra las
// entradas de navegación visibles (Visible); no bloquea la navegación
// directa. Cualquier sesión activa pasa cualquier ruta. La autorización real
// de lecturas y escrituras sensibles la impone el backend, nunca se confía
// en el cliente para eso.
type Guard struct {
	sessions SessionReader
}

// New construye el guard sobre el lector de sesión inyectado.
func New(sessions SessionReader) *Guard {
	return &Guard{sessions: sessions}
}

// Check evalúa la ruta destino. Rutas públicas siempre pasan; el resto exige
// sesión activa y, en su ausencia, redirige al login de admin.
func (g *Guard) Check(route string) Verdict {
	if publicRoutes[route] {
		return Verdict{Allow: true}
	}
	if g.sessions.Get() == nil {
		return Verdict{Allow: false, Redirect: RouteAdminLogin}
	}
	return Verdict{Allow: true}
}

// Visible indica si la entrada de navegación hacia route se muestra para el
// rol dado. Es un filtro de presentación, no una decisión de acceso.
func (g *Guard) Visible(route, role string) bool {
	if adminOnlyRoutes[route] {
		return role == entity.RoleAdmin
	}
	return true
}

// Menu devuelve las entradas de navegación visibles para el rol dado, en el
// orden del menú. Filtra con Visible; la política permisiva de Check no cambia.
func (g *Guard) Menu(role string) []string {
	out := make([]string, 0, len(navRoutes))
	for _, route := range navRoutes {
		if g.Visible(route, role) {
			out = append(out, route)
		}
	}
	return out
}
