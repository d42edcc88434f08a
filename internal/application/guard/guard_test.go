package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/maxhelp-console/internal/application/guard"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// fakeSessions implementa guard.SessionReader con una sesión fija.
type fakeSessions struct {
	sess  *entity.Session
	reads int
}

func (f *fakeSessions) Get() *entity.Session {
	f.reads++
	return f.sess
}

func admin() *entity.Session {
	return &entity.Session{Token: "tok", Role: entity.RoleAdmin, Username: "maxhelp_admin"}
}

func employee() *entity.Session {
	return &entity.Session{Token: "tok", Role: entity.RoleEmployee, Username: "ada@maxhelp.com"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Check
// ──────────────────────────────────────────────────────────────────────────────

func TestCheck_RutasPublicasSinSesion(t *testing.T) {
	g := guard.New(&fakeSessions{})
	for _, route := range []string{
		guard.RouteHome, guard.RouteAbout, guard.RouteOnboarding, guard.RouteEmployeeLogin,
	} {
		v := g.Check(route)
		assert.True(t, v.Allow, "ruta pública %s debe pasar sin sesión", route)
	}
}

func TestCheck_ProtegidasSinSesion_RedirigenAdminLogin(t *testing.T) {
	g := guard.New(&fakeSessions{})
	for _, route := range []string{
		guard.RouteDashboard, guard.RouteEmployees, guard.RouteInventory,
		guard.RouteNotifications, guard.RouteFeedbacks,
	} {
		v := g.Check(route)
		assert.False(t, v.Allow, "ruta %s exige sesión", route)
		assert.Equal(t, guard.RouteAdminLogin, v.Redirect)
	}
}

// Política permisiva: cualquier sesión activa pasa cualquier ruta, incluidas
// las marcadas solo-admin. El rol únicamente filtra la navegación visible.
func TestCheck_SesionActivaPasaSinImportarRol(t *testing.T) {
	for _, sess := range []*entity.Session{admin(), employee()} {
		g := guard.New(&fakeSessions{sess: sess})
		for _, route := range []string{
			guard.RouteDashboard, guard.RouteEmployees, guard.RouteInventory, guard.RouteNotifications,
		} {
			assert.True(t, g.Check(route).Allow,
				"rol %s con sesión activa debe pasar %s", sess.Role, route)
		}
	}
}

// El guard consulta la sesión en cada navegación; nunca la cachea.
func TestCheck_ConsultaSesionEnCadaNavegacion(t *testing.T) {
	fs := &fakeSessions{sess: admin()}
	g := guard.New(fs)

	assert.True(t, g.Check(guard.RouteDashboard).Allow)
	fs.sess = nil // logout concurrente
	assert.False(t, g.Check(guard.RouteDashboard).Allow,
		"tras el logout la misma ruta debe redirigir")
	assert.Equal(t, 2, fs.reads)
}

// ──────────────────────────────────────────────────────────────────────────────
// Visible
// ──────────────────────────────────────────────────────────────────────────────

func TestVisible_FiltraRutasAdminParaEmpleados(t *testing.T) {
	g := guard.New(&fakeSessions{})

	assert.True(t, g.Visible(guard.RouteEmployees, entity.RoleAdmin))
	assert.True(t, g.Visible(guard.RouteNotifications, entity.RoleAdmin))

	assert.False(t, g.Visible(guard.RouteEmployees, entity.RoleEmployee))
	assert.False(t, g.Visible(guard.RouteNotifications, entity.RoleEmployee))

	assert.True(t, g.Visible(guard.RouteInventory, entity.RoleEmployee),
		"inventario es visible para ambos roles")
	assert.True(t, g.Visible(guard.RouteDashboard, entity.RoleEmployee))
}

// El menú de navegación ofrece a cada rol solo las entradas que puede ver;
// sin sesión se comporta como un empleado sin privilegios.
func TestMenu_FiltraEntradasPorRol(t *testing.T) {
	g := guard.New(&fakeSessions{})

	assert.Equal(t, []string{
		guard.RouteDashboard, guard.RouteEmployees, guard.RouteInventory,
		guard.RouteNotifications, guard.RouteFeedbacks,
	}, g.Menu(entity.RoleAdmin), "el admin ve todas las entradas en orden")

	menu := g.Menu(entity.RoleEmployee)
	assert.Equal(t, []string{guard.RouteDashboard, guard.RouteInventory, guard.RouteFeedbacks}, menu)
	assert.NotContains(t, menu, guard.RouteEmployees)
	assert.NotContains(t, menu, guard.RouteNotifications)

	assert.Equal(t, menu, g.Menu(""), "sin rol el menú es el de empleado")
}
