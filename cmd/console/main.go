// console es la consola administrativa de MaxHelp: autentica contra el
// backend, gestiona empleados e inventario, y muestra alertas, feedbacks y
// resúmenes del negocio.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/maxhelp-console/internal/application/auth"
	"github.com/tu-usuario/maxhelp-console/internal/application/dto"
	"github.com/tu-usuario/maxhelp-console/internal/application/guard"
	"github.com/tu-usuario/maxhelp-console/internal/application/notification"
	"github.com/tu-usuario/maxhelp-console/internal/application/session"
	"github.com/tu-usuario/maxhelp-console/internal/application/view"
	"github.com/tu-usuario/maxhelp-console/internal/infrastructure/localstore"
	"github.com/tu-usuario/maxhelp-console/internal/infrastructure/restapi"
	"github.com/tu-usuario/maxhelp-console/pkg/config"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

type console struct {
	sessions  *session.Store
	guard     *guard.Guard
	auth      *auth.UseCase
	employees *view.EmployeeView
	inventory *view.InventoryView
	dashboard *view.DashboardView
	feed      *notification.Feed
	current   string // ruta activa
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("env", cfg.App.Env).Str("api", cfg.API.BaseURL).Msg("iniciando consola")

	sessions := session.NewStore(localstore.NewFileStore(cfg.Session.FilePath), log)
	base := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), sessions, log)

	authClient := restapi.NewAuthClient(base)
	employeeClient := restapi.NewEmployeeClient(base)
	inventoryClient := restapi.NewInventoryClient(base)
	feedbackClient := restapi.NewFeedbackClient(base)
	notificationClient := restapi.NewNotificationClient(base)

	co := &console{
		sessions:  sessions,
		guard:     guard.New(sessions),
		auth:      auth.NewUseCase(authClient, sessions, log),
		employees: view.NewEmployeeView(employeeClient, log),
		inventory: view.NewInventoryView(inventoryClient, log),
		dashboard: view.NewDashboardView(employeeClient, inventoryClient, feedbackClient, log),
		current:   guard.RouteHome,
	}
	co.feed = notification.NewFeed(notificationClient, func(total int) {
		fmt.Printf("Total Notifications: %d\n", total)
	}, log)

	co.run()
}

func (co *console) run() {
	fmt.Println("MaxHelp Business Admin - Console. Escribe 'help' para ver los comandos.")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", co.current)
		if !sc.Scan() {
			return
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return
		}
		if err := co.dispatch(context.Background(), args); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func (co *console) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "help":
		co.printHelp()
		return nil
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("uso: login <username> <password>")
		}
		sess, err := co.auth.LoginAdmin(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Login Successful! (%s)\n", sess.Role)
		return co.navigate(ctx, guard.RouteDashboard)
	case "elogin":
		if len(args) != 3 {
			return fmt.Errorf("uso: elogin <email> <password>")
		}
		if _, err := co.auth.LoginEmployee(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("Login Successful!")
		return co.navigate(ctx, guard.RouteInventory)
	case "logout":
		if err := co.auth.Logout(); err != nil {
			return err
		}
		return co.navigate(ctx, guard.RouteHome)
	case "open":
		if len(args) != 2 {
			return fmt.Errorf("uso: open <ruta>")
		}
		return co.navigate(ctx, args[1])
	case "emp":
		return co.employeeCommand(ctx, args[1:])
	case "inv":
		return co.inventoryCommand(ctx, args[1:])
	case "unit":
		return co.unitCommand(ctx, args[1:])
	default:
		return fmt.Errorf("comando desconocido %q; prueba 'help'", args[0])
	}
}

// navigate evalúa la ruta con el guard, desmonta la vista anterior y monta la
// nueva. Cada vista re-lista al montar; no hay caché compartida entre vistas.
func (co *console) navigate(ctx context.Context, route string) error {
	verdict := co.guard.Check(route)
	if !verdict.Allow {
		fmt.Println("You need to be logged in to access this page.")
		route = verdict.Redirect
	}

	// Desmontar la vista que se abandona
	switch co.current {
	case guard.RouteEmployees:
		co.employees.Unmount()
	case guard.RouteInventory:
		co.inventory.Unmount()
	case guard.RouteNotifications:
		co.feed.Leave()
	}
	co.current = route

	switch route {
	case guard.RouteEmployees:
		emps, err := co.employees.Mount(ctx)
		if err != nil {
			return err
		}
		_, gc := co.employees.Snapshot()
		fmt.Printf("%-4s %-20s %-28s %-10s %-8s %s\n", "ID", "Name", "Email", "Role", "Gender", "Unit")
		for _, e := range emps {
			fmt.Printf("%-4d %-20s %-28s %-10s %-8s %d\n", e.ID, e.Name, e.Email, e.Role, e.Gender, e.UnitID)
		}
		fmt.Printf("Gender: %d male / %d female\n", gc.Male, gc.Female)
	case guard.RouteInventory:
		items, err := co.inventory.Mount(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%-4s %-22s %-6s %-8s %-10s %s\n", "ID", "Name", "Qty", "Reorder", "Price", "Unit")
		for _, it := range items {
			fmt.Printf("%-4d %-22s %-6d %-8d %-10s %d\n", it.ID, it.Name, it.Quantity, it.ReorderLevel, it.Price.StringFixed(2), it.UnitID)
		}
		stats := co.inventory.Stats()
		fmt.Printf("Total: %d items, %d low on stock\n", stats.TotalInventory, stats.LowInventoryCount)
	case guard.RouteNotifications:
		items, err := co.feed.Enter(ctx)
		if err != nil {
			return err
		}
		for i, n := range items {
			fmt.Printf("Notification %d: %s [%s, %s] qty=%d employees=%d\n",
				i+1, n.Message, n.BusinessUnitName, n.Location, n.Quantity, n.TotalEmployees)
		}
	case guard.RouteDashboard:
		sum := co.dashboard.Mount(ctx)
		fmt.Printf("Business Units: %d  Employees: %d\n", sum.Business.TotalBusinessUnits, sum.Business.TotalEmployees)
		fmt.Printf("Inventory: %d items, %d low on stock\n", sum.Inventory.TotalInventory, sum.Inventory.LowInventoryCount)
		for _, fb := range sum.Feedbacks {
			fmt.Printf("  [%s] %s - %s (%d/5)\n", fb.UnitName, fb.CustomerName, fb.Comment, fb.Rating)
		}
	case guard.RouteFeedbacks:
		sum := co.dashboard.Mount(ctx)
		for _, fb := range sum.Feedbacks {
			fmt.Printf("[%s] %s - %s (%d/5)\n", fb.UnitName, fb.CustomerName, fb.Comment, fb.Rating)
		}
	default:
		fmt.Println("--", route, "--")
	}
	return nil
}

func (co *console) employeeCommand(ctx context.Context, args []string) error {
	if co.current != guard.RouteEmployees {
		return fmt.Errorf("abre primero la vista: open %s", guard.RouteEmployees)
	}
	if len(args) == 0 {
		return fmt.Errorf("uso: emp add|update|del ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 7 {
			return fmt.Errorf("uso: emp add <name> <email> <role> <gender> <unit_id> <password>")
		}
		unitID, _ := strconv.ParseInt(args[5], 10, 64)
		co.employees.BeginCreate()
		created, err := co.employees.SubmitCreate(ctx, dto.EmployeeForm{
			Name: args[1], Email: args[2], Role: args[3], Gender: args[4], UnitID: unitID, Password: args[6],
		})
		if err != nil {
			return err
		}
		fmt.Println("Employee created successfully:", created.ID)
	case "update":
		if len(args) != 7 {
			return fmt.Errorf("uso: emp update <id> <name> <email> <gender> <unit_id> <password|->")
		}
		id, _ := strconv.ParseInt(args[1], 10, 64)
		prev, err := co.employees.BeginUpdate(id)
		if err != nil {
			return err
		}
		password := args[6]
		if password == "-" {
			password = ""
		}
		unitID, _ := strconv.ParseInt(args[5], 10, 64)
		if _, err := co.employees.SubmitUpdate(ctx, dto.EmployeeForm{
			Name: args[2], Email: args[3], Role: prev.Role, Gender: args[4], UnitID: unitID, Password: password,
		}); err != nil {
			return err
		}
		fmt.Println("Employee updated successfully")
	case "del":
		if len(args) != 2 {
			return fmt.Errorf("uso: emp del <id>")
		}
		id, _ := strconv.ParseInt(args[1], 10, 64)
		co.employees.BeginDelete(id)
		if err := co.employees.ConfirmDelete(ctx); err != nil {
			return err
		}
		fmt.Println("Employee deleted successfully")
	default:
		return fmt.Errorf("subcomando desconocido %q", args[0])
	}
	_, gc := co.employees.Snapshot()
	fmt.Printf("Gender: %d male / %d female\n", gc.Male, gc.Female)
	return nil
}

func (co *console) inventoryCommand(ctx context.Context, args []string) error {
	if co.current != guard.RouteInventory {
		return fmt.Errorf("abre primero la vista: open %s", guard.RouteInventory)
	}
	if len(args) == 0 {
		return fmt.Errorf("uso: inv add|update|del|report ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 7 {
			return fmt.Errorf("uso: inv add <unit_id> <name> <description> <quantity> <reorder> <price>")
		}
		unitID, _ := strconv.ParseInt(args[1], 10, 64)
		qty, _ := strconv.Atoi(args[4])
		reorder, _ := strconv.Atoi(args[5])
		price, err := decimal.NewFromString(args[6])
		if err != nil {
			return fmt.Errorf("precio inválido: %w", err)
		}
		co.inventory.BeginCreate()
		created, err := co.inventory.SubmitCreate(ctx, dto.InventoryForm{
			UnitID: unitID, Name: args[2], Description: args[3],
			Quantity: qty, ReorderLevel: reorder, Price: price,
		})
		if err != nil {
			return err
		}
		fmt.Println("Inventory item created successfully:", created.ID)
	case "update":
		if len(args) != 5 {
			return fmt.Errorf("uso: inv update <id> <quantity> <reorder> <price>")
		}
		id, _ := strconv.ParseInt(args[1], 10, 64)
		prev, err := co.inventory.BeginUpdate(id)
		if err != nil {
			return err
		}
		qty, _ := strconv.Atoi(args[2])
		reorder, _ := strconv.Atoi(args[3])
		price, err := decimal.NewFromString(args[4])
		if err != nil {
			return fmt.Errorf("precio inválido: %w", err)
		}
		if _, err := co.inventory.SubmitUpdate(ctx, dto.InventoryForm{
			UnitID: prev.UnitID, Name: prev.Name, Description: prev.Description,
			Quantity: qty, ReorderLevel: reorder, Price: price,
		}); err != nil {
			return err
		}
		fmt.Println("Inventory item updated successfully")
	case "del":
		if len(args) != 2 {
			return fmt.Errorf("uso: inv del <id>")
		}
		id, _ := strconv.ParseInt(args[1], 10, 64)
		co.inventory.BeginDelete(id)
		if err := co.inventory.ConfirmDelete(ctx); err != nil {
			return err
		}
		fmt.Println("Inventory item deleted successfully")
	case "report":
		if len(args) != 2 {
			return fmt.Errorf("uso: inv report <id>")
		}
		id, _ := strconv.ParseInt(args[1], 10, 64)
		co.inventory.BeginReport()
		if err := co.inventory.SubmitReport(ctx, id); err != nil {
			return err
		}
		fmt.Println("Low inventory reported successfully")
	default:
		return fmt.Errorf("subcomando desconocido %q", args[0])
	}
	stats := co.inventory.Stats()
	fmt.Printf("Total: %d items, %d low on stock\n", stats.TotalInventory, stats.LowInventoryCount)
	return nil
}

// unitCommand alta de unidades de negocio desde el tablero, como en la SPA
// original. La location puede llevar espacios.
func (co *console) unitCommand(ctx context.Context, args []string) error {
	if co.current != guard.RouteDashboard {
		return fmt.Errorf("abre primero la vista: open %s", guard.RouteDashboard)
	}
	if len(args) < 3 || args[0] != "add" {
		return fmt.Errorf("uso: unit add <name> <location>")
	}
	bu, err := co.dashboard.CreateUnit(ctx, args[1], strings.Join(args[2:], " "))
	if err != nil {
		return err
	}
	fmt.Printf("Business unit created successfully: %d (%s, %s)\n", bu.ID, bu.Name, bu.Location)
	return nil
}

// printHelp muestra los comandos; las rutas navegables se filtran por el rol
// de la sesión vigente, igual que el menú lateral de la SPA.
func (co *console) printHelp() {
	role := ""
	if sess := co.sessions.Get(); sess != nil {
		role = sess.Role
	}
	fmt.Print(`Comandos:
  login <username> <password>     login de admin
  elogin <email> <password>       login de empleado
  logout
`)
	fmt.Printf("  open <ruta>                     %s\n", strings.Join(co.guard.Menu(role), " "))
	fmt.Print(`  emp add <name> <email> <role> <gender> <unit_id> <password>
  emp update <id> <name> <email> <gender> <unit_id> <password|->
  emp del <id>
  inv add <unit_id> <name> <description> <quantity> <reorder> <price>
  inv update <id> <quantity> <reorder> <price>
  inv del <id>
  inv report <id>
  unit add <name> <location>
  quit
`)
}
