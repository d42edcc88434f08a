// Package stubapi implementa un doble local del backend MaxHelp para
// desarrollo y pruebas manuales de la consola. Reproduce el contrato HTTP del
// backend real (rutas, formatos y códigos de error); el estado vive en
// memoria y se siembra al arrancar.
package stubapi

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// lowInventoryThreshold umbral de stock bajo del backend original.
const lowInventoryThreshold = 10

type user struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Gender       string    `json:"gender"`
	UnitID       int64     `json:"unit_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type businessUnit struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type inventoryItem struct {
	ID           int64           `json:"id"`
	UnitID       int64           `json:"unit_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
}

type feedback struct {
	ID           int64     `json:"id"`
	UnitID       int64     `json:"unit_id"`
	UnitName     string    `json:"unit_name"`
	CustomerName string    `json:"customer_name"`
	Comment      string    `json:"comment"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

// state estado en memoria del stub. Un solo mutex alcanza: es una fixture de
// desarrollo, no un servidor de producción.
type state struct {
	mu        sync.Mutex
	nextID    int64
	users     []user
	units     []businessUnit
	inventory []inventoryItem
	feedbacks []feedback
	reported  map[int64]bool // ids de inventario reportados manualmente
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

// seed puebla el stub con las cuatro unidades del negocio original, el admin
// configurado y datos de muestra suficientes para ejercitar la consola.
func seed(adminName, adminEmail, adminPassword string) (*state, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password del admin: %w", err)
	}
	empHash, err := bcrypt.GenerateFromPassword([]byte("employee123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	st := &state{reported: map[int64]bool{}}

	st.units = []businessUnit{
		{ID: st.id(), Name: "Restaurant", Location: "Festac (Mainland)"},
		{ID: st.id(), Name: "Grocery Store", Location: "Headquarters (Island)"},
		{ID: st.id(), Name: "Bottled Water Industry", Location: "Mobolaji Bank Anthony St (Island)"},
		{ID: st.id(), Name: "Bookshop", Location: "Tafawa Balewa Square (Island)"},
	}

	st.users = []user{
		{ID: st.id(), Name: adminName, Email: adminEmail, PasswordHash: string(hash), Role: "admin", CreatedAt: now},
		{ID: st.id(), Name: "Ada Obi", Email: "ada.obi@maxhelp.local", PasswordHash: string(empHash), Role: "employee", Gender: "Female", UnitID: 2, CreatedAt: now},
		{ID: st.id(), Name: "Chuks Eze", Email: "chuks.eze@maxhelp.local", PasswordHash: string(empHash), Role: "employee", Gender: "Male", UnitID: 1, CreatedAt: now},
	}

	st.inventory = []inventoryItem{
		{ID: st.id(), UnitID: 2, Name: "Rice 5kg", Description: "Long grain parboiled rice", Quantity: 40, ReorderLevel: 15, Price: decimal.NewFromFloat(7500), CreatedAt: now},
		{ID: st.id(), UnitID: 2, Name: "Vegetable Oil 1L", Description: "Refined vegetable oil", Quantity: 6, ReorderLevel: 10, Price: decimal.NewFromFloat(2300), CreatedAt: now},
		{ID: st.id(), UnitID: 3, Name: "Table Water 75cl", Description: "Case of 20 bottles", Quantity: 4, ReorderLevel: 12, Price: decimal.NewFromFloat(1800), CreatedAt: now},
		{ID: st.id(), UnitID: 4, Name: "Notebook A5", Description: "Ruled, 80 leaves", Quantity: 55, ReorderLevel: 20, Price: decimal.NewFromFloat(900), CreatedAt: now},
	}

	st.feedbacks = []feedback{
		{ID: st.id(), UnitID: 1, UnitName: "Restaurant", CustomerName: "Bola A.", Comment: "Great jollof, quick service.", Rating: 5, CreatedAt: now},
		{ID: st.id(), UnitID: 2, UnitName: "Grocery Store", CustomerName: "Emeka O.", Comment: "Prices fair but queues are long.", Rating: 3, CreatedAt: now},
	}

	return st, nil
}

func (s *state) findUserByEmail(email string) *user {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i]
		}
	}
	return nil
}

func (s *state) findUserByName(name string) *user {
	for i := range s.users {
		if s.users[i].Name == name {
			return &s.users[i]
		}
	}
	return nil
}

func (s *state) findUnit(id int64) *businessUnit {
	for i := range s.units {
		if s.units[i].ID == id {
			return &s.units[i]
		}
	}
	return nil
}

func (s *state) findInventory(id int64) *inventoryItem {
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			return &s.inventory[i]
		}
	}
	return nil
}

func (s *state) employeesInUnit(unitID int64) int {
	n := 0
	for _, u := range s.users {
		if u.Role == "employee" && u.UnitID == unitID {
			n++
		}
	}
	return n
}
