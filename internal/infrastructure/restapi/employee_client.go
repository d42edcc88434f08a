package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// EmployeeClient implementa collaborator.EmployeeAPI contra las rutas
// /auth/admin/* del backend.
type EmployeeClient struct {
	c *Client
}

// NewEmployeeClient construye el cliente de empleados.
func NewEmployeeClient(c *Client) *EmployeeClient {
	return &EmployeeClient{c: c}
}

type employeeWire struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Gender    string `json:"gender"`
	UnitID    int64  `json:"unit_id"`
	CreatedAt string `json:"created_at"`
}

func (w employeeWire) toEntity() entity.Employee {
	return entity.Employee{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Role:      w.Role,
		Gender:    w.Gender,
		UnitID:    w.UnitID,
		CreatedAt: parseTime(w.CreatedAt),
	}
}

type employeePayload struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	UnitID   *int64  `json:"unit_id,omitempty"`
	Password *string `json:"password,omitempty"`
}

// List trae todos los empleados.
func (e *EmployeeClient) List(ctx context.Context) ([]entity.Employee, error) {
	var wires []employeeWire
	if err := e.c.doJSON(ctx, http.MethodGet, "/auth/admin/list-details", nil, &wires, true); err != nil {
		return nil, err
	}
	out := make([]entity.Employee, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// Create da de alta un empleado; el backend asigna el id.
func (e *EmployeeClient) Create(ctx context.Context, draft entity.EmployeeDraft) (entity.Employee, error) {
	body := employeePayload{
		Name:     &draft.Name,
		Email:    &draft.Email,
		Role:     &draft.Role,
		Gender:   &draft.Gender,
		UnitID:   &draft.UnitID,
		Password: &draft.Password,
	}
	var w employeeWire
	if err := e.c.doJSON(ctx, http.MethodPost, "/auth/admin/create-employee", body, &w, true); err != nil {
		return entity.Employee{}, err
	}
	return w.toEntity(), nil
}

// Update actualiza un empleado; campos nil del parche no se envían.
func (e *EmployeeClient) Update(ctx context.Context, id int64, patch entity.EmployeePatch) (entity.Employee, error) {
	body := employeePayload{
		Name:     patch.Name,
		Email:    patch.Email,
		Role:     patch.Role,
		Gender:   patch.Gender,
		UnitID:   patch.UnitID,
		Password: patch.Password,
	}
	var w employeeWire
	if err := e.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/auth/admin/update-employee/%d", id), body, &w, true); err != nil {
		return entity.Employee{}, err
	}
	return w.toEntity(), nil
}

// Delete elimina un empleado.
func (e *EmployeeClient) Delete(ctx context.Context, id int64) error {
	return e.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/auth/admin/delete-employee/%d", id), nil, nil, true)
}

// ListStats trae los conteos agregados del negocio (solo admin).
func (e *EmployeeClient) ListStats(ctx context.Context) (entity.BusinessStats, error) {
	var out struct {
		TotalEmployees     int `json:"total_employees"`
		TotalBusinessUnits int `json:"total_business_units"`
	}
	if err := e.c.doJSON(ctx, http.MethodGet, "/auth/admin/list-stats", nil, &out, true); err != nil {
		return entity.BusinessStats{}, err
	}
	return entity.BusinessStats{
		TotalEmployees:     out.TotalEmployees,
		TotalBusinessUnits: out.TotalBusinessUnits,
	}, nil
}

// CreateBusinessUnit registra una unidad de negocio.
func (e *EmployeeClient) CreateBusinessUnit(ctx context.Context, draft entity.BusinessUnitDraft) (entity.BusinessUnit, error) {
	body := map[string]string{
		"name":     draft.Name,
		"location": draft.Location,
	}
	var out struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := e.c.doJSON(ctx, http.MethodPost, "/auth/admin/create-business-unit", body, &out, true); err != nil {
		return entity.BusinessUnit{}, err
	}
	return entity.BusinessUnit{ID: out.ID, Name: out.Name, Location: out.Location}, nil
}
