package dto

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// EmployeeForm formulario de alta/edición de empleado. El mismo formulario
// sirve para crear y actualizar; la diferencia es que Password solo es
// obligatorio al crear.
type EmployeeForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Gender   string `json:"gender"`
	UnitID   int64  `json:"unit_id"`
	Password string `json:"password"`
}

// ValidateCreate valida el formulario para creación. Corre antes de cualquier
// llamada de red; si falla, el modal queda abierto con el error.
func (f EmployeeForm) ValidateCreate() error {
	if err := f.validateCommon(); err != nil {
		return err
	}
	if f.Password == "" {
		return fmt.Errorf("%w: password es requerido", domain.ErrValidation)
	}
	if len(f.Password) < 8 {
		return fmt.Errorf("%w: password debe tener al menos 8 caracteres", domain.ErrValidation)
	}
	return nil
}

// ValidateUpdate valida el formulario para actualización; password es opcional.
func (f EmployeeForm) ValidateUpdate() error {
	if err := f.validateCommon(); err != nil {
		return err
	}
	if f.Password != "" && len(f.Password) < 8 {
		return fmt.Errorf("%w: password debe tener al menos 8 caracteres", domain.ErrValidation)
	}
	return nil
}

func (f EmployeeForm) validateCommon() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if !strings.Contains(f.Email, "@") {
		return fmt.Errorf("%w: email inválido", domain.ErrValidation)
	}
	if f.Role != entity.RoleAdmin && f.Role != entity.RoleEmployee {
		return fmt.Errorf("%w: role debe ser admin o employee", domain.ErrValidation)
	}
	if f.Gender != entity.GenderMale && f.Gender != entity.GenderFemale {
		return fmt.Errorf("%w: gender debe ser Male o Female", domain.ErrValidation)
	}
	if f.UnitID <= 0 {
		return fmt.Errorf("%w: unit_id es requerido", domain.ErrValidation)
	}
	return nil
}

// Draft convierte el formulario en el borrador que consume el backend.
func (f EmployeeForm) Draft() entity.EmployeeDraft {
	return entity.EmployeeDraft{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Role:     f.Role,
		Gender:   f.Gender,
		UnitID:   f.UnitID,
		Password: f.Password,
	}
}

// Patch convierte el formulario en un parche de actualización. Password vacío
// significa "no cambiar la contraseña".
func (f EmployeeForm) Patch() entity.EmployeePatch {
	name := strings.TrimSpace(f.Name)
	email := strings.TrimSpace(f.Email)
	role := f.Role
	gender := f.Gender
	unitID := f.UnitID
	p := entity.EmployeePatch{
		Name:   &name,
		Email:  &email,
		Role:   &role,
		Gender: &gender,
		UnitID: &unitID,
	}
	if f.Password != "" {
		pw := f.Password
		p.Password = &pw
	}
	return p
}
