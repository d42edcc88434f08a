package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/maxhelp-console/internal/application/dto"
	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

func baseForm() dto.EmployeeForm {
	return dto.EmployeeForm{
		Name: "Bola Ade", Email: "bola@maxhelp.com", Role: entity.RoleEmployee,
		Gender: entity.GenderFemale, UnitID: 2, Password: "segura-123",
	}
}

func TestEmployeeForm_ValidateCreate(t *testing.T) {
	require.NoError(t, baseForm().ValidateCreate())

	cases := []struct {
		nombre string
		mutate func(*dto.EmployeeForm)
	}{
		{"nombre vacío", func(f *dto.EmployeeForm) { f.Name = "  " }},
		{"email sin arroba", func(f *dto.EmployeeForm) { f.Email = "bola.maxhelp.com" }},
		{"rol desconocido", func(f *dto.EmployeeForm) { f.Role = "manager" }},
		{"género desconocido", func(f *dto.EmployeeForm) { f.Gender = "female" }},
		{"unidad ausente", func(f *dto.EmployeeForm) { f.UnitID = 0 }},
		{"password ausente", func(f *dto.EmployeeForm) { f.Password = "" }},
		{"password corta", func(f *dto.EmployeeForm) { f.Password = "corta" }},
	}
	for _, tc := range cases {
		f := baseForm()
		tc.mutate(&f)
		assert.ErrorIs(t, f.ValidateCreate(), domain.ErrValidation, tc.nombre)
	}
}

func TestEmployeeForm_ValidateUpdate_PasswordOpcional(t *testing.T) {
	f := baseForm()
	f.Password = ""
	assert.NoError(t, f.ValidateUpdate(), "en actualización la contraseña puede omitirse")

	f.Password = "corta"
	assert.ErrorIs(t, f.ValidateUpdate(), domain.ErrValidation,
		"si se provee, sigue exigiendo el largo mínimo")
}

func TestEmployeeForm_Patch_PasswordVaciaNoViaja(t *testing.T) {
	f := baseForm()
	f.Password = ""
	p := f.Patch()
	assert.Nil(t, p.Password, "password vacío significa no cambiarla")
	require.NotNil(t, p.Name)
	assert.Equal(t, "Bola Ade", *p.Name)
}

func TestInventoryForm_Validaciones(t *testing.T) {
	f := dto.InventoryForm{
		UnitID: 1, Name: "Notebook A5", Quantity: 10, ReorderLevel: 5,
		Price: decimal.NewFromInt(900),
	}
	require.NoError(t, f.ValidateCreate())

	f.Quantity = -1
	assert.ErrorIs(t, f.ValidateCreate(), domain.ErrValidation)
	f.Quantity = 10

	f.Price = decimal.NewFromInt(-1)
	assert.ErrorIs(t, f.ValidateUpdate(), domain.ErrValidation)

	f = dto.InventoryForm{Name: " ", UnitID: 1}
	assert.ErrorIs(t, f.ValidateCreate(), domain.ErrValidation)
}
