package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/maxhelp-console/internal/application/store"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

func TestProjectGender_CuentaSoloValoresReconocidos(t *testing.T) {
	gc := store.ProjectGender([]entity.Employee{
		emp(1, "Ada", entity.GenderFemale),
		emp(2, "Chuks", entity.GenderMale),
		emp(3, "X", "Other"),
		emp(4, "Y", ""),
	})
	assert.Equal(t, entity.GenderCount{Male: 1, Female: 1}, gc,
		"valores no reconocidos quedan fuera de ambos conteos")
}

func TestProjectGender_ColeccionVacia(t *testing.T) {
	assert.Equal(t, entity.GenderCount{}, store.ProjectGender(nil))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, store.Count[entity.Employee](nil))
	assert.Equal(t, 2, store.Count([]entity.Employee{emp(1, "A", ""), emp(2, "B", "")}))
}

// El conteo por género acompaña cada mutación confirmada: alta de un hombre y
// una mujer da {1,1}; borrar al hombre deja {0,1}; cambiar el género de la
// mujer mueve el conteo sin alterar la suma.
func TestProjectGender_PareadoConCadaMutacion(t *testing.T) {
	api := &fakeAPI{}
	s := newStore(api)
	ctx := context.Background()
	_, err := s.List(ctx)
	require.NoError(t, err)

	a, err := s.Create(ctx, entity.EmployeeDraft{Name: "A", Gender: entity.GenderMale})
	require.NoError(t, err)
	b, err := s.Create(ctx, entity.EmployeeDraft{Name: "B", Gender: entity.GenderFemale})
	require.NoError(t, err)

	items, gc := s.Snapshot()
	assert.Equal(t, entity.GenderCount{Male: 1, Female: 1}, gc)
	assert.Equal(t, len(items), gc.Male+gc.Female)

	require.NoError(t, s.Remove(ctx, a.ID))
	items, gc = s.Snapshot()
	assert.Equal(t, entity.GenderCount{Male: 0, Female: 1}, gc)
	assert.Equal(t, len(items), gc.Male+gc.Female)

	male := entity.GenderMale
	_, err = s.Update(ctx, b.ID, entity.EmployeePatch{Gender: &male})
	require.NoError(t, err)
	items, gc = s.Snapshot()
	assert.Equal(t, entity.GenderCount{Male: 1, Female: 0}, gc)
	assert.Equal(t, len(items), gc.Male+gc.Female,
		"tras cada mutación la suma de géneros iguala el tamaño de la colección")
}
