package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/maxhelp-console/internal/application/session"
	"github.com/tu-usuario/maxhelp-console/internal/infrastructure/localstore"
)

func tempStore(t *testing.T) *localstore.FileStore {
	t.Helper()
	return localstore.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStore_ArchivoInexistente_OkFalse(t *testing.T) {
	fs := tempStore(t)
	_, ok, err := fs.Load()
	require.NoError(t, err, "archivo ausente no es error")
	assert.False(t, ok)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	fs := tempStore(t)
	rec := session.Record{Token: "tok-123", Role: "admin", Username: "maxhelp_admin"}
	require.NoError(t, fs.Save(rec))

	got, ok, err := fs.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestFileStore_SavePermisosRestringidos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	fs := localstore.NewFileStore(path)
	require.NoError(t, fs.Save(session.Record{Token: "tok"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(),
		"el archivo contiene el token; solo el dueño debe poder leerlo")
}

func TestFileStore_SaveSobrescribeCompleto(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, fs.Save(session.Record{Token: "viejo", Role: "admin", Username: "a"}))
	require.NoError(t, fs.Save(session.Record{Token: "nuevo", Role: "employee", Username: "b"}))

	got, ok, err := fs.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "nuevo", got.Token)
	assert.Equal(t, "employee", got.Role)
}

func TestFileStore_Clear(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, fs.Save(session.Record{Token: "tok", Role: "admin", Username: "a"}))
	require.NoError(t, fs.Clear())

	_, ok, err := fs.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, fs.Clear(), "limpiar dos veces no es error")
}

func TestFileStore_ArchivoCorrupto_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	fs := localstore.NewFileStore(path)
	_, _, err := fs.Load()
	assert.Error(t, err)
}
