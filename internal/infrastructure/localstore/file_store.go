// Package localstore implementa la persistencia local de la sesión en un
// archivo JSON: el equivalente de consola del localStorage del navegador.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tu-usuario/maxhelp-console/internal/application/session"
)

// FileStore guarda el registro de sesión en un archivo JSON. La escritura es
// atómica (archivo temporal + rename) para que nunca quede un registro parcial
// por un corte a mitad de escritura.
type FileStore struct {
	path string
}

// NewFileStore construye el almacén sobre la ruta dada.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load lee el registro persistido; ok=false si el archivo no existe.
func (f *FileStore) Load() (session.Record, bool, error) {
	var rec session.Record
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rec, false, nil
		}
		return rec, false, fmt.Errorf("leer %s: %w", f.path, err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, false, fmt.Errorf("decodificar %s: %w", f.path, err)
	}
	return rec, true, nil
}

// Save persiste el registro completo de forma síncrona y atómica.
func (f *FileStore) Save(rec session.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("crear temporal en %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// 0600: el archivo contiene el token bearer
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// Clear elimina el registro. Borrar un archivo inexistente no es error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
