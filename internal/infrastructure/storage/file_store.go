// Package storage implementa los drivers del contrato KVStore: archivo local
// (por defecto), memoria (tests), PostgreSQL y Redis.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore guarda cada clave como un archivo dentro de un directorio de datos.
// Es el almacenamiento local por defecto: sin servidor, un archivo por clave,
// escritura atómica vía archivo temporal + rename.
type FileStore struct {
	dir string
}

// NewFileStore crea el directorio de datos si no existe y devuelve el store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get lee el archivo de la clave. Si no existe, ok es false sin error.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set escribe el valor en un archivo temporal y lo renombra sobre el definitivo,
// de modo que una caída a mitad de escritura nunca deja un valor corrupto.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	dst := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("archivo temporal para %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir clave %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar clave %s: %w", key, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renombrar clave %s: %w", key, err)
	}
	return nil
}

// path traduce la clave a un nombre de archivo seguro.
func (s *FileStore) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_' || r == '-' || r == '.':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(s.dir, safe+".json")
}
