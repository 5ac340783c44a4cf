package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// Store lee y escribe la colección completa de un tipo de registro sobre
// un archivo de texto. No tiene bloqueo propio: los repositorios que lo
// usan serializan sus mutaciones (un escritor lógico por tipo de entidad).
type Store[T any] struct {
	path  string
	codec Codec[T]
	log   *logger.Logger
}

// NewStore construye el store para un archivo de respaldo y su codec.
func NewStore[T any](path string, codec Codec[T], log *logger.Logger) *Store[T] {
	return &Store[T]{path: path, codec: codec, log: log}
}

// Path devuelve la ruta del archivo de respaldo.
func (s *Store[T]) Path() string { return s.path }

// LoadAll lee el archivo línea a línea y acumula los registros que
// decodifican, en orden de archivo. Una línea que no parsea se registra
// y se salta; la ausencia del archivo equivale a una colección vacía.
func (s *Store[T]) LoadAll() ([]T, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("abrir %s: %w", s.path, err)
	}
	defer f.Close()

	var items []T
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := s.codec.Decode(line)
		if err != nil {
			s.log.Warn().
				Str("archivo", s.path).
				Int("linea", lineNo).
				Err(err).
				Msg("registro ilegible, se salta")
			continue
		}
		items = append(items, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.path, err)
	}
	return items, nil
}

// SaveAll reescribe el archivo completo desde la colección recibida,
// conservando su orden. Crea el directorio padre si no existe. Sin
// rename atómico ni fsync: el modelo asume un solo proceso escritor.
func (s *Store[T]) SaveAll(items []T) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", s.path, err)
	}

	w := bufio.NewWriter(f)
	for _, rec := range items {
		if _, err := w.WriteString(s.codec.Encode(rec) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("escribir %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("escribir %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", s.path, err)
	}
	return nil
}
