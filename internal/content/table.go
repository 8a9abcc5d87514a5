package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"english-tutor/internal/domain"
)

var (
	ErrEmptyTable   = errors.New("content table is empty")
	ErrInvalidEntry = errors.New("content entry invalid")
)

// Table es la tabla de contenido inmutable. Se construye una vez al arrancar.
type Table struct {
	entries []domain.ContentEntry
}

// NewTable valida y copia las entradas recibidas.
func NewTable(entries []domain.ContentEntry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	out := make([]domain.ContentEntry, 0, len(entries))
	for i, e := range entries {
		e.Topic = strings.ToLower(strings.TrimSpace(e.Topic))
		e.Content = strings.TrimSpace(e.Content)
		e.Example = strings.TrimSpace(e.Example)
		if e.Topic == "" || e.Content == "" || !e.Category.Valid() {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Topic, ErrInvalidEntry)
		}
		out = append(out, e)
	}
	return &Table{entries: out}, nil
}

// Entries devuelve una copia de las entradas en orden de inserción.
func (t *Table) Entries() []domain.ContentEntry {
	if t == nil {
		return nil
	}
	out := make([]domain.ContentEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Filter devuelve las entradas que cumplen el predicado, en orden de tabla.
func (t *Table) Filter(keep func(domain.ContentEntry) bool) []domain.ContentEntry {
	if t == nil {
		return nil
	}
	var out []domain.ContentEntry
	for _, e := range t.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Topics lista los topics distintos en orden de primera aparición.
func (t *Table) Topics() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(t.entries))
	topics := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if _, ok := seen[e.Topic]; ok {
			continue
		}
		seen[e.Topic] = struct{}{}
		topics = append(topics, e.Topic)
	}
	return topics
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

type fileFormat struct {
	Entries []domain.ContentEntry `yaml:"entries"`
}

// LoadFile lee una tabla desde un archivo YAML con la forma `entries: [...]`.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Table, error) {
	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse content yaml: %w", err)
	}
	return NewTable(f.Entries)
}
