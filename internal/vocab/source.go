package vocab

import (
	"os"
	"path/filepath"
	"strings"
)

// Source defines a vocabulary file format loader.
type Source interface {
	Name() string
	Extensions() []string
	Load(filename string) ([]Record, error)
}

var registry []Source

// Register adds a source loader to the registry.
func Register(s Source) {
	registry = append(registry, s)
}

func init() {
	Register(&CSVSource{})
	Register(&TSVSource{})
}

// LoadFile loads vocabulary records from a file, using a registered
// source or the comma-delimited fallback.
func LoadFile(filename string) ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range registry {
		for _, e := range s.Extensions() {
			if ext == e {
				return s.Load(filename)
			}
		}
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), ','), nil
}

// SupportedSources returns registered source names with their extensions.
func SupportedSources() []string {
	var out []string
	for _, s := range registry {
		out = append(out, s.Name()+" ("+strings.Join(s.Extensions(), ", ")+")")
	}
	return out
}

// CSVSource implements Source for comma-delimited files.
type CSVSource struct{}

func (s *CSVSource) Name() string         { return "CSV" }
func (s *CSVSource) Extensions() []string { return []string{".csv"} }

func (s *CSVSource) Load(filename string) ([]Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), ','), nil
}

// TSVSource implements Source for tab-delimited files.
type TSVSource struct{}

func (s *TSVSource) Name() string         { return "TSV" }
func (s *TSVSource) Extensions() []string { return []string{".tsv", ".tab"} }

func (s *TSVSource) Load(filename string) ([]Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), '\t'), nil
}
