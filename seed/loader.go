package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/* Loader reads catalog fixtures from a YAML file
 * and validates every record before anything touches the database
 */
type Loader struct {
	fixtures Fixtures
}

// NewLoader creates a new fixture loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the seed file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}
	return l.Parse(data)
}

// Parse decodes and validates YAML fixtures
func (l *Loader) Parse(data []byte) error {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing seed YAML: %w", err)
	}

	for i, n := range f.Languages {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("validating language #%d: %w", i+1, err)
		}
	}
	for i, n := range f.Genres {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("validating genre #%d: %w", i+1, err)
		}
	}
	for i, a := range f.Authors {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("validating author #%d: %w", i+1, err)
		}
	}

	l.fixtures = f
	return nil
}

// Fixtures returns the loaded fixtures
func (l *Loader) Fixtures() Fixtures {
	return l.fixtures
}
