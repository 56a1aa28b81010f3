package naming

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type definitionsFile struct {
	Templates []Definition `toml:"template"`
}

// LoadDefinitions decodes [[template]] tables from r. Unknown keys are
// rejected so typos in a template file surface instead of being ignored.
// The returned definitions are not validated until registered.
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	var f definitionsFile
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding template definitions: %w", err)
	}
	return f.Templates, nil
}

// LoadFile reads template definitions from path and registers each one.
func (r *Registry) LoadFile(path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening templates file: %w", err)
	}
	defer fh.Close()

	defs, err := LoadDefinitions(fh)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
	}
	return len(defs), nil
}
