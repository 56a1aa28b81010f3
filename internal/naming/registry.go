package naming

import (
	"fmt"
	"slices"
	"strings"

	"github.com/backmassage/bulkrename/internal/errs"
)

// Built-in template definitions.
var (
	Generic = Definition{
		ID:          "generic",
		Description: "prefix + sequence + original extension, every file",
		Kind:        KindFixedPrefix,
		SeqStart:    1,
		Width:       2,
		Accept:      []string{""},
		Confirm:     true,
	}

	OlympusC180 = Definition{
		ID:            "olympus_c180",
		Description:   "Olympus C-180 camera layout: P<folder><seq>.JPG inside NNNOLYMP folders",
		Kind:          KindStructured,
		SeqStart:      1,
		Width:         4,
		Tag:           "P",
		Extension:     ".JPG",
		Accept:        []string{".jpg"},
		FolderPattern: `(?i)^([1-9]\d{2,})OLYMP$`,
		MinFolder:     100,
	}
)

// Registry maps lowercase template ids to definitions.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// DefaultRegistry returns a registry holding the built-in templates.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range []Definition{Generic, OlympusC180} {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Register validates d and adds it. Registering an id twice is an error.
func (r *Registry) Register(d Definition) error {
	nd, err := d.normalize()
	if err != nil {
		return err
	}
	if _, ok := r.defs[nd.ID]; ok {
		return &errs.TemplateConfigError{Template: nd.ID, Reason: "already registered"}
	}
	r.defs[nd.ID] = nd
	return nil
}

// Lookup returns the definition for id, ignoring case.
func (r *Registry) Lookup(id string) (Definition, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	d, ok := r.defs[key]
	if !ok {
		return Definition{}, &errs.ValidationError{
			Field:  "template",
			Value:  id,
			Reason: fmt.Sprintf("unsupported template; available: %s", strings.Join(r.IDs(), ", ")),
		}
	}
	return d, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Definitions returns the registered definitions sorted by id.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.defs))
	for _, id := range r.IDs() {
		out = append(out, r.defs[id])
	}
	return out
}
