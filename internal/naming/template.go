package naming

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/backmassage/bulkrename/internal/errs"
)

// Kind selects the name builder a definition resolves to.
type Kind string

const (
	KindFixedPrefix Kind = "fixed-prefix"
	KindStructured  Kind = "structured"
)

// Definition is a flat description of a naming convention. It is the unit
// stored in a [Registry] and decoded from template files.
type Definition struct {
	ID          string `toml:"id"          json:"id"          yaml:"id"`
	Description string `toml:"description" json:"description" yaml:"description"`
	Kind        Kind   `toml:"kind"        json:"kind"        yaml:"kind"`

	// SeqStart is the first sequence number. Values below 1 mean 1.
	SeqStart int `toml:"seq_start" json:"seq_start" yaml:"seq_start"`
	// Width is the minimum sequence width for fixed-prefix templates and the
	// exact width for structured ones.
	Width int `toml:"width" json:"width" yaml:"width"`

	Prefix    string `toml:"prefix"    json:"prefix,omitempty"    yaml:"prefix,omitempty"`
	Tag       string `toml:"tag"       json:"tag,omitempty"       yaml:"tag,omitempty"`
	Extension string `toml:"extension" json:"extension,omitempty" yaml:"extension,omitempty"`

	// Accept lists filename suffixes, matched case-insensitively. An empty
	// suffix accepts every file.
	Accept []string `toml:"accept" json:"accept" yaml:"accept"`

	FolderPattern string `toml:"folder_pattern" json:"folder_pattern,omitempty" yaml:"folder_pattern,omitempty"`
	MinFolder     int    `toml:"min_folder"     json:"min_folder,omitempty"     yaml:"min_folder,omitempty"`

	// Confirm asks before a destructive run.
	Confirm bool `toml:"confirm" json:"confirm" yaml:"confirm"`

	folderRe *regexp.Regexp
}

// Params are per-run overrides. Zero values keep the definition's defaults.
type Params struct {
	Prefix string
	Start  int
	Width  int
}

// Spec is a definition resolved for one directory and one set of params.
type Spec struct {
	Template string
	SeqStart int
	Accept   []string
	Counter  Counter
	Confirm  bool
}

var reTemplateID = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)

// normalize validates d and returns a copy with defaults applied, accepted
// suffixes lowercased, and the folder pattern compiled.
func (d Definition) normalize() (Definition, error) {
	d.ID = strings.ToLower(strings.TrimSpace(d.ID))
	invalid := func(format string, args ...any) (Definition, error) {
		return Definition{}, &errs.TemplateConfigError{Template: d.ID, Reason: fmt.Sprintf(format, args...)}
	}
	if !reTemplateID.MatchString(d.ID) {
		return invalid("invalid id %q", d.ID)
	}
	if d.SeqStart < 1 {
		d.SeqStart = 1
	}
	if d.Width < 0 || d.Width > MaxWidth {
		return invalid("width must be between 0 and %d, got %d", MaxWidth, d.Width)
	}
	if d.MinFolder < 0 {
		return invalid("min_folder must be >= 0, got %d", d.MinFolder)
	}

	accept := make([]string, 0, len(d.Accept))
	for _, a := range d.Accept {
		accept = append(accept, strings.ToLower(strings.TrimSpace(a)))
	}
	if len(accept) == 0 {
		accept = []string{""}
	}
	d.Accept = accept

	if d.FolderPattern != "" {
		re, err := regexp.Compile(d.FolderPattern)
		if err != nil {
			return invalid("folder_pattern: %v", err)
		}
		d.folderRe = re
	}

	switch d.Kind {
	case KindFixedPrefix:
		if d.Width == 0 {
			d.Width = 1
		}
	case KindStructured:
		if d.Width < 1 {
			return invalid("structured templates need a width >= 1")
		}
		if d.Extension == "" {
			return invalid("structured templates need an extension")
		}
		if d.folderRe == nil || d.folderRe.NumSubexp() < 1 {
			return invalid("structured templates need a folder_pattern with a capture group")
		}
	default:
		return invalid("unknown kind %q (valid: %s, %s)", d.Kind, KindFixedPrefix, KindStructured)
	}
	return d, nil
}

// Resolve binds d to dir and p. Structured templates read their folder
// number from the directory name; fixed-prefix templates need a prefix
// from either the definition or p.
func (d Definition) Resolve(dir string, p Params) (Spec, error) {
	d, err := d.normalize()
	if err != nil {
		return Spec{}, err
	}

	spec := Spec{
		Template: d.ID,
		SeqStart: d.SeqStart,
		Accept:   d.Accept,
		Confirm:  d.Confirm,
	}
	if p.Start > 0 {
		spec.SeqStart = p.Start
	}
	if p.Width > MaxWidth {
		return Spec{}, &errs.ValidationError{
			Field:  "width",
			Value:  fmt.Sprint(p.Width),
			Reason: fmt.Sprintf("must be at most %d", MaxWidth),
		}
	}

	switch d.Kind {
	case KindFixedPrefix:
		if d.folderRe != nil {
			name := folderName(dir)
			if matchFolder(d.folderRe, name) == nil {
				return Spec{}, &errs.ValidationError{
					Field:  "directory",
					Value:  name,
					Reason: fmt.Sprintf("folder name must match %s", d.folderRe),
				}
			}
		}
		prefix := d.Prefix
		if p.Prefix != "" {
			prefix = p.Prefix
		}
		if strings.TrimSpace(prefix) == "" {
			return Spec{}, &errs.ValidationError{
				Field:  "prefix",
				Reason: fmt.Sprintf("template %s requires a prefix", d.ID),
			}
		}
		width := d.Width
		if p.Width > 0 {
			width = p.Width
		}
		spec.Counter = FixedPrefix{Template: d.ID, Prefix: prefix, Width: width, Extension: d.Extension}

	case KindStructured:
		if p.Prefix != "" {
			return Spec{}, &errs.ValidationError{
				Field:  "prefix",
				Value:  p.Prefix,
				Reason: fmt.Sprintf("template %s derives its prefix from the folder name", d.ID),
			}
		}
		if p.Width > 0 && p.Width != d.Width {
			return Spec{}, &errs.ValidationError{
				Field:  "width",
				Value:  fmt.Sprint(p.Width),
				Reason: fmt.Sprintf("template %s uses a fixed width of %d", d.ID, d.Width),
			}
		}
		folder, err := ParseFolderNumber(folderName(dir), d.folderRe, d.MinFolder)
		if err != nil {
			return Spec{}, err
		}
		spec.Counter = StructuredPrefix{
			Template:  d.ID,
			Tag:       d.Tag,
			Folder:    folder,
			Width:     d.Width,
			Extension: d.Extension,
		}

	default:
		return Spec{}, &errs.TemplateConfigError{Template: d.ID, Reason: fmt.Sprintf("unknown kind %q", d.Kind)}
	}
	return spec, nil
}
