package naming

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/backmassage/bulkrename/internal/errs"
)

// MaxWidth is the widest zero-padded sequence a template may ask for.
const MaxWidth = 64

// NameFunc builds the destination name for sequence number seq. source is
// the current base name of the file being renamed.
type NameFunc func(seq int, source string) (string, error)

// Counter produces a NameFunc for one batch. count is the number of files
// in the batch and last is the highest sequence number that will be used.
type Counter interface {
	Namer(count, last int) (NameFunc, error)
}

// FixedPrefix names files prefix + zero-padded sequence + extension. Width
// is a minimum: the sequence is widened to fit both the file count and the
// last sequence number. An empty Extension keeps each source's extension.
type FixedPrefix struct {
	Template  string
	Prefix    string
	Width     int
	Extension string
}

// Namer implements [Counter].
func (f FixedPrefix) Namer(count, last int) (NameFunc, error) {
	if strings.TrimSpace(f.Prefix) == "" {
		return nil, &errs.TemplateConfigError{Template: f.Template, Reason: "missing prefix"}
	}
	if f.Width > MaxWidth {
		return nil, tooWide(f.Template, f.Width)
	}
	w := max(f.Width, digits(count), digits(last))
	return func(seq int, source string) (string, error) {
		ext := f.Extension
		if ext == "" {
			ext = filepath.Ext(source)
		}
		return f.Prefix + zeroPad(seq, w) + ext, nil
	}, nil
}

// StructuredPrefix names files Tag + Folder + fixed-width sequence +
// Extension. The sequence width never grows; a batch whose last sequence
// number needs more digits is rejected.
type StructuredPrefix struct {
	Template  string
	Tag       string
	Folder    int
	Width     int
	Extension string
}

// Namer implements [Counter].
func (s StructuredPrefix) Namer(count, last int) (NameFunc, error) {
	if s.Width > MaxWidth {
		return nil, tooWide(s.Template, s.Width)
	}
	if digits(last) > s.Width {
		return nil, s.overflow(last)
	}
	folder := strconv.Itoa(s.Folder)
	return func(seq int, _ string) (string, error) {
		if digits(seq) > s.Width {
			return "", s.overflow(seq)
		}
		return s.Tag + folder + zeroPad(seq, s.Width) + s.Extension, nil
	}, nil
}

func (s StructuredPrefix) overflow(seq int) error {
	return &errs.TemplateConfigError{
		Template: s.Template,
		Reason:   fmt.Sprintf("sequence %d exceeds fixed width %d", seq, s.Width),
	}
}

func tooWide(template string, width int) error {
	return &errs.TemplateConfigError{
		Template: template,
		Reason:   fmt.Sprintf("width %d exceeds the maximum of %d", width, MaxWidth),
	}
}

func digits(n int) int {
	if n < 0 {
		n = -n
	}
	return len(strconv.Itoa(n))
}

func zeroPad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}
