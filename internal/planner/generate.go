package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/backmassage/bulkrename/internal/errs"
	"github.com/backmassage/bulkrename/internal/naming"
)

// MaxNameLen is the longest destination name accepted, in bytes. Common
// filesystems cap a path component at 255 bytes.
const MaxNameLen = 255

// Generate numbers files in order starting at spec.SeqStart and names each
// one with spec.Counter. The order of files decides which file gets which
// name. Generate does not touch the filesystem.
func Generate(dir, templateID string, files []FileEntry, spec naming.Spec) (*RenamePlan, error) {
	plan := &RenamePlan{Dir: dir, Template: templateID, entries: make([]Entry, 0, len(files))}
	if len(files) == 0 {
		return plan, nil
	}
	if spec.Counter == nil {
		return nil, &errs.TemplateConfigError{Template: templateID, Reason: "no name builder"}
	}
	if spec.SeqStart < 0 {
		return nil, &errs.TemplateConfigError{
			Template: templateID,
			Reason:   fmt.Sprintf("sequence start must be >= 0, got %d", spec.SeqStart),
		}
	}

	if spec.SeqStart > math.MaxInt-(len(files)-1) {
		return nil, &errs.TemplateConfigError{
			Template: templateID,
			Reason:   fmt.Sprintf("sequence start %d overflows with %d files", spec.SeqStart, len(files)),
		}
	}

	last := spec.SeqStart + len(files) - 1
	name, err := spec.Counter.Namer(len(files), last)
	if err != nil {
		return nil, err
	}

	for i, f := range files {
		seq := spec.SeqStart + i
		dest, err := name(seq, f.Name)
		if err != nil {
			return nil, err
		}
		if len(dest) > MaxNameLen {
			return nil, &errs.TemplateConfigError{
				Template: templateID,
				Reason:   fmt.Sprintf("destination name for %s is %d bytes, limit is %d", f.Name, len(dest), MaxNameLen),
			}
		}
		if !validBaseName(dest) {
			return nil, &errs.TemplateConfigError{
				Template: templateID,
				Reason:   fmt.Sprintf("invalid destination name %q for %s", dest, f.Name),
			}
		}
		plan.entries = append(plan.entries, Entry{Source: f, Seq: seq, Destination: dest})
	}
	return plan, nil
}

func validBaseName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`+"\x00")
}
