package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/naming"
	"github.com/backmassage/bulkrename/internal/planner"
	"github.com/backmassage/bulkrename/internal/term"
)

// planView is the serialized form of a plan.
type planView struct {
	Dir      string      `json:"dir"      yaml:"dir"`
	Template string      `json:"template" yaml:"template"`
	DryRun   bool        `json:"dry_run"  yaml:"dry_run"`
	Files    int         `json:"files"    yaml:"files"`
	Bytes    int64       `json:"bytes"    yaml:"bytes"`
	Entries  []entryView `json:"entries"  yaml:"entries"`
}

type entryView struct {
	Seq         int    `json:"seq"         yaml:"seq"`
	Source      string `json:"source"      yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Size        int64  `json:"size"        yaml:"size"`
	Unchanged   bool   `json:"unchanged"   yaml:"unchanged,omitempty"`
}

func viewOf(plan *planner.RenamePlan, dryRun bool) planView {
	v := planView{
		Dir:      plan.Dir,
		Template: plan.Template,
		DryRun:   dryRun,
		Files:    plan.Len(),
		Bytes:    plan.Bytes(),
		Entries:  make([]entryView, 0, plan.Len()),
	}
	for _, e := range plan.Entries() {
		v.Entries = append(v.Entries, entryView{
			Seq:         e.Seq,
			Source:      e.Source.Name,
			Destination: e.Destination,
			Size:        e.Source.Size,
			Unchanged:   e.NoOp(),
		})
	}
	return v
}

// RenderPlan writes plan to w in the given format.
func RenderPlan(w io.Writer, plan *planner.RenamePlan, format config.OutputFormat, dryRun bool) error {
	switch format {
	case config.OutputTable, "":
		return renderPlanTable(w, plan, dryRun)
	case config.OutputPlain:
		return renderPlanPlain(w, plan)
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(viewOf(plan, dryRun))
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(viewOf(plan, dryRun)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	if term.Enabled() {
		tbl.Style().Color.Header = text.Colors{text.Bold}
	}
	return tbl
}

func renderPlanTable(w io.Writer, plan *planner.RenamePlan, dryRun bool) error {
	tbl := newTable(w)
	title := fmt.Sprintf("%s (%s)", plan.Dir, plan.Template)
	if dryRun {
		title += " [dry run]"
	}
	tbl.SetTitle(title)
	tbl.AppendHeader(table.Row{"#", "Current name", "New name", "Size"})

	for _, e := range plan.Entries() {
		dest := e.Destination
		if e.NoOp() {
			dest = term.Yellow.Sprint("(unchanged)")
		}
		tbl.AppendRow(table.Row{e.Seq, e.Source.Name, dest, FormatBytes(e.Source.Size)})
	}
	tbl.AppendFooter(table.Row{
		"",
		fmt.Sprintf("Total: %s files", FormatCount(plan.Len())),
		fmt.Sprintf("%s renamed", FormatCount(plan.Changes())),
		FormatBytes(plan.Bytes()),
	})
	tbl.Render()
	return nil
}

func renderPlanPlain(w io.Writer, plan *planner.RenamePlan) error {
	var b strings.Builder
	for _, e := range plan.Entries() {
		fmt.Fprintf(&b, "%s -> %s\n", e.Source.Name, e.Destination)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// PlanReporter renders each checked plan before it runs.
type PlanReporter struct {
	W      io.Writer
	Format config.OutputFormat
}

// Report renders plan.
func (p PlanReporter) Report(plan *planner.RenamePlan, dryRun bool) error {
	return RenderPlan(p.W, plan, p.Format, dryRun)
}

// RenderTemplates writes the template definitions to w in the given format.
func RenderTemplates(w io.Writer, defs []naming.Definition, format config.OutputFormat) error {
	switch format {
	case config.OutputTable, "":
		renderTemplateTable(w, defs)
		return nil
	case config.OutputPlain:
		var b strings.Builder
		for _, d := range defs {
			fmt.Fprintf(&b, "%s\t%s\n", d.ID, d.Description)
		}
		_, err := io.WriteString(w, b.String())
		return err
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(defs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderTemplateTable(w io.Writer, defs []naming.Definition) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Template", "Kind", "Accepts", "Width", "Confirm", "Description"})
	for _, d := range defs {
		tbl.AppendRow(table.Row{
			d.ID,
			string(d.Kind),
			acceptLabel(d.Accept),
			d.Width,
			yesNo(d.Confirm),
			d.Description,
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d templates", len(defs))})
	tbl.Render()
}

func acceptLabel(accept []string) string {
	for _, a := range accept {
		if a == "" {
			return "all files"
		}
	}
	return strings.Join(accept, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
