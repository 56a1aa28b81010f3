package display

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/backmassage/bulkrename/internal/planner"
)

// Prompt asks on the terminal before a plan runs. Ask defaults to an
// interactive pterm yes/no prompt whose default answer is no.
type Prompt struct {
	Ask func(question string) (bool, error)
}

// Confirm asks whether plan may run.
func (p Prompt) Confirm(plan *planner.RenamePlan) (bool, error) {
	ask := p.Ask
	if ask == nil {
		ask = askTerminal
	}
	q := fmt.Sprintf("Rename %s files in %s (%s)?",
		FormatCount(plan.Changes()), plan.Dir, FormatBytes(plan.Bytes()))
	ok, err := ask(q)
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return ok, nil
}

func askTerminal(question string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(question)
}
