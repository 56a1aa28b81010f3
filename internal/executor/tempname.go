package executor

import (
	"strings"

	"github.com/google/uuid"
)

// TempSuffix is the extension of staged files.
const TempSuffix = ".tmp"

// NewTempName returns a fresh staging name: a random UUID plus TempSuffix.
func NewTempName() string {
	return uuid.NewString() + TempSuffix
}

// IsTempName reports whether name looks like a staging name produced by
// NewTempName.
func IsTempName(name string) bool {
	stem, ok := strings.CutSuffix(name, TempSuffix)
	if !ok || len(stem) != 36 {
		return false
	}
	_, err := uuid.Parse(stem)
	return err == nil
}
