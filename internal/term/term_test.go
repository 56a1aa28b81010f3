package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/bulkrename/internal/config"
)

func TestConfigure(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	Configure(config.ColorAlways)
	assert.True(t, Enabled())

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Equal(t, "[INFO]", Blue.Sprint("[INFO]"), "disabled colors leave text unchanged")

	t.Setenv("NO_COLOR", "1")
	Configure(config.ColorAuto)
	assert.False(t, Enabled())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular files are not terminals")
}
