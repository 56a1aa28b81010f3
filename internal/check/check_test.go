package check

import (
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/bulkrename/internal/errs"
)

type mockLogger struct {
	lines []string
}

func (m *mockLogger) add(level, format string, args ...any) {
	m.lines = append(m.lines, level+" "+fmt.Sprintf(format, args...))
}

func (m *mockLogger) Info(f string, a ...any)    { m.add("INFO", f, a...) }
func (m *mockLogger) Success(f string, a ...any) { m.add("SUCCESS", f, a...) }
func (m *mockLogger) Warn(f string, a ...any)    { m.add("WARN", f, a...) }
func (m *mockLogger) Error(f string, a ...any)   { m.add("ERROR", f, a...) }

func (m *mockLogger) joined() string { return strings.Join(m.lines, "\n") }

const orphan = "0b8f3c1e-5d2a-4c7b-9e1f-2a3b4c5d6e7f.tmp"

func TestCheckDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/card/101OLYMP", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/card/file.jpg", []byte("x"), 0o644))

	cases := []struct {
		name   string
		dir    string
		reason string
	}{
		{"directory", "/card/101OLYMP", ""},
		{"empty", "  ", "no directory given"},
		{"missing", "/card/102OLYMP", "does not exist"},
		{"regular file", "/card/file.jpg", "not a directory"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckDir(fs, tc.dir)
			if tc.reason == "" {
				assert.NoError(t, err)
				return
			}
			var ve *errs.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "directory", ve.Field)
			assert.Equal(t, tc.reason, ve.Reason)
		})
	}
}

func TestFindOrphans(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/d/IMG_01.png", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/d/notes.tmp", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/d/"+orphan, []byte("c"), 0o644))

	got, err := FindOrphans(fs, "/d")
	require.NoError(t, err)
	assert.Equal(t, []string{orphan}, got)

	_, err = FindOrphans(fs, "/missing")
	var iof *errs.IOFailure
	assert.ErrorAs(t, err, &iof)
}

func TestRunCheck_Clean(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/d/a.jpg", make([]byte, 2048), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/d/b.jpg", make([]byte, 1024), 0o644))
	require.NoError(t, fs.Mkdir("/d/sub", 0o755))

	log := &mockLogger{}
	assert.True(t, RunCheck(fs, "/d", log))
	out := log.joined()
	assert.Contains(t, out, "Regular files: 2 (3.0 KiB)")
	assert.Contains(t, out, "Ignored entries (directories, links, devices): 1")
	assert.Contains(t, out, "No leftover temporary files")
}

func TestRunCheck_Orphans(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/d/"+orphan, []byte("c"), 0o644))

	log := &mockLogger{}
	assert.False(t, RunCheck(fs, "/d", log))
	assert.Contains(t, log.joined(), "WARN 1 leftover temporary files")
	assert.Contains(t, log.joined(), "/d/"+orphan)
}

func TestRunCheck_InvalidDir(t *testing.T) {
	log := &mockLogger{}
	assert.False(t, RunCheck(afero.NewMemMapFs(), "/nope", log))
	assert.Contains(t, log.joined(), "ERROR invalid directory")
}
