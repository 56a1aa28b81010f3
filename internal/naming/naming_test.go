package naming

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/bulkrename/internal/errs"
)

func TestFixedPrefix_Namer(t *testing.T) {
	cases := []struct {
		name   string
		fp     FixedPrefix
		count  int
		last   int
		seq    int
		source string
		want   string
	}{
		{"keeps source extension", FixedPrefix{Prefix: "IMG_", Width: 2}, 3, 3, 1, "c.png", "IMG_01.png"},
		{"no extension", FixedPrefix{Prefix: "doc", Width: 2}, 1, 1, 1, "README", "doc01"},
		{"widens to count", FixedPrefix{Prefix: "IMG_", Width: 2}, 150, 150, 7, "x.jpg", "IMG_007.jpg"},
		{"widens to last sequence", FixedPrefix{Prefix: "S", Width: 2}, 5, 1004, 1000, "x.tif", "S1000.tif"},
		{"fixed extension", FixedPrefix{Prefix: "S", Width: 3, Extension: ".txt"}, 2, 2, 2, "a.md", "S002.txt"},
		{"last dot wins", FixedPrefix{Prefix: "A", Width: 1}, 1, 1, 1, "archive.tar.gz", "A1.gz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fn, err := tc.fp.Namer(tc.count, tc.last)
			require.NoError(t, err)
			got, err := fn(tc.seq, tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFixedPrefix_MissingPrefix(t *testing.T) {
	_, err := FixedPrefix{Template: "generic", Prefix: "  ", Width: 2}.Namer(1, 1)
	var tce *errs.TemplateConfigError
	require.ErrorAs(t, err, &tce)
	assert.Equal(t, "generic", tce.Template)
}

func TestCounters_WidthLimit(t *testing.T) {
	_, err := FixedPrefix{Template: "generic", Prefix: "IMG_", Width: 2000000}.Namer(2, 2)
	var tce *errs.TemplateConfigError
	require.ErrorAs(t, err, &tce)
	assert.Contains(t, tce.Reason, "maximum")

	_, err = StructuredPrefix{Template: "cam", Tag: "P", Folder: 101, Width: MaxWidth + 1, Extension: ".JPG"}.Namer(1, 1)
	require.ErrorAs(t, err, &tce)

	fn, err := FixedPrefix{Prefix: "IMG_", Width: MaxWidth}.Namer(1, 1)
	require.NoError(t, err)
	got, err := fn(1, "a.jpg")
	require.NoError(t, err)
	assert.Len(t, got, len("IMG_")+MaxWidth+len(".jpg"))
}

func TestStructuredPrefix_Namer(t *testing.T) {
	sp := StructuredPrefix{Template: "olympus_c180", Tag: "P", Folder: 101, Width: 4, Extension: ".JPG"}
	fn, err := sp.Namer(3, 3)
	require.NoError(t, err)

	for seq, want := range map[int]string{1: "P1010001.JPG", 2: "P1010002.JPG", 3: "P1010003.JPG"} {
		got, err := fn(seq, "dsc.jpg")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	fn, err = sp.Namer(9999, 9999)
	require.NoError(t, err)
	got, err := fn(9999, "x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "P1019999.JPG", got)
}

func TestStructuredPrefix_Overflow(t *testing.T) {
	sp := StructuredPrefix{Template: "olympus_c180", Tag: "P", Folder: 101, Width: 4, Extension: ".JPG"}
	_, err := sp.Namer(10000, 10000)
	var tce *errs.TemplateConfigError
	require.ErrorAs(t, err, &tce)
	assert.Contains(t, tce.Error(), "10000")
}

func TestParseFolderNumber(t *testing.T) {
	re := regexp.MustCompile(OlympusC180.FolderPattern)
	cases := []struct {
		name    string
		dir     string
		want    int
		wantErr bool
	}{
		{"canonical", "101OLYMP", 101, false},
		{"lowercase", "100olymp", 100, false},
		{"four digits", "1234OLYMP", 1234, false},
		{"leading zero", "099OLYMP", 0, true},
		{"too short", "99OLYMP", 0, true},
		{"wrong suffix", "101CANON", 0, true},
		{"trailing text", "101OLYMP_old", 0, true},
		{"empty", "", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFolderNumber(tc.dir, re, 100)
			if tc.wantErr {
				var ve *errs.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "directory", ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFolderNumber_UnanchoredPattern(t *testing.T) {
	re := regexp.MustCompile(`(\d+)OLYMP`)
	n, err := ParseFolderNumber("101OLYMP", re, 100)
	require.NoError(t, err)
	assert.Equal(t, 101, n)

	for _, name := range []string{"x101OLYMP", "101OLYMP2"} {
		_, err := ParseFolderNumber(name, re, 100)
		var ve *errs.ValidationError
		assert.ErrorAs(t, err, &ve, name)
	}
}

func TestParseFolderNumber_BelowMinimum(t *testing.T) {
	re := regexp.MustCompile(`^(\d+)DIR$`)
	_, err := ParseFolderNumber("42DIR", re, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ">= 100")
}

func TestResolve_Generic(t *testing.T) {
	spec, err := Generic.Resolve("/photos/scans", Params{Prefix: "IMG_"})
	require.NoError(t, err)
	assert.Equal(t, "generic", spec.Template)
	assert.Equal(t, 1, spec.SeqStart)
	assert.Equal(t, []string{""}, spec.Accept)
	assert.True(t, spec.Confirm)
	assert.Equal(t, FixedPrefix{Template: "generic", Prefix: "IMG_", Width: 2}, spec.Counter)

	spec, err = Generic.Resolve("/photos/scans", Params{Prefix: "S", Start: 10, Width: 5})
	require.NoError(t, err)
	assert.Equal(t, 10, spec.SeqStart)
	assert.Equal(t, 5, spec.Counter.(FixedPrefix).Width)
}

func TestResolve_GenericMissingPrefix(t *testing.T) {
	_, err := Generic.Resolve("/photos/scans", Params{})
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "prefix", ve.Field)
}

func TestResolve_Olympus(t *testing.T) {
	spec, err := OlympusC180.Resolve("/card/DCIM/101OLYMP/", Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{".jpg"}, spec.Accept)
	assert.False(t, spec.Confirm)
	assert.Equal(t, StructuredPrefix{
		Template: "olympus_c180", Tag: "P", Folder: 101, Width: 4, Extension: ".JPG",
	}, spec.Counter)
}

func TestResolve_OlympusRejects(t *testing.T) {
	cases := []struct {
		name  string
		dir   string
		p     Params
		field string
	}{
		{"bad folder", "/card/DCIM/photos", Params{}, "directory"},
		{"folder below minimum", "/card/DCIM/099OLYMP", Params{}, "directory"},
		{"prefix override", "/card/DCIM/101OLYMP", Params{Prefix: "X"}, "prefix"},
		{"width override", "/card/DCIM/101OLYMP", Params{Width: 6}, "width"},
		{"width over limit", "/card/DCIM/101OLYMP", Params{Width: MaxWidth + 1}, "width"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := OlympusC180.Resolve(tc.dir, tc.p)
			var ve *errs.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestResolve_FixedPrefixFolderPattern(t *testing.T) {
	d := Definition{ID: "scans", Kind: KindFixedPrefix, Prefix: "SCAN_", FolderPattern: `^scan-\d+$`}
	_, err := d.Resolve("/archive/scan-7", Params{})
	require.NoError(t, err)

	_, err = d.Resolve("/archive/photos", Params{})
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)

	// Patterns match the whole folder name, anchored or not.
	loose := Definition{ID: "scans", Kind: KindFixedPrefix, Prefix: "SCAN_", FolderPattern: `scan-\d+`}
	_, err = loose.Resolve("/archive/scan-7", Params{})
	require.NoError(t, err)
	_, err = loose.Resolve("/archive/old-scan-7", Params{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "directory", ve.Field)
}

func TestResolve_WidthLimit(t *testing.T) {
	_, err := Generic.Resolve("/photos/scans", Params{Prefix: "IMG_", Width: 2000000})
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "width", ve.Field)

	spec, err := Generic.Resolve("/photos/scans", Params{Prefix: "IMG_", Width: MaxWidth})
	require.NoError(t, err)
	assert.Equal(t, MaxWidth, spec.Counter.(FixedPrefix).Width)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"generic", "olympus_c180"}, r.IDs())

	d, err := r.Lookup("OLYMPUS_C180")
	require.NoError(t, err)
	assert.Equal(t, KindStructured, d.Kind)

	_, err = r.Lookup("canon_eos")
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "unsupported template")
	assert.Contains(t, ve.Error(), "generic, olympus_c180")

	err = r.Register(Definition{ID: "Generic", Kind: KindFixedPrefix})
	var tce *errs.TemplateConfigError
	require.ErrorAs(t, err, &tce)

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "generic", defs[0].ID)
}

func TestRegister_Invalid(t *testing.T) {
	cases := []struct {
		name string
		def  Definition
	}{
		{"empty id", Definition{Kind: KindFixedPrefix}},
		{"id with space", Definition{ID: "my template", Kind: KindFixedPrefix}},
		{"unknown kind", Definition{ID: "x", Kind: "random"}},
		{"negative width", Definition{ID: "x", Kind: KindFixedPrefix, Width: -1}},
		{"width over limit", Definition{ID: "x", Kind: KindFixedPrefix, Width: MaxWidth + 1}},
		{"structured without width", Definition{ID: "x", Kind: KindStructured, Extension: ".JPG", FolderPattern: `^(\d+)$`}},
		{"structured without extension", Definition{ID: "x", Kind: KindStructured, Width: 4, FolderPattern: `^(\d+)$`}},
		{"structured without capture", Definition{ID: "x", Kind: KindStructured, Width: 4, Extension: ".JPG", FolderPattern: `^\d+$`}},
		{"bad pattern", Definition{ID: "x", Kind: KindFixedPrefix, FolderPattern: `(`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewRegistry().Register(tc.def)
			var tce *errs.TemplateConfigError
			assert.ErrorAs(t, err, &tce)
		})
	}
}

func TestRegister_Defaults(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{ID: " Docs ", Kind: KindFixedPrefix, Accept: []string{".PDF", " .Txt"}}))

	d, err := r.Lookup("docs")
	require.NoError(t, err)
	assert.Equal(t, 1, d.SeqStart, "seq_start below 1 defaults to 1")
	assert.Equal(t, 1, d.Width)
	assert.Equal(t, []string{".pdf", ".txt"}, d.Accept)
}

const sampleDefinitions = `
[[template]]
id = "canon_eos"
description = "Canon EOS: IMG_<seq>.JPG"
kind = "fixed-prefix"
prefix = "IMG_"
width = 4
extension = ".JPG"
accept = [".jpg", ".jpeg"]

[[template]]
id = "nikon_d"
kind = "structured"
tag = "DSC"
width = 4
extension = ".NEF"
accept = [".nef"]
folder_pattern = '^(\d{3})NIKON$'
min_folder = 100
seq_start = 0
`

func TestLoadDefinitions(t *testing.T) {
	defs, err := LoadDefinitions(strings.NewReader(sampleDefinitions))
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "canon_eos", defs[0].ID)
	assert.Equal(t, KindFixedPrefix, defs[0].Kind)
	assert.Equal(t, []string{".jpg", ".jpeg"}, defs[0].Accept)
	assert.Equal(t, KindStructured, defs[1].Kind)
	assert.Equal(t, 100, defs[1].MinFolder)

	r := DefaultRegistry()
	for _, d := range defs {
		require.NoError(t, r.Register(d))
	}
	d, err := r.Lookup("nikon_d")
	require.NoError(t, err)
	spec, err := d.Resolve("/card/DCIM/105NIKON", Params{})
	require.NoError(t, err)
	fn, err := spec.Counter.Namer(1, spec.SeqStart)
	require.NoError(t, err)
	name, err := fn(spec.SeqStart, "raw.nef")
	require.NoError(t, err)
	assert.Equal(t, "DSC1050001.NEF", name)
}

func TestLoadDefinitions_UnknownField(t *testing.T) {
	_, err := LoadDefinitions(strings.NewReader(`
[[template]]
id = "x"
kind = "fixed-prefix"
prefx = "typo"
`))
	require.Error(t, err)
}

func TestRegistry_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDefinitions), 0o644))

	r := DefaultRegistry()
	n, err := r.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, r.IDs(), 4)

	_, err = r.LoadFile(path)
	var tce *errs.TemplateConfigError
	assert.True(t, errors.As(err, &tce), "loading the same ids twice fails")

	_, err = r.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
