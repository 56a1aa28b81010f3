package probe

import (
	"errors"
	"fmt"
	"time"

	"github.com/djherbis/times"
	"github.com/spf13/afero"
)

// BirthFunc reads the creation time of path. ok is false when the
// filesystem does not record one.
type BirthFunc func(path string) (t time.Time, ok bool, err error)

// Prober stamps files on one filesystem.
type Prober struct {
	fs    afero.Fs
	birth BirthFunc
}

// New returns a Prober for fsys. Birth times are read only from the OS
// filesystem; other filesystems start the chain at the modification time.
func New(fsys afero.Fs) *Prober {
	p := &Prober{fs: fsys}
	if _, ok := fsys.(*afero.OsFs); ok {
		p.birth = osBirthTime
	}
	return p
}

// WithBirth replaces the birth time reader. A nil fn disables birth times.
func (p *Prober) WithBirth(fn BirthFunc) *Prober {
	p.birth = fn
	return p
}

// Stamp returns the best available timestamp for path.
func (p *Prober) Stamp(path string) Stamp {
	var birthErr error
	if p.birth != nil {
		t, ok, err := p.birth(path)
		switch {
		case err != nil:
			birthErr = err
		case ok && !t.IsZero():
			return Stamp{Time: t, Source: SourceBirth}
		}
	}

	fi, err := p.fs.Stat(path)
	if err == nil && !fi.ModTime().IsZero() {
		return Stamp{Time: fi.ModTime(), Source: SourceModified}
	}
	if err == nil {
		err = errors.New("no modification time")
	}
	return Stamp{
		Time:    Sentinel,
		Source:  SourceSentinel,
		Warning: fmt.Errorf("no timestamp for %s, ordering it first: %w", path, errors.Join(birthErr, err)),
	}
}

func osBirthTime(path string) (time.Time, bool, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, false, err
	}
	if !ts.HasBirthTime() {
		return time.Time{}, false, nil
	}
	return ts.BirthTime(), true, nil
}
