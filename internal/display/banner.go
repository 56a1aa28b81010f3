package display

import (
	"io"

	"github.com/backmassage/bulkrename/internal/term"
)

const banner = ` _             _  _
| |__   _   _ | || | __ _ __   ___  _ __    __ _  _ __ ___    ___
| '_ \ | | | || || |/ /| '__| / _ \| '_ \  / _` + "`" + ` || '_ ` + "`" + ` _ \  / _ \
| |_) || |_| || ||   < | |   |  __/| | | || (_| || | | | | ||  __/
|_.__/  \__,_||_||_|\_\|_|    \___||_| |_| \__,_||_| |_| |_| \___|
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are
// enabled.
func PrintBanner(w io.Writer) {
	_, _ = term.Magenta.Fprint(w, banner)
}
