// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/mos6502/debugger/easyterm/ansi"
)

// Colorizer wraps an io.Writer and adds ANSI colouring to log entries written
// to it. The tag of each entry is written with a dim pen. Suitable for use
// with SetEcho() when the output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

func (c Colorizer) Write(p []byte) (int, error) {
	s := strings.Builder{}
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			s.WriteString(l)
			continue
		}
		s.WriteString(ansi.DimPens["cyan"])
		s.WriteString(tag)
		s.WriteString(ansi.NormalPen)
		s.WriteString(": ")
		s.WriteString(detail)
	}

	_, err := io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}

	// report the number of bytes consumed from p, not the number of bytes
	// written to the underlying writer
	return len(p), nil
}
