// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the emulation. Log entries are tagged
// with the part of the emulation that raised them and are collected in
// memory. Repeated entries are collapsed into a single entry with a count.
//
// Entries can be echoed to an io.Writer as they arrive with SetEcho(). This
// is how a command line front-end would show the log as it happens.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Tag      string
	Detail   string
	Repeated int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// the maximum number of entries kept by the central logger.
const maxCentral = 256

// central is the single logger instance used by the package level functions.
// not exposed outside of the package.
type central struct {
	crit    sync.Mutex
	entries []Entry
	echo    io.Writer
}

var logger = central{
	entries: make([]Entry, 0, maxCentral),
}

func (l *central) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail strings
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if e.Tag == tag && e.Detail == detail {
			e.Repeated++
			return
		}
	}

	e := Entry{Tag: tag, Detail: detail}
	l.entries = append(l.entries, e)

	// maintain maximum length
	if len(l.entries) > maxCentral {
		l.entries = l.entries[len(l.entries)-maxCentral:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	logger.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, format string, args ...interface{}) {
	logger.log(tag, fmt.Sprintf(format, args...))
}

// Clear all entries from the central logger.
func Clear() {
	logger.crit.Lock()
	defer logger.crit.Unlock()
	logger.entries = logger.entries[:0]
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	logger.crit.Lock()
	defer logger.crit.Unlock()
	for i := range logger.entries {
		io.WriteString(output, logger.entries[i].String())
	}
}

// Tail writes the last N entries of the central logger to the io.Writer.
func Tail(output io.Writer, number int) {
	logger.crit.Lock()
	defer logger.crit.Unlock()

	if number > len(logger.entries) {
		number = len(logger.entries)
	}

	for _, e := range logger.entries[len(logger.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho to print new entries to the io.Writer as they arrive. A nil value
// turns echoing off.
func SetEcho(output io.Writer) {
	logger.crit.Lock()
	defer logger.crit.Unlock()
	logger.echo = output
}
