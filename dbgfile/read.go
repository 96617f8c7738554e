// This file is part of dbg2mlb.
//
// dbg2mlb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dbg2mlb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dbg2mlb.  If not, see <https://www.gnu.org/licenses/>.

package dbgfile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/logger"
)

// scope records list every span in the scope on a single line. for large
// programs these lines can be much longer than the bufio.Scanner default
const maxLineLength = 16 * 1024 * 1024

// Read every line from the io.Reader into a new Store. Reading stops at the
// first error, which is returned with the line number. Blank lines are
// ignored.
func Read(r io.Reader) (*Store, error) {
	st := NewStore()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	n := 0
	for scanner.Scan() {
		n++

		// bufio.ScanLines removes the carriage return of CRLF line endings
		// but not a lone carriage return at the end of the file
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue // for loop
		}

		if err := st.RecordLine(line); err != nil {
			return nil, curated.Errorf(LineError, n, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(SourceError, err)
	}

	st.checkCounts()

	if v, ok := st.Version(); ok {
		logger.Logf(logger.Allow, "dbgfile", "%s: %d lines, %d symbols", v, n, st.symbols.Len())
	} else {
		logger.Logf(logger.Allow, "dbgfile", "no version record: %d lines, %d symbols", n, st.symbols.Len())
	}

	return st, nil
}

// ReadFile opens the named file and reads it with Read().
func ReadFile(filename string) (*Store, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SourceUnavailable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Read(f)
}
