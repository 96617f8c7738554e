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

package labels

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/memorymap"
)

// DefaultGlobalBase is the size of the iNES header. Mesen does not count the
// header when showing PRG-ROM offsets.
const DefaultGlobalBase = 0x10

// Config for the Classifier.
type Config struct {
	// subtracted from every PRG-ROM label
	GlobalBase int

	// how the $6000 to $7fff range is labelled
	Expansion memorymap.Expansion

	// label symbols with a size field of more than one are written as a range
	Ranges bool

	// skip symbols that cannot be converted rather than failing
	Lenient bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalBase: DefaultGlobalBase,
		Expansion:  memorymap.WorkRAMExpansion,
	}
}

// Validate returns an error if the configuration cannot be used.
func (cfg Config) Validate() error {
	if cfg.GlobalBase < 0 {
		return curated.Errorf(InvalidConfiguration, "base offset must not be negative")
	}
	if !cfg.Expansion.Valid() {
		return curated.Errorf(InvalidConfiguration, "unknown expansion RAM type")
	}
	return nil
}

// ParseGlobalBase parses the base offset as given on the command line. Hex
// values have the 0x prefix. Everything else is decimal, including values
// with leading zeros.
func ParseGlobalBase(s string) (int, error) {
	v := strings.TrimSpace(s)

	var n int64
	var err error
	if h, ok := strings.CutPrefix(v, "0x"); ok {
		n, err = parseBase(h, 16)
	} else if h, ok := strings.CutPrefix(v, "0X"); ok {
		n, err = parseBase(h, 16)
	} else {
		n, err = parseBase(v, 10)
	}
	if err != nil {
		return 0, curated.Errorf(InvalidConfiguration, "base offset must be an integer: "+strconv.Quote(s))
	}
	if n < 0 {
		return 0, curated.Errorf(InvalidConfiguration, "base offset must not be negative")
	}
	return int(n), nil
}

// strconv.ParseInt with a fixed base does not accept prefixes or underscores
// but does accept a sign, which cannot follow the 0x prefix
func parseBase(s string, base int) (int64, error) {
	if base == 16 && (strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-")) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, base, 64)
}

// ParseExpansion is a wrapper for memorymap.ParseExpansion() that returns an
// InvalidConfiguration error.
func ParseExpansion(s string) (memorymap.Expansion, error) {
	e, err := memorymap.ParseExpansion(s)
	if err != nil {
		return e, curated.Errorf(InvalidConfiguration, err)
	}
	return e, nil
}
