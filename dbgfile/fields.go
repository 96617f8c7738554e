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
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg2mlb/curated"
)

// Fields is the decoded form of a record's key=value list. Values are the
// raw strings from the file with quotes removed.
type Fields map[string]string

// DecodeFields splits a comma separated list of key=value pairs. Quotes are
// removed from the entire string before splitting, so a quoted value cannot
// contain a comma. A pair without an equals sign is recorded as a key with an
// empty value. Empty pairs are ignored.
func DecodeFields(s string) Fields {
	f := make(Fields)

	s = strings.ReplaceAll(s, `"`, "")
	for _, p := range strings.Split(s, ",") {
		k, v, _ := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if k == "" {
			continue // for loop
		}
		f[k] = strings.TrimSpace(v)
	}

	return f
}

// Has returns true if the key is present, even if the value is empty.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Int returns the value of a decimal field.
func (f Fields) Int(key string) (int, error) {
	v, ok := f[key]
	if !ok {
		return 0, curated.Errorf(MissingField, key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, curated.Errorf(InvalidField, key, v)
	}
	return n, nil
}

// Hex returns the value of a hexadecimal field. The 0x prefix is optional.
func (f Fields) Hex(key string) (int, error) {
	v, ok := f[key]
	if !ok {
		return 0, curated.Errorf(MissingField, key)
	}
	n, err := parseHex(v)
	if err != nil {
		return 0, curated.Errorf(InvalidField, key, v)
	}
	return n, nil
}

// IntList returns the value of a field that is a list of decimal numbers
// joined with the plus sign. For example, span=1+4+3
func (f Fields) IntList(key string) ([]int, error) {
	v, ok := f[key]
	if !ok {
		return nil, curated.Errorf(MissingField, key)
	}

	var l []int
	for _, s := range strings.Split(v, "+") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, curated.Errorf(InvalidField, key, v)
		}
		l = append(l, n)
	}
	return l, nil
}

// optional versions of Int(), Hex() and IntList(). the boolean is false if the
// field is not present. a present but invalid field is still an error

func (f Fields) optInt(key string) (int, bool, error) {
	if !f.Has(key) {
		return 0, false, nil
	}
	n, err := f.Int(key)
	return n, err == nil, err
}

func (f Fields) optHex(key string) (int, bool, error) {
	if !f.Has(key) {
		return 0, false, nil
	}
	n, err := f.Hex(key)
	return n, err == nil, err
}

func (f Fields) optIntList(key string) ([]int, error) {
	if !f.Has(key) || f[key] == "" {
		return nil, nil
	}
	return f.IntList(key)
}

func parseHex(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseInt(s, 16, 64)
	return int(n), err
}
