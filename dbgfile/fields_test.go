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

package dbgfile_test

import (
	"testing"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/dbgfile"
	"github.com/jetsetilly/dbg2mlb/test"
)

func TestDecodeFields(t *testing.T) {
	f := dbgfile.DecodeFields(`id=0,name="reset",addrsize=absolute,val=0x8000,type=lab`)
	test.ExpectEquivalence(t, f, dbgfile.Fields{
		"id":       "0",
		"name":     "reset",
		"addrsize": "absolute",
		"val":      "0x8000",
		"type":     "lab",
	})
}

func TestDecodeFieldsEdgeCases(t *testing.T) {
	// pair without an equals sign is a key with an empty value
	f := dbgfile.DecodeFields("id=3,novalue,name=x")
	test.ExpectSuccess(t, f.Has("novalue"))
	test.ExpectEquality(t, f["novalue"], "")
	test.ExpectEquality(t, f["name"], "x")

	// empty pairs and trailing commas are ignored
	f = dbgfile.DecodeFields("id=3,,name=x,")
	test.ExpectEquality(t, len(f), 2)

	// empty string
	f = dbgfile.DecodeFields("")
	test.ExpectEquality(t, len(f), 0)

	// the value is everything after the first equals sign
	f = dbgfile.DecodeFields(`name="a=b"`)
	test.ExpectEquality(t, f["name"], "a=b")
}

func TestFieldOrder(t *testing.T) {
	a := dbgfile.DecodeFields("id=1,seg=2,start=0,size=3")
	b := dbgfile.DecodeFields("size=3,start=0,seg=2,id=1")
	test.ExpectEquivalence(t, a, b)
}

func TestNumericFields(t *testing.T) {
	f := dbgfile.DecodeFields("id=12,start=0x00C000,val=2010,span=4+1+3,bad=zz")

	n, err := f.Int("id")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 12)

	n, err = f.Hex("start")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0xc000)

	// hex without the 0x prefix
	n, err = f.Hex("val")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0x2010)

	l, err := f.IntList("span")
	test.ExpectSuccess(t, err)
	test.ExpectEquivalence(t, l, []int{4, 1, 3})

	_, err = f.Int("missing")
	test.ExpectSuccess(t, curated.Is(err, dbgfile.MissingField))

	_, err = f.Int("bad")
	test.ExpectSuccess(t, curated.Is(err, dbgfile.InvalidField))

	_, err = f.Hex("bad")
	test.ExpectSuccess(t, curated.Is(err, dbgfile.InvalidField))
}

func TestParseKind(t *testing.T) {
	for _, k := range dbgfile.Kinds() {
		p, err := dbgfile.ParseKind(k.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, k)
	}

	_, err := dbgfile.ParseKind("foo")
	test.ExpectSuccess(t, curated.Is(err, dbgfile.UnknownRecordKind))

	// kind names are case sensitive
	_, err = dbgfile.ParseKind("SYM")
	test.ExpectFailure(t, err)
}
