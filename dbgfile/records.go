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
	"fmt"
	"time"

	"github.com/jetsetilly/dbg2mlb/curated"
)

// Version of the debug file format.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("CC65 Debug v%d.%d", v.Major, v.Minor)
}

// Info is the number of records of each kind, as declared by the info record
// at the head of the debug file.
type Info struct {
	Counts map[Kind]int
}

// File is a source file that contributed to the program.
type File struct {
	ID      int
	Name    string
	Size    int
	ModTime time.Time
}

// Segment is a contiguous area of the target memory map. If HasOutputOffset
// is false then the segment has no representation in the output file. RAM
// segments are like this.
type Segment struct {
	ID       int
	Name     string
	Start    int
	Size     int
	AddrSize string
	Type     string

	OutputName      string
	OutputOffset    int
	HasOutputOffset bool
}

// Span is a range of bytes within a single segment.
type Span struct {
	ID      int
	Segment int
	Start   int
	Size    int
}

// Scope is a lexical scope. It covers one or more spans, possibly in
// different segments.
type Scope struct {
	ID    int
	Name  string
	Spans []int

	Parent    int
	HasParent bool
}

// SymbolType is the value of the type field of a sym record.
type SymbolType string

// List of symbol types written by ld65.
const (
	LabelSymbol  SymbolType = "lab"
	EquateSymbol SymbolType = "equ"
	ImportSymbol SymbolType = "imp"
)

// Symbol is an assembler symbol. A symbol has either a scope of its own or
// a parent symbol, from which the scope is inherited. Cheap local labels
// (@label) are like this.
type Symbol struct {
	ID       int
	Name     string
	Type     SymbolType
	AddrSize string

	// imported symbols have no value
	Value    int
	HasValue bool

	// size of the data at the symbol's address. zero if not specified
	Size int

	Scope    int
	HasScope bool

	Parent    int
	HasParent bool

	Comment string
}

func (sym Symbol) String() string {
	if sym.Name == "" {
		return fmt.Sprintf("symbol %d", sym.ID)
	}
	return sym.Name
}

func newVersion(f Fields) (*Version, error) {
	var v Version
	var err error

	v.Major, err = f.Int("major")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindVersion, err)
	}
	v.Minor, err = f.Int("minor")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindVersion, err)
	}

	return &v, nil
}

func newInfo(f Fields) (*Info, error) {
	inf := &Info{Counts: make(map[Kind]int)}

	for k := range f {
		kind, err := ParseKind(k)
		if err != nil {
			// later versions of the format may count things we don't know
			// about. that's not a reason to fail
			continue // for loop
		}
		n, err := f.Int(k)
		if err != nil {
			return nil, curated.Errorf(MalformedRecord, KindInfo, err)
		}
		inf.Counts[kind] = n
	}

	return inf, nil
}

func newFile(f Fields) (*File, error) {
	fl := &File{Name: f["name"]}

	var err error
	fl.ID, err = f.Int("id")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindFile, err)
	}

	fl.Size, _, err = f.optInt("size")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindFile, err)
	}

	mtime, ok, err := f.optHex("mtime")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindFile, err)
	}
	if ok {
		fl.ModTime = time.Unix(int64(mtime), 0)
	}

	return fl, nil
}

func newSegment(f Fields) (*Segment, error) {
	seg := &Segment{
		Name:       f["name"],
		AddrSize:   f["addrsize"],
		Type:       f["type"],
		OutputName: f["oname"],
	}

	var err error
	seg.ID, err = f.Int("id")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSeg, err)
	}

	seg.Start, err = f.Hex("start")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSeg, err)
	}

	seg.Size, _, err = f.optHex("size")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSeg, err)
	}

	seg.OutputOffset, seg.HasOutputOffset, err = f.optInt("ooffs")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSeg, err)
	}

	return seg, nil
}

func newSpan(f Fields) (*Span, error) {
	var sp Span
	var err error

	sp.ID, err = f.Int("id")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSpan, err)
	}

	sp.Segment, err = f.Int("seg")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSpan, err)
	}

	sp.Start, _, err = f.optInt("start")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSpan, err)
	}

	sp.Size, _, err = f.optInt("size")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSpan, err)
	}

	return &sp, nil
}

func newScope(f Fields) (*Scope, error) {
	sc := &Scope{Name: f["name"]}

	var err error
	sc.ID, err = f.Int("id")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindScope, err)
	}

	// a scope with no spans is allowed in the file. it is only an error if a
	// symbol needs to be resolved through it
	sc.Spans, err = f.optIntList("span")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindScope, err)
	}

	sc.Parent, sc.HasParent, err = f.optInt("parent")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindScope, err)
	}

	return sc, nil
}

func newSymbol(f Fields) (*Symbol, error) {
	sym := &Symbol{
		Name:     f["name"],
		Type:     SymbolType(f["type"]),
		AddrSize: f["addrsize"],
		Comment:  f["comment"],
	}

	var err error
	sym.ID, err = f.Int("id")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSym, err)
	}

	sym.Value, sym.HasValue, err = f.optHex("val")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSym, err)
	}

	sym.Size, _, err = f.optInt("size")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSym, err)
	}

	sym.Scope, sym.HasScope, err = f.optInt("scope")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSym, err)
	}

	sym.Parent, sym.HasParent, err = f.optInt("parent")
	if err != nil {
		return nil, curated.Errorf(MalformedRecord, KindSym, err)
	}

	return sym, nil
}
