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
	"strings"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/logger"
)

// Store is the in-memory form of a debug file.
type Store struct {
	version    *Version
	info       *Info
	files      *table[File]
	segments   *table[Segment]
	spans      *table[Span]
	scopes     *table[Scope]
	symbols    *table[Symbol]
	discarded  map[Kind]int
	duplicates map[Kind]int
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore() *Store {
	return &Store{
		files:      newTable[File](0),
		segments:   newTable[Segment](0),
		spans:      newTable[Span](0),
		scopes:     newTable[Scope](0),
		symbols:    newTable[Symbol](0),
		discarded:  make(map[Kind]int),
		duplicates: make(map[Kind]int),
	}
}

type handler func(st *Store, f Fields) error

// every valid Kind has an entry
var handlers = map[Kind]handler{
	KindVersion: (*Store).recordVersion,
	KindInfo:    (*Store).recordInfo,
	KindCSym:    discard(KindCSym),
	KindFile:    (*Store).recordFile,
	KindLib:     discard(KindLib),
	KindLine:    discard(KindLine),
	KindMod:     discard(KindMod),
	KindScope:   (*Store).recordScope,
	KindSeg:     (*Store).recordSegment,
	KindSpan:    (*Store).recordSpan,
	KindSym:     (*Store).recordSymbol,
	KindType:    discard(KindType),
}

// RecordLine adds a single line from a debug file to the store. The line is
// the record kind followed by a tab and the record's fields.
func (st *Store) RecordLine(line string) error {
	kind, fields, ok := strings.Cut(line, "\t")
	k, err := ParseKind(kind)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf(MalformedRecord, k, "no tab after record kind")
	}
	return st.Record(k, fields)
}

// Record decodes the raw field string and adds it to the table for the
// record kind.
func (st *Store) Record(kind Kind, raw string) error {
	h, ok := handlers[kind]
	if !ok {
		return curated.Errorf(UnknownRecordKind, kind.String())
	}
	return h(st, DecodeFields(raw))
}

func discard(kind Kind) handler {
	return func(st *Store, _ Fields) error {
		st.discarded[kind]++
		return nil
	}
}

func (st *Store) recordVersion(f Fields) error {
	v, err := newVersion(f)
	if err != nil {
		return err
	}
	st.version = v
	return nil
}

func (st *Store) recordInfo(f Fields) error {
	inf, err := newInfo(f)
	if err != nil {
		return err
	}
	st.info = inf

	// the info record comes before the records it counts. use the counts to
	// size the tables but only if nothing has been added yet
	if st.files.Len()+st.segments.Len()+st.spans.Len()+st.scopes.Len()+st.symbols.Len() == 0 {
		st.files = newTable[File](inf.Counts[KindFile])
		st.segments = newTable[Segment](inf.Counts[KindSeg])
		st.spans = newTable[Span](inf.Counts[KindSpan])
		st.scopes = newTable[Scope](inf.Counts[KindScope])
		st.symbols = newTable[Symbol](inf.Counts[KindSym])
	}

	return nil
}

func (st *Store) duplicate(kind Kind, id int) {
	st.duplicates[kind]++
	logger.Logf(logger.Allow, "dbgfile", "duplicate %s record with id %d replaces earlier record", kind, id)
}

func (st *Store) recordFile(f Fields) error {
	fl, err := newFile(f)
	if err != nil {
		return err
	}
	if st.files.add(fl.ID, fl) {
		st.duplicate(KindFile, fl.ID)
	}
	return nil
}

func (st *Store) recordSegment(f Fields) error {
	seg, err := newSegment(f)
	if err != nil {
		return err
	}
	if st.segments.add(seg.ID, seg) {
		st.duplicate(KindSeg, seg.ID)
	}
	return nil
}

func (st *Store) recordSpan(f Fields) error {
	sp, err := newSpan(f)
	if err != nil {
		return err
	}
	if st.spans.add(sp.ID, sp) {
		st.duplicate(KindSpan, sp.ID)
	}
	return nil
}

func (st *Store) recordScope(f Fields) error {
	sc, err := newScope(f)
	if err != nil {
		return err
	}
	if st.scopes.add(sc.ID, sc) {
		st.duplicate(KindScope, sc.ID)
	}
	return nil
}

func (st *Store) recordSymbol(f Fields) error {
	sym, err := newSymbol(f)
	if err != nil {
		return err
	}
	if st.symbols.add(sym.ID, sym) {
		st.duplicate(KindSym, sym.ID)
	}
	return nil
}

// Version returns the version record. The boolean is false if there was no
// version record.
func (st *Store) Version() (Version, bool) {
	if st.version == nil {
		return Version{}, false
	}
	return *st.version, true
}

// Info returns the info record. The boolean is false if there was no info
// record.
func (st *Store) Info() (Info, bool) {
	if st.info == nil {
		return Info{}, false
	}
	return *st.info, true
}

// File returns the file record with the id.
func (st *Store) File(id int) (*File, error) {
	if fl, ok := st.files.get(id); ok {
		return fl, nil
	}
	return nil, curated.Errorf(MissingFile, id)
}

// Segment returns the segment record with the id.
func (st *Store) Segment(id int) (*Segment, error) {
	if seg, ok := st.segments.get(id); ok {
		return seg, nil
	}
	return nil, curated.Errorf(MissingSegment, id)
}

// Span returns the span record with the id.
func (st *Store) Span(id int) (*Span, error) {
	if sp, ok := st.spans.get(id); ok {
		return sp, nil
	}
	return nil, curated.Errorf(MissingSpan, id)
}

// Scope returns the scope record with the id.
func (st *Store) Scope(id int) (*Scope, error) {
	if sc, ok := st.scopes.get(id); ok {
		return sc, nil
	}
	return nil, curated.Errorf(MissingScope, id)
}

// Symbol returns the symbol record with the id.
func (st *Store) Symbol(id int) (*Symbol, error) {
	if sym, ok := st.symbols.get(id); ok {
		return sym, nil
	}
	return nil, curated.Errorf(MissingSymbol, id)
}

// Files returns all file records in id order.
func (st *Store) Files() []*File {
	return st.files.ordered()
}

// Segments returns all segment records in id order.
func (st *Store) Segments() []*Segment {
	return st.segments.ordered()
}

// Spans returns all span records in id order.
func (st *Store) Spans() []*Span {
	return st.spans.ordered()
}

// Scopes returns all scope records in id order.
func (st *Store) Scopes() []*Scope {
	return st.scopes.ordered()
}

// Symbols returns all symbol records in id order.
func (st *Store) Symbols() []*Symbol {
	return st.symbols.ordered()
}

// Count returns the number of records of the kind that were read. For the
// version and info kinds this is zero or one.
func (st *Store) Count(kind Kind) int {
	switch kind {
	case KindVersion:
		if st.version != nil {
			return 1
		}
		return 0
	case KindInfo:
		if st.info != nil {
			return 1
		}
		return 0
	case KindFile:
		return st.files.Len() + st.duplicates[kind]
	case KindSeg:
		return st.segments.Len() + st.duplicates[kind]
	case KindSpan:
		return st.spans.Len() + st.duplicates[kind]
	case KindScope:
		return st.scopes.Len() + st.duplicates[kind]
	case KindSym:
		return st.symbols.Len() + st.duplicates[kind]
	}
	return st.discarded[kind]
}

// Discarded returns true if records of the kind are not kept by the store.
func Discarded(kind Kind) bool {
	switch kind {
	case KindCSym, KindLib, KindLine, KindMod, KindType:
		return true
	}
	return false
}

// checkCounts compares the number of records read against the number
// declared by the info record. a mismatch is logged but is not an error.
func (st *Store) checkCounts() {
	if st.info == nil {
		return
	}
	for _, k := range Kinds() {
		declared, ok := st.info.Counts[k]
		if !ok {
			continue // for loop
		}
		if n := st.Count(k); n != declared {
			logger.Logf(logger.Allow, "dbgfile", "info record declares %d %s records but %d were read", declared, k, n)
		}
	}
}
