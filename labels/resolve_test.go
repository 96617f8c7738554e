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

package labels_test

import (
	"testing"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/dbgfile"
	"github.com/jetsetilly/dbg2mlb/labels"
	"github.com/jetsetilly/dbg2mlb/test"
)

func TestResolveSegment(t *testing.T) {
	st := readLines(t,
		"seg\tid=0,name=CODE,start=0x8000,size=0x100,ooffs=16",
		"span\tid=0,seg=0,start=0,size=10",
		"scope\tid=0,span=0",
		"sym\tid=0,name=reset,scope=0,val=8010,type=lab",
	)

	r := labels.NewResolver(st)
	p, err := r.ResolveSegment(symbol(t, st, 0))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.InImage)
	test.ExpectEquality(t, p.Base, 0x8000)
	test.ExpectEquality(t, p.Offset, 16)
	test.ExpectEquality(t, p.Segment.Name, "CODE")
}

func TestNoImageOffset(t *testing.T) {
	st := readLines(t,
		"seg\tid=0,name=BSS,start=0x300,size=0x100,type=rw",
		"span\tid=0,seg=0,start=0,size=10",
		"scope\tid=0,span=0",
		"sym\tid=0,name=buffer,scope=0,val=300,type=lab",
	)

	r := labels.NewResolver(st)
	p, err := r.ResolveSegment(symbol(t, st, 0))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.InImage)
	test.ExpectEquality(t, p.Base, 0)
	test.ExpectEquality(t, p.Offset, 0)
	test.ExpectEquality(t, p.Segment.Name, "BSS")
}

func TestSmallestSpanID(t *testing.T) {
	segments := []string{
		"seg\tid=0,name=A,start=0x8000,ooffs=16",
		"seg\tid=1,name=B,start=0xa000,ooffs=8208",
		"seg\tid=2,name=C,start=0xc000,ooffs=16400",
		"span\tid=2,seg=1,start=0,size=1",
		"span\tid=5,seg=0,start=0,size=1",
		"span\tid=9,seg=2,start=0,size=1",
		"span\tid=10,seg=2,start=0,size=1",
	}

	// the span with the smallest id is chosen no matter the order in which
	// the spans are listed
	for _, spans := range []string{"5+2+9", "9+5+2", "2+9+5", "10+2"} {
		lines := append([]string{}, segments...)
		lines = append(lines,
			"scope\tid=0,span="+spans,
			"sym\tid=0,name=x,scope=0,val=a000,type=lab",
		)
		st := readLines(t, lines...)

		r := labels.NewResolver(st)
		id, err := r.SpanID(symbol(t, st, 0))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, id, 2, spans)

		p, err := r.ResolveSegment(symbol(t, st, 0))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p.Segment.Name, "B", spans)
	}

	// numeric comparison, not string comparison. "10" sorts before "9" as a
	// string
	st := readLines(t, append(segments,
		"scope\tid=0,span=10+9",
		"sym\tid=0,name=x,scope=0,val=c000,type=lab",
	)...)
	id, err := labels.NewResolver(st).SpanID(symbol(t, st, 0))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 9)
}

func TestParentScope(t *testing.T) {
	st := readLines(t,
		"seg\tid=0,name=CODE,start=0x8000,ooffs=16",
		"seg\tid=1,name=BANK1,start=0xc000,ooffs=16400",
		"span\tid=0,seg=0,start=0,size=10",
		"span\tid=1,seg=1,start=0,size=10",
		"scope\tid=0,span=0",
		"scope\tid=1,span=1",
		"sym\tid=0,name=main,scope=1,val=c000,type=lab",
		"sym\tid=1,name=@loop,parent=0,val=c004,type=lab",
	)

	r := labels.NewResolver(st)

	id, err := r.ScopeID(symbol(t, st, 1))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 1)

	p, err := r.ResolveSegment(symbol(t, st, 1))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Segment.Name, "BANK1")
	test.ExpectEquality(t, p.Offset, 16400)
}

func TestUnresolvedScope(t *testing.T) {
	st := readLines(t,
		"seg\tid=0,name=CODE,start=0x8000,ooffs=16",
		"span\tid=0,seg=0,start=0,size=10",
		"scope\tid=0,span=0",
		"scope\tid=1,name=empty",
		"sym\tid=0,name=orphan,val=8000,type=lab",
		"sym\tid=1,name=@lost,parent=7,val=8000,type=lab",
		"sym\tid=2,name=@nested,parent=1,val=8000,type=lab",
		"sym\tid=3,name=dangling,scope=5,val=8000,type=lab",
		"sym\tid=4,name=hollow,scope=1,val=8000,type=lab",
	)

	r := labels.NewResolver(st)

	// no scope and no parent
	_, err := r.ResolveSegment(symbol(t, st, 0))
	test.ExpectSuccess(t, curated.Is(err, labels.UnresolvedScope))

	// parent does not exist
	_, err = r.ResolveSegment(symbol(t, st, 1))
	test.ExpectSuccess(t, curated.Is(err, labels.UnresolvedScope))
	test.ExpectSuccess(t, curated.Has(err, dbgfile.MissingSymbol))

	// parent has no scope of its own
	_, err = r.ResolveSegment(symbol(t, st, 2))
	test.ExpectSuccess(t, curated.Is(err, labels.UnresolvedScope))

	// scope does not exist
	_, err = r.ResolveSegment(symbol(t, st, 3))
	test.ExpectSuccess(t, curated.Is(err, labels.UnresolvedScope))
	test.ExpectSuccess(t, curated.Has(err, dbgfile.MissingScope))

	// scope has no spans
	_, err = r.ResolveSegment(symbol(t, st, 4))
	test.ExpectSuccess(t, curated.Is(err, labels.UnresolvedScope))
}

func TestMissingSpanAndSegment(t *testing.T) {
	st := readLines(t,
		"span\tid=0,seg=3,start=0,size=10",
		"scope\tid=0,span=0",
		"scope\tid=1,span=4",
		"sym\tid=0,name=a,scope=0,val=8000,type=lab",
		"sym\tid=1,name=b,scope=1,val=8000,type=lab",
	)

	r := labels.NewResolver(st)

	_, err := r.ResolveSegment(symbol(t, st, 0))
	test.ExpectSuccess(t, curated.Is(err, dbgfile.MissingSegment))

	_, err = r.ResolveSegment(symbol(t, st, 1))
	test.ExpectSuccess(t, curated.Is(err, dbgfile.MissingSpan))
}
