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
	"fmt"

	"github.com/samber/lo"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/dbgfile"
)

// Placement of a symbol's segment in the ROM image.
type Placement struct {
	Segment *dbgfile.Segment

	// false if the segment is not part of the ROM image. Base and Offset are
	// zero in that case
	InImage bool

	// the CPU address of the start of the segment
	Base int

	// the position of the start of the segment in the ROM image
	Offset int
}

// Resolver finds the segment that a symbol belongs to.
type Resolver struct {
	store *dbgfile.Store
}

// NewResolver is the preferred method of initialisation for the Resolver
// type.
func NewResolver(store *dbgfile.Store) *Resolver {
	return &Resolver{store: store}
}

// ScopeID returns the id of the symbol's scope. If the symbol has no scope of
// its own then the parent symbol's scope is used.
func (r *Resolver) ScopeID(sym *dbgfile.Symbol) (int, error) {
	if sym.HasScope {
		return sym.Scope, nil
	}

	if !sym.HasParent {
		return 0, curated.Errorf(UnresolvedScope, sym, "no scope or parent")
	}

	parent, err := r.store.Symbol(sym.Parent)
	if err != nil {
		return 0, curated.Errorf(UnresolvedScope, sym, err)
	}

	// parents of parents are not followed
	if !parent.HasScope {
		return 0, curated.Errorf(UnresolvedScope, sym, fmt.Sprintf("parent %s has no scope", parent))
	}

	return parent.Scope, nil
}

// SpanID returns the id of the span used to resolve the symbol's segment.
// Scopes can cover more than one span and in that case the span with the
// lowest id is used.
func (r *Resolver) SpanID(sym *dbgfile.Symbol) (int, error) {
	id, err := r.ScopeID(sym)
	if err != nil {
		return 0, err
	}

	scope, err := r.store.Scope(id)
	if err != nil {
		return 0, curated.Errorf(UnresolvedScope, sym, err)
	}

	if len(scope.Spans) == 0 {
		return 0, curated.Errorf(UnresolvedScope, sym, fmt.Sprintf("scope %d has no spans", scope.ID))
	}

	// TODO: the lowest span id is not necessarily a span that contains the
	// symbol's address. check the span ranges against the symbol value and
	// only fall back to the lowest id if none of them match
	return lo.Min(scope.Spans), nil
}

// ResolveSegment returns the Placement of the segment that the symbol
// belongs to. The store is not modified.
func (r *Resolver) ResolveSegment(sym *dbgfile.Symbol) (Placement, error) {
	spanID, err := r.SpanID(sym)
	if err != nil {
		return Placement{}, err
	}

	span, err := r.store.Span(spanID)
	if err != nil {
		return Placement{}, err
	}

	seg, err := r.store.Segment(span.Segment)
	if err != nil {
		return Placement{}, err
	}

	if !seg.HasOutputOffset {
		return Placement{Segment: seg}, nil
	}

	return Placement{
		Segment: seg,
		InImage: true,
		Base:    seg.Start,
		Offset:  seg.OutputOffset,
	}, nil
}
