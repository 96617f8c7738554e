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

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/dbgfile"
	"github.com/jetsetilly/dbg2mlb/memorymap"
)

// Classifier creates labels from symbols.
type Classifier struct {
	cfg      Config
	resolver *Resolver
}

// NewClassifier is the preferred method of initialisation for the Classifier
// type. The configuration is validated before use.
func NewClassifier(store *dbgfile.Store, cfg Config) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{
		cfg:      cfg,
		resolver: NewResolver(store),
	}, nil
}

// Classify returns the label for the symbol. A nil label and nil error is
// returned for symbols that do not produce a label: anything that isn't of
// type "lab", unnamed symbols and symbols without a value.
func (cl *Classifier) Classify(sym *dbgfile.Symbol) (*Label, error) {
	if sym.Type != dbgfile.LabelSymbol || sym.Name == "" || !sym.HasValue {
		return nil, nil
	}

	l := &Label{
		Region:  memorymap.Classify(sym.Value, cl.cfg.Expansion),
		Address: sym.Value,
		Value:   sym.Value,
		Name:    sym.Name,
		Comment: sym.Comment,
	}

	switch l.Region {
	case memorymap.Undefined:
		return nil, curated.Errorf(SymbolError, sym, fmt.Sprintf("value %#x is outside of the address space", sym.Value))

	case memorymap.PRGROM:
		p, err := cl.resolver.ResolveSegment(sym)
		if err != nil {
			return nil, curated.Errorf(SymbolError, sym, err)
		}

		if !p.InImage {
			return nil, curated.Errorf(InconsistentRomSymbol, sym,
				fmt.Sprintf("segment %s has no output offset", p.Segment.Name))
		}

		l.Value = sym.Value - cl.cfg.GlobalBase + p.Offset - p.Base
		if l.Value < 0 {
			return nil, curated.Errorf(InconsistentRomSymbol, sym,
				fmt.Sprintf("value %#x is before the start of the ROM image", sym.Value))
		}
	}

	if cl.cfg.Ranges && sym.Size > 1 {
		l.End = l.Value + sym.Size - 1
		l.HasEnd = true
	}

	return l, nil
}
