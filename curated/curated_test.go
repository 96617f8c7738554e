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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/dbg2mlb/curated"
	"github.com/jetsetilly/dbg2mlb/test"
)

const testPattern = "test error: %d"
const wrapPattern = "wrapped: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, e.Error(), "test error: 10")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	// plain errors are never curated
	p := errors.New("plain error")
	test.ExpectFailure(t, curated.Is(p, "plain error"))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf(wrapPattern, e)

	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	// curated errors wrapped by fmt.Errorf() are still found
	g := fmt.Errorf("outer: %w", f)
	test.ExpectSuccess(t, curated.Has(g, testPattern))

	// and the standard library can see through curated errors
	sentinel := errors.New("sentinel")
	h := curated.Errorf(wrapPattern, sentinel)
	test.ExpectSuccess(t, errors.Is(h, sentinel))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("labels: %v", curated.Errorf("labels: no output"))
	test.ExpectEquality(t, e.Error(), "labels: no output")

	e = curated.Errorf("a: %v", curated.Errorf("b: %v", curated.Errorf("b: c")))
	test.ExpectEquality(t, e.Error(), "a: b: c")
}
