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
	"sort"
)

// table of records indexed by id. iteration with ordered() is always in
// ascending id order, regardless of the order in which records were added.
type table[T any] struct {
	byID map[int]*T

	// sorted array of keys to the byID map
	sortedIdx []int
}

func newTable[T any](size int) *table[T] {
	if size < 0 {
		size = 0
	}
	return &table[T]{
		byID:      make(map[int]*T, size),
		sortedIdx: make([]int, 0, size),
	}
}

// add record to table. returns true if the id was already present, in which
// case the previous record is replaced.
func (t *table[T]) add(id int, rec *T) bool {
	if _, ok := t.byID[id]; ok {
		t.byID[id] = rec
		return true
	}

	t.byID[id] = rec

	// ld65 writes records in id order so the common case is a simple append
	n := len(t.sortedIdx)
	t.sortedIdx = append(t.sortedIdx, id)
	if n > 0 && t.sortedIdx[n-1] > id {
		sort.Sort(t)
	}

	return false
}

func (t *table[T]) get(id int) (*T, bool) {
	rec, ok := t.byID[id]
	return rec, ok
}

func (t *table[T]) ordered() []*T {
	o := make([]*T, len(t.sortedIdx))
	for i, id := range t.sortedIdx {
		o[i] = t.byID[id]
	}
	return o
}

// Len implements the sort.Interface.
func (t *table[T]) Len() int {
	return len(t.sortedIdx)
}

// Less implements the sort.Interface.
func (t *table[T]) Less(i, j int) bool {
	return t.sortedIdx[i] < t.sortedIdx[j]
}

// Swap implements the sort.Interface.
func (t *table[T]) Swap(i, j int) {
	t.sortedIdx[i], t.sortedIdx[j] = t.sortedIdx[j], t.sortedIdx[i]
}
