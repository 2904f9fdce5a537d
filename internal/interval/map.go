// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides a map from disjoint closed integer intervals to
// values, used for storing code point range tables.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Map maps disjoint closed intervals with endpoints in K to values of type V.
//
// A zero value is ready to use.
type Map[K Endpoint, V any] struct {
	// Keyed by the end of each interval, so that a Seek on a point lands on
	// the only interval that could contain it.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is a single run in a [Map].
type Interval[K Endpoint, V any] struct {
	// The range for this interval, inclusive.
	Start, End K

	// The value associated with it. Nil if this interval is not in the map.
	Value *V
}

// Contains returns whether this interval contains point.
func (i Interval[K, V]) Contains(point K) bool {
	return i.Value != nil && i.Start <= point && point <= i.End
}

// Len returns the number of intervals in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get looks up the interval which contains point.
//
// If no such interval exists, the Value of the returned [Interval] is nil.
func (m *Map[K, V]) Get(point K) Interval[K, V] {
	iter := m.tree.Iter()
	if !iter.Seek(point) || point < iter.Value().start {
		return Interval[K, V]{}
	}
	return m.current(iter)
}

// Intervals returns an iterator over the intervals in this map, in ascending
// order.
func (m *Map[K, V]) Intervals() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(m.current(iter)) {
				return
			}
		}
	}
}

// Insert adds [start, end] to the map with the given value.
//
// If [start, end] overlaps an interval already in the map, nothing is inserted
// and the overlapping interval with the least start is returned instead. This
// case is distinguished by overlap.Value != nil.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// Seek finds the interval with the least end such that end >= start.
	// Because intervals are disjoint, it also has the least start of any
	// interval that could overlap.
	iter := m.tree.Iter()
	if iter.Seek(start) && iter.Value().start <= end {
		return m.current(iter)
	}

	m.tree.Set(end, &entry[K, V]{start: start, value: value})
	return Interval[K, V]{}
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	m.tree.Scan(func(end K, entry *entry[K, V]) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if entry.start == end {
			fmt.Fprintf(s, "%#x: ", entry.start)
		} else {
			fmt.Fprintf(s, "[%#x, %#x]: ", entry.start, end)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), entry.value)
		return true
	})
	fmt.Fprint(s, "}")
}

func (m *Map[K, V]) current(iter btree.MapIter[K, *entry[K, V]]) Interval[K, V] {
	return Interval[K, V]{
		Start: iter.Value().start,
		End:   iter.Key(),
		Value: &iter.Value().value,
	}
}

type entry[K Endpoint, V any] struct {
	start K
	value V
}
