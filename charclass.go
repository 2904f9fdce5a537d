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

package jsident

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/jsident/internal/ext/unicodex"
	"github.com/bufbuild/jsident/internal/interval"
)

// class is a bitset recording which positions of an identifier a code point
// may occupy, for each grammar.
type class uint8

const (
	es2015Start class = 1 << iota
	es2015Continue
	es5Start
	es5Continue
)

// start returns the class bit for identifier start characters in g.
func (g Grammar) start() class {
	return es2015Start << (2 * g)
}

// continue_ returns the class bit for identifier continue characters in g.
func (g Grammar) continue_() class {
	return es2015Continue << (2 * g)
}

// asciiClasses is the class table for the ASCII range, which is the only range
// most identifiers ever touch.
var asciiClasses = func() (table [utf8.RuneSelf]class) {
	for r := range rune(utf8.RuneSelf) {
		table[r] = classOfRune(r)
	}
	return table
}()

// classes holds runs of identical class for all non-ASCII code points that
// belong to at least one class.
var classes = buildClasses()

// classOf returns the identifier classes of r.
func classOf(r rune) class {
	if r >= 0 && r < utf8.RuneSelf {
		return asciiClasses[r]
	}

	run := classes.Get(r)
	if run.Value == nil {
		return 0
	}
	return *run.Value
}

// classOfRune computes the identifier classes of r from the Unicode tables.
//
// This is the source of truth for the precomputed tables; it is too slow to
// call on every character.
func classOfRune(r rune) class {
	var c class

	switch {
	case r == '$' || r == '_' || unicodex.IsIDStart(r):
		c |= es2015Start | es2015Continue
	case r == unicodex.ZWNJ || r == unicodex.ZWJ || unicodex.IsIDContinue(r):
		c |= es2015Continue
	}

	// ES5 predates UAX #31 and works on UTF-16 code units, so only BMP
	// characters are ever identifier characters. It also does not permit
	// the zero-width joiners.
	if unicodex.IsBMP(r) {
		switch {
		case r == '$' || r == '_' || unicodex.IsLetter(r):
			c |= es5Start | es5Continue
		case unicodex.IsCombining(r):
			c |= es5Continue
		}
	}

	return c
}

// buildClasses builds the run table for every non-ASCII code point.
func buildClasses() *interval.Map[rune, class] {
	// Only code points in one of these tables can be in any class, so we
	// avoid classifying the whole code space one code point at a time.
	candidates := []*unicode.RangeTable{
		unicode.Letter,
		unicode.Nl,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Start,
		unicode.Other_ID_Continue,
	}

	dense := make([]class, unicode.MaxRune+1)
	for _, table := range candidates {
		for r := range runesOf(table) {
			dense[r] = classOfRune(r)
		}
	}
	dense[unicodex.ZWNJ] = classOfRune(unicodex.ZWNJ)
	dense[unicodex.ZWJ] = classOfRune(unicodex.ZWJ)

	m := new(interval.Map[rune, class])
	insert := func(start, end rune, c class) {
		if c == 0 {
			return
		}
		if overlap := m.Insert(start, end, c); overlap.Value != nil {
			panic(fmt.Sprintf("jsident: overlapping class runs at %U", start))
		}
	}

	start := rune(utf8.RuneSelf)
	for r := start + 1; r <= unicode.MaxRune; r++ {
		if dense[r] != dense[start] {
			insert(start, r-1, dense[start])
			start = r
		}
	}
	insert(start, unicode.MaxRune, dense[start])

	return m
}

// runesOf returns an iterator over every code point in table.
func runesOf(table *unicode.RangeTable) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, rng := range table.R16 {
			for r := rune(rng.Lo); r <= rune(rng.Hi); r += rune(rng.Stride) {
				if !yield(r) {
					return
				}
			}
		}
		for _, rng := range table.R32 {
			for r := rune(rng.Lo); r <= rune(rng.Hi); r += rune(rng.Stride) {
				if !yield(r) {
					return
				}
			}
		}
	}
}
