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
	"iter"
	"maps"
	"slices"

	"github.com/bufbuild/jsident/internal/ext/mapsx"
)

// property is a bitset describing when a reserved word is reserved.
type property uint8

const (
	always  property = 1 << iota // Reserved in every grammar and mode.
	literal                      // A literal value rather than a keyword.
	es2015                       // Reserved starting with ES2015.
	strict                       // Reserved only in strict mode.
)

// reservedWords is the table of every word that some grammar reserves.
var reservedWords = map[string]property{
	// Keywords.
	"break":      always,
	"case":       always,
	"catch":      always,
	"class":      always,
	"const":      always,
	"continue":   always,
	"debugger":   always,
	"default":    always,
	"delete":     always,
	"do":         always,
	"else":       always,
	"export":     always,
	"extends":    always,
	"finally":    always,
	"for":        always,
	"function":   always,
	"if":         always,
	"import":     always,
	"in":         always,
	"instanceof": always,
	"new":        always,
	"return":     always,
	"super":      always,
	"switch":     always,
	"this":       always,
	"throw":      always,
	"try":        always,
	"typeof":     always,
	"var":        always,
	"void":       always,
	"while":      always,
	"with":       always,
	"yield":      always,

	// Future reserved words. Some of these are only reserved by the standard
	// in strict mode code, but are rejected everywhere to keep names portable
	// between strict and non-strict code.
	"implements": always,
	"interface":  always,
	"let":        always,
	"package":    always,
	"private":    always,
	"protected":  always,
	"public":     always,
	"static":     always,

	"null":  always | literal,
	"true":  always | literal,
	"false": always | literal,

	"await": es2015,
	"enum":  es2015,

	"arguments": strict,
	"eval":      strict,
}

// reservedIn returns whether a word with these properties is reserved in the
// given grammar and mode.
func (p property) reservedIn(grammar Grammar, strictness Strictness) bool {
	switch {
	case p&always != 0:
		return true
	case p&es2015 != 0:
		return grammar == ES2015
	case p&strict != 0:
		return strictness == Strict
	default:
		return false
	}
}

// reservedSets is the precomputed reserved-word set for every combination of
// grammar and strictness.
var reservedSets = func() (sets [grammarCount][strictnessCount]map[string]struct{}) {
	for g := range grammarCount {
		for s := range strictnessCount {
			sets[g][s] = mapsx.CollectSet(wordsReservedIn(g, s))
		}
	}
	return sets
}()

// wordsReservedIn yields the words of [reservedWords] reserved in the given
// grammar and mode.
func wordsReservedIn(grammar Grammar, strictness Strictness) iter.Seq[string] {
	return func(yield func(string) bool) {
		for word, p := range reservedWords {
			if p.reservedIn(grammar, strictness) && !yield(word) {
				return
			}
		}
	}
}

// isReserved returns whether name is reserved in the given grammar and mode.
//
// name must already have had its escapes resolved.
func isReserved(name string, grammar Grammar, strictness Strictness) bool {
	return mapsx.Contains(reservedSets[grammar][strictness], name)
}

// ReservedWords returns every word that is reserved in the given grammar and
// mode, in no particular order.
//
// Panics if grammar or strictness is not a valid enum value.
func ReservedWords(grammar Grammar, strictness Strictness) []string {
	mustBeValid(grammar, strictness)
	return slices.Collect(maps.Keys(reservedSets[grammar][strictness]))
}
