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

import "fmt"

const (
	ES2015 Grammar = iota // ECMAScript 2015 and later. This is the default.
	ES5                   // ECMAScript 5.

	grammarCount
)

// Grammar selects the generation of lexical rules that a candidate is
// validated against.
//
// The zero value is [ES2015].
type Grammar byte

// IsValid returns whether g is one of the named grammars.
func (g Grammar) IsValid() bool {
	return g < grammarCount
}

// String implements [fmt.Stringer].
func (g Grammar) String() string {
	switch g {
	case ES2015:
		return "ES2015"
	case ES5:
		return "ES5"
	default:
		return fmt.Sprintf("Grammar(%d)", int(g))
	}
}

// GoString implements [fmt.GoStringer].
func (g Grammar) GoString() string {
	if g.IsValid() {
		return "jsident." + g.String()
	}
	return fmt.Sprintf("jsident.Grammar(%d)", int(g))
}

const (
	Strict  Strictness = iota // Strict mode code. This is the default.
	Relaxed                   // Non-strict ("sloppy") code.

	strictnessCount
)

// Strictness selects whether a candidate is validated as appearing in strict
// mode code, which reserves additional words.
//
// The zero value is [Strict].
type Strictness byte

// IsValid returns whether s is one of the named strictness modes.
func (s Strictness) IsValid() bool {
	return s < strictnessCount
}

// String implements [fmt.Stringer].
func (s Strictness) String() string {
	switch s {
	case Strict:
		return "Strict"
	case Relaxed:
		return "Relaxed"
	default:
		return fmt.Sprintf("Strictness(%d)", int(s))
	}
}

// GoString implements [fmt.GoStringer].
func (s Strictness) GoString() string {
	if s.IsValid() {
		return "jsident." + s.String()
	}
	return fmt.Sprintf("jsident.Strictness(%d)", int(s))
}

// Valid returns whether candidate is a valid identifier under [ES2015] in
// [Strict] mode, the newest grammar in its most restrictive mode.
func Valid(candidate string) bool {
	return IsValid(candidate, ES2015, Strict)
}

// IsValidES5 returns whether candidate is a valid identifier under [ES5].
func IsValidES5(candidate string, strictness Strictness) bool {
	return IsValid(candidate, ES5, strictness)
}

// IsValid returns whether candidate is a valid identifier under the given
// grammar and strictness.
//
// Malformed input, such as a bad escape sequence or invalid UTF-8, is not an
// error: it simply is not an identifier. Use [Diagnose] to find out why a
// candidate was rejected.
//
// Panics if grammar or strictness is not a valid enum value.
func IsValid(candidate string, grammar Grammar, strictness Strictness) bool {
	mustBeValid(grammar, strictness)
	return classify(candidate, grammar, strictness).reason == accepted
}

func mustBeValid(grammar Grammar, strictness Strictness) {
	if !grammar.IsValid() {
		panic(fmt.Sprintf("jsident: invalid grammar: %#v", grammar))
	}
	if !strictness.IsValid() {
		panic(fmt.Sprintf("jsident: invalid strictness: %#v", strictness))
	}
}
