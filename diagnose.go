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
	"strings"

	"github.com/bufbuild/jsident/internal/ext/unicodex"
)

const (
	accepted Reason = iota // Not a rejection. Never appears in a [Diagnosis].

	Empty       // The candidate is the empty string.
	BadEscape   // A backslash does not start an escape the grammar permits.
	OutOfRange  // A code point lies outside the range the grammar supports.
	BadStart    // The first code point cannot start an identifier.
	BadContinue // A code point after the first cannot continue an identifier.
	Reserved    // The candidate spells a reserved word.
)

// Reason is the reason a candidate was rejected by [Diagnose].
type Reason byte

// String implements [fmt.Stringer].
func (r Reason) String() string {
	switch r {
	case accepted:
		return "accepted"
	case Empty:
		return "Empty"
	case BadEscape:
		return "BadEscape"
	case OutOfRange:
		return "OutOfRange"
	case BadStart:
		return "BadStart"
	case BadContinue:
		return "BadContinue"
	case Reserved:
		return "Reserved"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Diagnosis explains why a candidate is not a valid identifier.
type Diagnosis struct {
	Candidate  string
	Grammar    Grammar
	Strictness Strictness

	Reason Reason
	// The byte offset into Candidate of the code point or escape sequence at
	// fault. Zero for [Empty] and [Reserved].
	Offset int
	// The offending code point, after escape resolution. -1 for [Empty],
	// [BadEscape] and [Reserved].
	Rune rune
}

// Diagnose returns nil if candidate is a valid identifier under the given
// grammar and strictness; otherwise, it returns a [Diagnosis] describing the
// first problem found.
//
// Diagnose(c, g, s) == nil if and only if IsValid(c, g, s).
//
// Panics if grammar or strictness is not a valid enum value.
func Diagnose(candidate string, grammar Grammar, strictness Strictness) *Diagnosis {
	mustBeValid(grammar, strictness)

	v := classify(candidate, grammar, strictness)
	if v.reason == accepted {
		return nil
	}
	return &Diagnosis{
		Candidate:  candidate,
		Grammar:    grammar,
		Strictness: strictness,
		Reason:     v.reason,
		Offset:     v.offset,
		Rune:       v.char,
	}
}

// Error implements [error].
func (d *Diagnosis) Error() string {
	var msg string
	switch d.Reason {
	case Empty:
		return "identifier is empty"
	case BadEscape:
		msg = "invalid escape sequence"
	case OutOfRange:
		msg = fmt.Sprintf("%U is outside the Basic Multilingual Plane", d.Rune)
	case BadStart:
		msg = fmt.Sprintf("%U cannot start an identifier", d.Rune)
	case BadContinue:
		msg = fmt.Sprintf("%U cannot appear in an identifier", d.Rune)
	case Reserved:
		return fmt.Sprintf("%q is a reserved word in %v (%v)",
			d.name(), d.Grammar, strings.ToLower(d.Strictness.String()))
	default:
		msg = d.Reason.String()
	}

	return fmt.Sprintf("%s at column %d of %q in %v",
		msg, unicodex.Column(d.Candidate, d.Offset)+1,
		unicodex.Escape(d.Candidate), d.Grammar)
}

// name returns the candidate with its escapes resolved.
func (d *Diagnosis) name() string {
	return resolve(d.Candidate, d.Grammar)
}

// verdict is the result of [classify].
type verdict struct {
	reason Reason
	offset int
	char   rune
}

// classify is the core of the validator, shared by [IsValid] and [Diagnose].
//
// Escape errors take priority over character class errors, which take
// priority over reserved words. The character class check for a code point
// only needs to happen if no earlier code point failed it.
func classify(candidate string, grammar Grammar, strictness Strictness) verdict {
	if candidate == "" {
		return verdict{reason: Empty, char: -1}
	}

	var (
		bad      verdict
		escapes  bool
		startBit = grammar.start()
		contBit  = grammar.continue_()
	)
	for i := 0; i < len(candidate); {
		r, n, escaped := next(candidate[i:], grammar)
		if n == 0 {
			return verdict{reason: BadEscape, offset: i, char: -1}
		}
		escapes = escapes || escaped

		if grammar == ES5 && !unicodex.IsBMP(r) {
			return verdict{reason: OutOfRange, offset: i, char: r}
		}

		if bad.reason == accepted {
			switch {
			case i == 0 && classOf(r)&startBit == 0:
				bad = verdict{reason: BadStart, offset: i, char: r}
			case i > 0 && classOf(r)&contBit == 0:
				bad = verdict{reason: BadContinue, offset: i, char: r}
			}
		}

		i += n
	}
	if bad.reason != accepted {
		return bad
	}

	name := candidate
	if escapes {
		name = resolve(candidate, grammar)
	}
	if isReserved(name, grammar, strictness) {
		return verdict{reason: Reserved, char: -1}
	}

	return verdict{reason: accepted}
}

// resolve returns candidate with every escape sequence replaced by the code
// point it denotes. Malformed escapes are copied through unchanged.
func resolve(candidate string, grammar Grammar) string {
	if !strings.Contains(candidate, `\`) {
		return candidate
	}

	var out strings.Builder
	out.Grow(len(candidate))
	for i := 0; i < len(candidate); {
		r, n, escaped := next(candidate[i:], grammar)
		switch {
		case n == 0:
			out.WriteByte(candidate[i])
			n = 1
		case escaped:
			out.WriteRune(r)
		default:
			out.WriteString(candidate[i : i+n])
		}
		i += n
	}
	return out.String()
}
