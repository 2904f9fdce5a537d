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
	"unicode"
	"unicode/utf8"
)

// next decodes the code point at the start of text, resolving an escape
// sequence if text starts with a backslash.
//
// Returns the code point, the number of bytes consumed, and whether the code
// point was spelled as an escape. If text starts with a malformed escape,
// returns n == 0.
//
// Invalid UTF-8 decodes as [utf8.RuneError], as in a for-range loop.
func next(text string, grammar Grammar) (r rune, n int, escaped bool) {
	if text[0] != '\\' {
		r, n = utf8.DecodeRuneInString(text)
		return r, n, false
	}

	r, n = unescape(text, grammar)
	return r, n, true
}

// unescape decodes a \uXXXX or, in grammars that permit it, a \u{X...}
// escape at the start of text.
//
// Returns n == 0 if text does not start with a well-formed escape.
func unescape(text string, grammar Grammar) (r rune, n int) {
	if len(text) < 2 || text[0] != '\\' || text[1] != 'u' {
		return 0, 0
	}

	if len(text) > 2 && text[2] == '{' {
		if grammar == ES5 {
			return 0, 0
		}
		return unescapeBraced(text)
	}

	if len(text) < 6 {
		return 0, 0
	}
	for _, d := range []byte(text[2:6]) {
		v, ok := hexDigit(d)
		if !ok {
			return 0, 0
		}
		r = r<<4 | rune(v)
	}
	return r, 6
}

// unescapeBraced decodes a \u{X...} escape. text is known to start with `\u{`.
func unescapeBraced(text string) (r rune, n int) {
	i := len(`\u{`)
	digits := 0
	for ; i < len(text) && text[i] != '}'; i++ {
		v, ok := hexDigit(text[i])
		if !ok {
			return 0, 0
		}
		r = r<<4 | rune(v)
		digits++

		// Check as we go, so that a long run of digits cannot overflow back
		// into range. Leading zeros are fine.
		if r > unicode.MaxRune {
			return 0, 0
		}
	}
	if i == len(text) || digits == 0 {
		return 0, 0
	}
	return r, i + 1
}

// hexDigit parses a hexadecimal digit.
func hexDigit(d byte) (value byte, ok bool) {
	switch {
	case d >= '0' && d <= '9':
		return d - '0', true
	case d >= 'a' && d <= 'f':
		return d - 'a' + 10, true
	case d >= 'A' && d <= 'F':
		return d - 'A' + 10, true
	default:
		return 0, false
	}
}
