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

package unicodex

import "unicode"

// ZWNJ and ZWJ are the zero-width joiners, which several identifier grammars
// permit after the first character even though they are format characters.
const (
	ZWNJ rune = '\u200c'
	ZWJ  rune = '\u200d'
)

// IsIDStart returns whether r has the ID_Start property, as defined by UAX #31.
//
// Note that, unlike XID_Start, this does not apply NFKC closure adjustments.
func IsIDStart(r rune) bool {
	// ASCII fast path.
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	if r < 0x80 {
		return false
	}

	return unicode.In(r,
		unicode.Letter,
		unicode.Nl, // Number, letter.
		unicode.Other_ID_Start,
	) && !isPattern(r)
}

// IsIDContinue returns whether r has the ID_Continue property, as defined by
// UAX #31.
func IsIDContinue(r rune) bool {
	// ASCII fast path.
	if (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' {
		return true
	}
	if r < 0x80 {
		return false
	}

	return unicode.In(r,
		unicode.Letter,
		unicode.Nl, // Number, letter.
		unicode.Mn, // Mark, nonspacing.
		unicode.Mc, // Mark, spacing combining.
		unicode.Nd, // Number, digit.
		unicode.Pc, // Punctuation, connector.
		unicode.Other_ID_Start,
		unicode.Other_ID_Continue,
	) && !isPattern(r)
}

// IsLetter returns whether r is in one of the letter categories (Lu, Ll, Lt,
// Lm, Lo) or is a letter number (Nl).
//
// This is the classic, pre-UAX #31 notion of an identifier-starting letter.
func IsLetter(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Nl)
}

// IsCombining returns whether r is a combining mark (Mn, Mc), a decimal digit
// (Nd) or a connector punctuation (Pc).
func IsCombining(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

// IsBMP returns whether r lies in the Basic Multilingual Plane, i.e., is
// representable as a single UTF-16 code unit.
func IsBMP(r rune) bool {
	return r >= 0 && r <= 0xffff
}

func isPattern(r rune) bool {
	return unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}
