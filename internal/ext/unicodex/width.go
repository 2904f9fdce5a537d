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

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// NonPrint defines whether or not a rune is considered "unprintable for the
// purposes of diagnostics", that is, whether it is a rune that diagnostics
// replace with <U+NNNN> when printing.
//
// Spaces are printable; every other kind of whitespace, and all format
// characters such as the zero-width joiners, are not.
func NonPrint(r rune) bool {
	return r != ' ' && !unicode.IsPrint(r)
}

// Escape returns text with unprintable runes replaced by <U+NNNN>, and bytes
// that are not valid UTF-8 replaced by <NN>.
func Escape(text string) string {
	var out strings.Builder
	for text != "" {
		r, n := utf8.DecodeRuneInString(text)
		switch {
		case r == utf8.RuneError && n == 1:
			fmt.Fprintf(&out, "<%02X>", text[0])
		case NonPrint(r):
			fmt.Fprintf(&out, "<U+%04X>", r)
		default:
			out.WriteString(text[:n])
		}
		text = text[n:]
	}
	return out.String()
}

// Column returns the zero-based terminal column at which the byte at offset
// in text is rendered, once text has been passed through [Escape].
//
// Widths are computed by grapheme cluster, so wide East Asian characters
// count for two columns and combining sequences count for their base only.
func Column(text string, offset int) int {
	offset = min(max(offset, 0), len(text))
	return uniseg.StringWidth(Escape(text[:offset]))
}
