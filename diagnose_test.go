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

package jsident_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jsident"
)

func TestDiagnose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		grammar jsident.Grammar
		strict  jsident.Strictness
		want    *jsident.Diagnosis // Candidate, Grammar and Strictness are filled in.
		msg     string
	}{
		{in: "x"},
		{in: "eval", strict: jsident.Relaxed},
		{in: "\\u{1D400}"},
		{
			in:   "",
			want: &jsident.Diagnosis{Reason: jsident.Empty, Rune: -1},
			msg:  "identifier is empty",
		},
		{
			in:   "0ab",
			want: &jsident.Diagnosis{Reason: jsident.BadStart, Rune: '0'},
			msg:  `U+0030 cannot start an identifier at column 1 of "0ab" in ES2015`,
		},
		{
			in:   "a b",
			want: &jsident.Diagnosis{Reason: jsident.BadContinue, Offset: 1, Rune: ' '},
			msg:  `U+0020 cannot appear in an identifier at column 2 of "a b" in ES2015`,
		},
		{
			in:   "日本 x",
			want: &jsident.Diagnosis{Reason: jsident.BadContinue, Offset: 6, Rune: ' '},
			msg:  `U+0020 cannot appear in an identifier at column 5 of "日本 x" in ES2015`,
		},
		{
			in:      "a\u200cb",
			grammar: jsident.ES5,
			want:    &jsident.Diagnosis{Reason: jsident.BadContinue, Offset: 1, Rune: '\u200c'},
			msg:     `U+200C cannot appear in an identifier at column 2 of "a<U+200C>b" in ES5`,
		},
		{
			in:   "ab\\u0020",
			want: &jsident.Diagnosis{Reason: jsident.BadContinue, Offset: 2, Rune: ' '},
			msg:  `U+0020 cannot appear in an identifier at column 3 of "ab\\u0020" in ES2015`,
		},
		{
			in:      "a\\u{41}",
			grammar: jsident.ES5,
			want:    &jsident.Diagnosis{Reason: jsident.BadEscape, Offset: 1, Rune: -1},
			msg:     `invalid escape sequence at column 2 of "a\\u{41}" in ES5`,
		},
		{
			// Escape errors win over earlier character errors.
			in:   "1\\x",
			want: &jsident.Diagnosis{Reason: jsident.BadEscape, Offset: 1, Rune: -1},
			msg:  `invalid escape sequence at column 2 of "1\\x" in ES2015`,
		},
		{
			in:      "ab\U0001d400",
			grammar: jsident.ES5,
			want:    &jsident.Diagnosis{Reason: jsident.OutOfRange, Offset: 2, Rune: 0x1d400},
			msg:     `U+1D400 is outside the Basic Multilingual Plane at column 3 of "ab𝐀" in ES5`,
		},
		{
			in:   "var",
			want: &jsident.Diagnosis{Reason: jsident.Reserved, Rune: -1},
			msg:  `"var" is a reserved word in ES2015 (strict)`,
		},
		{
			in:     "\\u0065num",
			strict: jsident.Relaxed,
			want:   &jsident.Diagnosis{Reason: jsident.Reserved, Rune: -1},
			msg:    `"enum" is a reserved word in ES2015 (relaxed)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got := jsident.Diagnose(tt.in, tt.grammar, tt.strict)
			assert.Equal(t, tt.want == nil, jsident.IsValid(tt.in, tt.grammar, tt.strict))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			want := *tt.want
			want.Candidate = tt.in
			want.Grammar = tt.grammar
			want.Strictness = tt.strict
			if diff := cmp.Diff(&want, got); diff != "" {
				t.Errorf("Diagnose(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
			assert.Equal(t, tt.msg, got.Error())
		})
	}
}

func TestDiagnosisIsError(t *testing.T) {
	t.Parallel()

	var err error = jsident.Diagnose("1x", jsident.ES2015, jsident.Strict)
	var d *jsident.Diagnosis
	require.True(t, errors.As(err, &d))
	assert.Equal(t, jsident.BadStart, d.Reason)

	// Every reason has a distinct, non-numeric name.
	reasons := []jsident.Reason{
		jsident.Empty, jsident.BadEscape, jsident.OutOfRange,
		jsident.BadStart, jsident.BadContinue, jsident.Reserved,
	}
	var names []string
	for _, r := range reasons {
		names = append(names, r.String())
	}
	assert.Empty(t, cmp.Diff(
		[]string{"BadContinue", "BadEscape", "BadStart", "Empty", "OutOfRange", "Reserved"},
		names,
		cmpopts.SortSlices(func(a, b string) bool { return a < b }),
	))
	assert.Equal(t, "Reason(99)", jsident.Reason(99).String())
}
