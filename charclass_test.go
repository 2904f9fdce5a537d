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
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, es2015Start, ES2015.start())
	assert.Equal(t, es2015Continue, ES2015.continue_())
	assert.Equal(t, es5Start, ES5.start())
	assert.Equal(t, es5Continue, ES5.continue_())
}

func TestClassOf(t *testing.T) {
	t.Parallel()

	const (
		none = class(0)
		all  = es2015Start | es2015Continue | es5Start | es5Continue
		cont = es2015Continue | es5Continue
	)

	tests := []struct {
		r    rune
		want class
	}{
		{'a', all},
		{'$', all},
		{'_', all},
		{'7', cont},
		{' ', none},
		{'-', none},
		{'\\', none},
		{0x7f, none},
		{-1, none},

		{0x00e9, all},
		{0x03c0, all},
		{0x65e5, all},
		{0x0301, cont},                         // COMBINING ACUTE ACCENT.
		{0x0663, cont},                         // ARABIC-INDIC DIGIT THREE.
		{0x203f, cont},                         // UNDERTIE, Pc.
		{0x200c, es2015Continue},               // ZWNJ.
		{0x200d, es2015Continue},               // ZWJ.
		{0x00b7, es2015Continue},               // MIDDLE DOT.
		{0x2118, es2015Start | es2015Continue}, // SCRIPT CAPITAL P.
		{0x309b, es2015Start | es2015Continue}, // KATAKANA-HIRAGANA VOICED SOUND MARK.
		{0x2e2f, es5Start | es5Continue},       // VERTICAL TILDE.
		{0x00a0, none},                         // NO-BREAK SPACE.
		{0xfeff, none},                         // ZERO WIDTH NO-BREAK SPACE.
		{0x20ac, none},
		{0xd800, none},
		{0x1d400, es2015Start | es2015Continue}, // MATHEMATICAL BOLD CAPITAL A.
		{0x1d7ce, es2015Continue},               // MATHEMATICAL BOLD DIGIT ZERO.
		{0x2a6d6, es2015Start | es2015Continue}, // In CJK Extension B.
		{0x1f600, none},
		{unicode.MaxRune, none},
		{unicode.MaxRune + 1, none},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%U", tt.r), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classOf(tt.r))
		})
	}
}

// TestClassTable checks the precomputed tables against the slow path for the
// whole BMP and a sample of the other planes.
func TestClassTable(t *testing.T) {
	t.Parallel()

	for r := rune(0); r <= 0xffff; r++ {
		if classOf(r) != classOfRune(r) {
			require.Equal(t, classOfRune(r), classOf(r), "%U", r)
		}
	}
	for r := rune(0x10000); r <= unicode.MaxRune; r += 97 {
		if classOf(r) != classOfRune(r) {
			require.Equal(t, classOfRune(r), classOf(r), "%U", r)
		}
	}
}

func TestClassRuns(t *testing.T) {
	t.Parallel()

	var prev *class
	var end rune
	for run := range classes.Intervals() {
		assert.NotZero(t, *run.Value, "empty run at %U", run.Start)
		if prev != nil && end+1 == run.Start {
			assert.NotEqual(t, *prev, *run.Value, "uncoalesced runs at %U", run.Start)
		}
		assert.GreaterOrEqual(t, run.Start, rune(0x80))
		prev, end = run.Value, run.End
	}
	t.Logf("%d runs", classes.Len())
}
