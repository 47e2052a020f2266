// SPDX-License-Identifier: MIT

package codec_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hillcipher/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, 26, codec.Modulus)
	assert.Equal(t, byte('A'), codec.Alphabet[0])
	assert.Equal(t, byte('Z'), codec.Alphabet[25])
}

func TestClean(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"He1Lo!!", "HELO"},
		{"HELLO", "HELLO"},
		{"attack at dawn", "ATTACKATDAWN"},
		{"", ""},
		{"123 !?", ""},
		{"café Ωmega", "CAFMEGA"},
		{"tab\tnew\nline", "TABNEWLINE"},
	} {
		assert.Equal(t, tc.want, codec.Clean(tc.in), "Clean(%q)", tc.in)
	}
}

func TestCleanPreserve(t *testing.T) {
	assert.Equal(t, "He1Lo!!", codec.CleanPreserve("He1Lo!!"))
}

func TestTextToNumbers(t *testing.T) {
	got, err := codec.TextToNumbers("HELLOZA")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 4, 11, 11, 14, 25, 0}, got)

	got, err = codec.TextToNumbers("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTextToNumbers_InvalidCharacter(t *testing.T) {
	for _, tc := range []struct {
		in   string
		char rune
		pos  int
	}{
		{"hello", 'h', 0},
		{"HE LLO", ' ', 2},
		{"AB1", '1', 2},
		{"AÉB", 'É', 1},
	} {
		_, err := codec.TextToNumbers(tc.in)
		require.ErrorIs(t, err, codec.ErrInvalidCharacter, "input %q", tc.in)
		var ice *codec.InvalidCharacterError
		require.True(t, errors.As(err, &ice))
		assert.Equal(t, tc.char, ice.Char)
		assert.Equal(t, tc.pos, ice.Pos)
	}
}

func TestLetterIndex(t *testing.T) {
	for r, want := range map[rune]int{'A': 0, 'x': 23, 'X': 23, 'z': 25} {
		got, err := codec.LetterIndex(r)
		require.NoError(t, err)
		assert.Equal(t, want, got, "LetterIndex(%q)", r)
	}
	for _, r := range []rune{'1', ' ', 'é', '-'} {
		_, err := codec.LetterIndex(r)
		require.ErrorIs(t, err, codec.ErrInvalidCharacter, "LetterIndex(%q)", r)
	}
}

func TestNumbersToText_Wraps(t *testing.T) {
	assert.Equal(t, "HELLO", codec.NumbersToText([]int{7, 4, 11, 11, 14}))
	assert.Equal(t, "AZBA", codec.NumbersToText([]int{26, -1, 53, -52}))
	assert.Equal(t, "", codec.NumbersToText(nil))
}

func TestCodec_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[A-Z]{0,64}`).Draw(t, "text")
		nums, err := codec.TextToNumbers(text)
		if err != nil {
			t.Fatalf("TextToNumbers(%q): %v", text, err)
		}
		if back := codec.NumbersToText(nums); back != text {
			t.Fatalf("round trip %q -> %q", text, back)
		}
	})
}

func TestClean_AlwaysEncodable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		if _, err := codec.TextToNumbers(codec.Clean(s)); err != nil {
			t.Fatalf("Clean(%q) produced unencodable output: %v", s, err)
		}
	})
}
