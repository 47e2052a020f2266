// SPDX-License-Identifier: MIT

package codec_test

import (
	"testing"

	"github.com/katalvlaran/hillcipher/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestChunk_Table(t *testing.T) {
	for _, tc := range []struct {
		name      string
		seq       []int
		blockSize int
		pad       int
		want      [][]int
	}{
		{"exact", []int{1, 2, 3, 4}, 2, 23, [][]int{{1, 2}, {3, 4}}},
		{"padded", []int{7, 4, 11, 11, 14}, 2, 23, [][]int{{7, 4}, {11, 11}, {14, 23}}},
		{"pad more than one", []int{1}, 3, 0, [][]int{{1, 0, 0}}},
		{"block size one", []int{5, 6}, 1, 9, [][]int{{5}, {6}}},
		{"empty", nil, 3, 23, [][]int{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.Chunk(tc.seq, tc.blockSize, tc.pad)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChunk_InvalidBlockSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := codec.Chunk([]int{1}, n, 0)
		require.ErrorIs(t, err, codec.ErrInvalidBlockSize)
	}
}

func TestChunk_DoesNotAlias(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	blocks, err := codec.Chunk(seq, 2, 0)
	require.NoError(t, err)
	blocks[0][0] = 99
	assert.Equal(t, 1, seq[0])
}

func TestChunk_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seq := rapid.SliceOf(rapid.IntRange(0, 25)).Draw(t, "seq")
		size := rapid.IntRange(1, 8).Draw(t, "size")
		pad := rapid.IntRange(0, 25).Draw(t, "pad")

		blocks, err := codec.Chunk(seq, size, pad)
		if err != nil {
			t.Fatalf("Chunk: %v", err)
		}
		if want := (len(seq) + size - 1) / size; len(blocks) != want {
			t.Fatalf("got %d blocks, want %d", len(blocks), want)
		}
		flat := codec.Flatten(blocks)
		for i, v := range seq {
			if flat[i] != v {
				t.Fatalf("flat[%d]=%d, want %d", i, flat[i], v)
			}
		}
		for i := len(seq); i < len(flat); i++ {
			if flat[i] != pad {
				t.Fatalf("padding flat[%d]=%d, want %d", i, flat[i], pad)
			}
		}
	})
}
