// SPDX-License-Identifier: MIT

package codec

import "fmt"

// Chunk splits seq into consecutive blocks of blockSize values. A short final
// block is right-padded with pad. An empty seq yields zero blocks.
//
// Every block is a fresh slice; seq is never aliased.
//
// Errors:
//   - ErrInvalidBlockSize when blockSize < 1.
//
// Complexity:
//   - Time O(len(seq) + blockSize), Space O(len(seq) + blockSize).
func Chunk(seq []int, blockSize, pad int) ([][]int, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("Chunk(%d): %w", blockSize, ErrInvalidBlockSize)
	}

	blocks := make([][]int, 0, (len(seq)+blockSize-1)/blockSize)
	for start := 0; start < len(seq); start += blockSize {
		block := make([]int, blockSize)
		n := copy(block, seq[start:min(start+blockSize, len(seq))])
		for k := n; k < blockSize; k++ {
			block[k] = pad
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

// Flatten concatenates blocks in order; the inverse of Chunk up to padding.
func Flatten(blocks [][]int) []int {
	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	out := make([]int, 0, total)
	for _, b := range blocks {
		out = append(out, b...)
	}

	return out
}
