// SPDX-License-Identifier: MIT

package hill

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillcipher/codec"
	"github.com/katalvlaran/hillcipher/matrix"
)

const (
	opEncryptBatch = "hill.EncryptBatch"
	opDecryptBatch = "hill.DecryptBatch"
)

// EncryptBatch encrypts every message with the same key, at most
// WithConcurrency messages at a time. out[i] corresponds to msgs[i].
// The first failure (or ctx cancellation) stops the batch and is returned
// with the index of the failing message; no partial result is returned.
func EncryptBatch(ctx context.Context, msgs []string, key *matrix.Dense, opts ...Option) ([]string, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquareNonNil(key); err != nil {
		return nil, hillErrorf(opEncryptBatch, err)
	}
	pad, err := codec.LetterIndex(o.padChar)
	if err != nil {
		return nil, hillErrorf(opEncryptBatch, fmt.Errorf("pad: %w", err))
	}

	out, err := runBatch(ctx, msgs, key, pad, o.concurrency)
	if err != nil {
		return nil, hillErrorf(opEncryptBatch, err)
	}

	return out, nil
}

// DecryptBatch decrypts every message with the same key. The key is inverted
// once, before any worker starts; a non-invertible key fails the whole batch.
func DecryptBatch(ctx context.Context, msgs []string, key *matrix.Dense, opts ...Option) ([]string, error) {
	o := gatherOptions(opts...)
	inv, err := matrix.InverseMod(key, codec.Modulus)
	if err != nil {
		return nil, hillErrorf(opDecryptBatch, err)
	}

	out, err := runBatch(ctx, msgs, inv, DecryptPadValue, o.concurrency)
	if err != nil {
		return nil, hillErrorf(opDecryptBatch, err)
	}

	return out, nil
}

// runBatch fans transform out over an errgroup bounded by limit.
// m is shared read-only between workers; each worker writes only out[i].
func runBatch(ctx context.Context, msgs []string, m *matrix.Dense, pad, limit int) ([]string, error) {
	out := make([]string, len(msgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, msg := range msgs {
		i, msg := i, msg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := transform(msg, m, pad)
			if err != nil {
				return fmt.Errorf("message %d: %w", i, err)
			}
			out[i] = s

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
