// SPDX-License-Identifier: MIT

package hill

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPadChar fills the last plaintext block during encryption.
	DefaultPadChar = 'X'

	// DecryptPadValue fills the last ciphertext block during decryption.
	DecryptPadValue = 0
)

// DefaultConcurrency bounds the workers used by the batch helpers.
var DefaultConcurrency = runtime.GOMAXPROCS(0)

const panicConcurrencyInvalid = "hill: WithConcurrency: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error); a pad
// letter outside A-Z comes from user input and is reported as an error by
// Encrypt instead.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	padChar     rune // DefaultPadChar
	concurrency int  // DefaultConcurrency
}

// WithPadChar sets the letter used to pad the final plaintext block.
// Case is folded; a non-letter makes Encrypt fail with codec.ErrInvalidCharacter.
func WithPadChar(r rune) Option {
	return func(o *Options) { o.padChar = r }
}

// WithConcurrency bounds the number of messages processed at once by
// EncryptBatch/DecryptBatch. Panics when n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = n }
}

// gatherOptions resolves defaults and applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		padChar:     DefaultPadChar,
		concurrency: DefaultConcurrency,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}

	return o
}
