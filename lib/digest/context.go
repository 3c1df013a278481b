// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"hash"
	"log/slog"

	"github.com/hashgen/hashgen/lib/secret"
)

// Sum digests data with a fresh hash and returns a new slice of
// algorithm.Size() bytes. Safe for concurrent use.
func Sum(data []byte, algorithm Algorithm) ([]byte, error) {
	hasher, err := algorithm.New()
	if err != nil {
		return nil, err
	}
	hasher.Write(data)
	result := hasher.Sum(nil)
	scrub(hasher)
	return result, nil
}

// Context digests repeatedly under one algorithm, keeping a single
// hash.Hash and output slice alive between calls. The hash is created
// on the first Sum after SetAlgorithm and discarded by the next
// SetAlgorithm.
//
// A Context is not safe for concurrent use.
type Context struct {
	algorithm Algorithm
	hasher    hash.Hash
	output    []byte
	logger    *slog.Logger
}

// NewContext returns an unconfigured Context. A nil logger discards.
func NewContext(logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{logger: logger}
}

// Algorithm returns the configured algorithm, or Unset.
func (c *Context) Algorithm() Algorithm {
	return c.algorithm
}

// Configured reports whether an algorithm has been set.
func (c *Context) Configured() bool {
	return c.algorithm != Unset
}

// SetAlgorithm selects the algorithm for subsequent Sum calls and drops
// any hash created for the previous one, even when the algorithm is
// unchanged. Unset returns the Context to the unconfigured state.
// Unknown values are accepted here and rejected by Sum.
func (c *Context) SetAlgorithm(algorithm Algorithm) {
	if c.hasher != nil {
		scrub(c.hasher)
		c.hasher = nil
		c.logger.Debug("digest context dropped", "algorithm", c.algorithm)
	}
	secret.Zero(c.output)
	c.output = nil
	c.algorithm = algorithm
}

// Sum digests data under the configured algorithm. The returned slice
// is owned by the Context and overwritten by the next Sum; callers
// that keep it must copy it.
func (c *Context) Sum(data []byte) ([]byte, error) {
	if c.algorithm == Unset {
		return nil, ErrNotConfigured
	}
	if c.hasher == nil {
		hasher, err := c.algorithm.New()
		if err != nil {
			return nil, err
		}
		c.hasher = hasher
		c.output = make([]byte, 0, hasher.Size())
		c.logger.Debug("digest context created", "algorithm", c.algorithm)
	} else {
		c.hasher.Reset()
	}

	c.hasher.Write(data)
	c.output = c.hasher.Sum(c.output[:0])
	scrub(c.hasher)
	return c.output, nil
}

var zeroBlock [256]byte

// scrub overwrites the unprocessed-input buffer of a hash with one
// block of zeros and resets it. Hash implementations keep the tail of
// the last message in that buffer after Sum.
func scrub(hasher hash.Hash) {
	size := min(hasher.BlockSize(), len(zeroBlock))
	hasher.Write(zeroBlock[:size])
	hasher.Reset()
}
