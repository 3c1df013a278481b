// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package hashgen

import (
	"log/slog"
	"runtime"

	"github.com/hashgen/hashgen/lib/bufpool"
	"github.com/hashgen/hashgen/lib/canon"
	"github.com/hashgen/hashgen/lib/digest"
	"github.com/hashgen/hashgen/lib/secret"
)

// ErrClosed is returned by Generator methods called after Close.
var ErrClosed = bufpool.ErrClosed

// Generator digests values under one configured algorithm, reusing a
// single hash and one scratch buffer per scalar kind across calls.
// Slices and strings are encoded into a fresh buffer on every call.
//
// The zero value is not usable; construct with New. A Generator is not
// safe for concurrent use.
type Generator struct {
	engine  *digest.Context
	pool    *bufpool.Pool
	logger  *slog.Logger
	locked  bool
	closed  bool
	cleanup runtime.Cleanup
}

type settings struct {
	algorithm digest.Algorithm
	logger    *slog.Logger
	locked    bool
}

// Option configures a Generator.
type Option func(*settings)

// WithAlgorithm configures the algorithm up front, equivalent to
// calling SetAlgorithm after New.
func WithAlgorithm(algorithm digest.Algorithm) Option {
	return func(s *settings) {
		s.algorithm = algorithm
	}
}

// WithLogger sets the logger for lifecycle events (hash created or
// dropped, scratch buffer allocated). Values and digests are never
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLockedMemory backs the scratch buffers with mlock'd memory
// outside the Go heap. Such a Generator should be released with Close.
func WithLockedMemory() Option {
	return func(s *settings) {
		s.locked = true
	}
}

// New returns a Generator. Without WithAlgorithm it starts
// unconfigured and every hash method returns ErrNotConfigured until
// SetAlgorithm is called.
func New(options ...Option) *Generator {
	var s settings
	for _, option := range options {
		option(&s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	allocate := bufpool.Heap()
	if s.locked {
		allocate = bufpool.Locked()
	}
	g := &Generator{
		engine: digest.NewContext(s.logger),
		pool:   bufpool.New(allocate, s.logger),
		logger: s.logger,
		locked: s.locked,
	}
	g.engine.SetAlgorithm(s.algorithm)
	if s.locked {
		// Unmaps the pool if the Generator is dropped without Close.
		g.cleanup = runtime.AddCleanup(g, func(pool *bufpool.Pool) {
			pool.Close()
		}, g.pool)
	}
	g.logger.Debug("generator created", "algorithm", s.algorithm, "locked_memory", s.locked)
	return g
}

// SetAlgorithm changes the configured algorithm and drops the cached
// hash. Scratch buffers are kept. Unset returns the Generator to the
// unconfigured state; unknown values are reported by the next hash
// call as ErrUnsupportedAlgorithm.
func (g *Generator) SetAlgorithm(algorithm digest.Algorithm) {
	g.engine.SetAlgorithm(algorithm)
}

// Algorithm returns the configured algorithm, or digest.Unset.
func (g *Generator) Algorithm() digest.Algorithm {
	return g.engine.Algorithm()
}

// Pool exposes the scratch buffers so callers can confirm they are
// zero between calls.
func (g *Generator) Pool() *bufpool.Pool {
	return g.pool
}

// Close zeroes and releases the scratch buffers. Idempotent. Any
// further hash call returns ErrClosed.
func (g *Generator) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if g.locked {
		g.cleanup.Stop()
	}
	g.engine.SetAlgorithm(digest.Unset)
	return g.pool.Close()
}

// ready is checked before any buffer is touched.
func (g *Generator) ready() error {
	if g.closed {
		return ErrClosed
	}
	if !g.engine.Configured() {
		return ErrNotConfigured
	}
	return nil
}

func (g *Generator) sumHex(data []byte) (string, error) {
	sum, err := g.engine.Sum(data)
	if err != nil {
		return "", err
	}
	return digest.ToHex(sum), nil
}

func hashPooled[T canon.Scalar](g *Generator, value T) (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}
	kind := canon.KindOf[T]()
	buffer, err := g.pool.Get(kind, kind.Width())
	if err != nil {
		return "", err
	}
	defer secret.Zero(buffer)
	canon.Put(buffer, value)
	return g.sumHex(buffer)
}

func hashFresh[T canon.Scalar](g *Generator, values []T) (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}
	buffer := canon.AppendSlice(make([]byte, 0, canon.EncodedLen[T](len(values))), values)
	defer secret.Zero(buffer)
	return g.sumHex(buffer)
}

// HashByte returns the digest of a single byte.
func (g *Generator) HashByte(value int8) (string, error) { return hashPooled(g, value) }

// HashChar returns the digest of one UTF-16 code unit.
func (g *Generator) HashChar(value uint16) (string, error) { return hashPooled(g, value) }

func (g *Generator) HashShort(value int16) (string, error)    { return hashPooled(g, value) }
func (g *Generator) HashInt(value int32) (string, error)      { return hashPooled(g, value) }
func (g *Generator) HashLong(value int64) (string, error)     { return hashPooled(g, value) }
func (g *Generator) HashFloat(value float32) (string, error)  { return hashPooled(g, value) }
func (g *Generator) HashDouble(value float64) (string, error) { return hashPooled(g, value) }

// HashBytes returns the digest of values as they are. Passing a secret
// here rather than a string lets the caller wipe it afterwards.
func (g *Generator) HashBytes(values []byte) (string, error) { return hashFresh(g, values) }

// HashChars returns the digest of a UTF-16 code unit sequence.
func (g *Generator) HashChars(values []uint16) (string, error) { return hashFresh(g, values) }

func (g *Generator) HashShorts(values []int16) (string, error)    { return hashFresh(g, values) }
func (g *Generator) HashInts(values []int32) (string, error)      { return hashFresh(g, values) }
func (g *Generator) HashLongs(values []int64) (string, error)     { return hashFresh(g, values) }
func (g *Generator) HashFloats(values []float32) (string, error)  { return hashFresh(g, values) }
func (g *Generator) HashDoubles(values []float64) (string, error) { return hashFresh(g, values) }

// HashString returns the digest of text in the named encoding. A blank
// encoding name is ErrInvalidArgument.
func (g *Generator) HashString(text, encoding string) (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}
	resolved, err := lookupEncoding(encoding)
	if err != nil {
		return "", err
	}
	buffer, err := resolved.Encode(text)
	defer secret.Zero(buffer)
	if err != nil {
		return "", err
	}
	return g.sumHex(buffer)
}

// HashStrings returns the digest of the concatenated encodings of
// texts.
func (g *Generator) HashStrings(texts []string, encoding string) (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}
	resolved, err := lookupEncoding(encoding)
	if err != nil {
		return "", err
	}
	buffer, err := resolved.EncodeAll(texts)
	defer secret.Zero(buffer)
	if err != nil {
		return "", err
	}
	return g.sumHex(buffer)
}
