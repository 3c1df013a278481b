// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package bufpool

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashgen/hashgen/lib/canon"
	"github.com/hashgen/hashgen/lib/secret"
)

// ErrClosed is returned by Get after Close.
var ErrClosed = errors.New("bufpool: pool is closed")

// Allocator provides the backing memory for a pool entry. The returned
// closer, if non-nil, is called by Pool.Close to release it.
type Allocator func(size int) ([]byte, io.Closer, error)

// Heap allocates entries as ordinary Go slices.
func Heap() Allocator {
	return func(size int) ([]byte, io.Closer, error) {
		return make([]byte, size), nil, nil
	}
}

// Locked allocates entries in locked memory outside the Go heap. Each
// entry costs one mapping of at least a page.
func Locked() Allocator {
	return func(size int) ([]byte, io.Closer, error) {
		buffer, err := secret.New(size)
		if err != nil {
			return nil, nil, err
		}
		return buffer.Bytes(), buffer, nil
	}
}

type entry struct {
	data   []byte
	closer io.Closer
}

// Pool maps each fixed-width kind to its scratch buffer.
type Pool struct {
	allocate Allocator
	logger   *slog.Logger
	entries  map[canon.Kind]*entry
	closed   bool
}

// New returns an empty pool. A nil allocator means Heap; a nil logger
// discards.
func New(allocate Allocator, logger *slog.Logger) *Pool {
	if allocate == nil {
		allocate = Heap()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pool{
		allocate: allocate,
		logger:   logger,
		entries:  make(map[canon.Kind]*entry),
	}
}

// Get returns the scratch buffer for kind, zero-filled, with length and
// capacity both equal to size. The first Get for a kind allocates it.
// Asking for a size different from the stored entry's is an error:
// entries are never resized.
func (p *Pool) Get(kind canon.Kind, size int) ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if !kind.Fixed() {
		return nil, fmt.Errorf("bufpool: kind %v has no fixed width", kind)
	}
	if size <= 0 {
		return nil, fmt.Errorf("bufpool: invalid size %d for kind %v", size, kind)
	}

	if existing, ok := p.entries[kind]; ok {
		if len(existing.data) != size {
			return nil, fmt.Errorf("bufpool: kind %v entry is %d bytes, requested %d", kind, len(existing.data), size)
		}
		secret.Zero(existing.data)
		return existing.data, nil
	}

	data, closer, err := p.allocate(size)
	if err != nil {
		return nil, fmt.Errorf("bufpool: allocating %d bytes for kind %v: %w", size, kind, err)
	}
	data = data[:size:size]
	p.entries[kind] = &entry{data: data, closer: closer}
	p.logger.Debug("pool entry allocated", "kind", kind, "size", size)
	return data, nil
}

// Peek returns the stored buffer for kind without zeroing it, or nil if
// none has been allocated. It exists so callers can confirm a buffer
// was wiped after use.
func (p *Pool) Peek(kind canon.Kind) []byte {
	if existing, ok := p.entries[kind]; ok {
		return existing.data
	}
	return nil
}

// Len returns the number of allocated entries.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Close zeroes every entry and releases locked memory. Idempotent.
// Buffers previously returned by Get must not be used afterwards.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	for kind, existing := range p.entries {
		secret.Zero(existing.data)
		if existing.closer != nil {
			if err := existing.closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("releasing kind %v entry: %w", kind, err))
			}
		}
		delete(p.entries, kind)
	}
	return errors.Join(errs...)
}
