// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Buffer is a byte slice backed by an anonymous mapping that is locked
// into RAM and left out of core dumps. The mapping is rounded up to
// whole pages; Bytes exposes only the requested length. Close wipes the
// whole mapping before releasing it.
//
// Do not copy a Buffer. Bytes panics once the buffer is closed.
type Buffer struct {
	mu      sync.Mutex
	mapping []byte
	size    int
}

// New maps, locks and returns a zero-filled buffer of size bytes.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}
	page := os.Getpagesize()
	length := (size + page - 1) / page * page

	mapping, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mapping %d bytes: %w", length, err)
	}
	if err := unix.Mlock(mapping); err != nil {
		unix.Munmap(mapping)
		return nil, fmt.Errorf("secret: locking %d bytes: %w", length, err)
	}
	if err := unix.Madvise(mapping, unix.MADV_DONTDUMP); err != nil {
		unmap(mapping)
		return nil, fmt.Errorf("secret: excluding buffer from core dumps: %w", err)
	}
	return &Buffer{mapping: mapping, size: size}, nil
}

// NewFromBytes moves source into a new locked buffer and zeroes source.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, errors.New("secret: empty source")
	}
	buffer, err := New(len(source))
	if err != nil {
		return nil, err
	}
	copy(buffer.mapping, source)
	Zero(source)
	return buffer, nil
}

// Bytes returns the usable part of the mapping. The slice is only valid
// until Close.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mapping == nil {
		panic("secret: Bytes called on closed buffer")
	}
	return b.mapping[:b.size:b.size]
}

// Len is the size passed to New.
func (b *Buffer) Len() int {
	return b.size
}

// Close zeroes, unlocks and unmaps the buffer. Later calls return nil.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mapping == nil {
		return nil
	}
	mapping := b.mapping
	b.mapping = nil
	Zero(mapping)
	return unmap(mapping)
}

func unmap(mapping []byte) error {
	var errs []error
	if err := unix.Munlock(mapping); err != nil {
		errs = append(errs, fmt.Errorf("secret: unlocking buffer: %w", err))
	}
	if err := unix.Munmap(mapping); err != nil {
		errs = append(errs, fmt.Errorf("secret: unmapping buffer: %w", err))
	}
	return errors.Join(errs...)
}
