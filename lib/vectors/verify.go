// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package vectors

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hashgen/hashgen/lib/hashgen"
)

// VerifyOptions controls Verify.
type VerifyOptions struct {
	// Workers is the number of goroutines, each with its own
	// Generator. Zero or less means runtime.NumCPU().
	Workers int

	// LockedMemory gives each worker's Generator locked scratch
	// memory.
	LockedMemory bool

	Logger *slog.Logger
}

// Mismatch describes a vector whose recomputed digest differs from the
// stored one, or which could not be computed at all.
type Mismatch struct {
	ID        string
	Algorithm string
	// Path is "stateless" or "generator".
	Path string
	Want string
	Got  string
	Err  error
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("%s %s (%s): %v", m.ID, m.Algorithm, m.Path, m.Err)
	}
	return fmt.Sprintf("%s %s (%s): got %s, want %s", m.ID, m.Algorithm, m.Path, m.Got, m.Want)
}

// Report is the outcome of Verify.
type Report struct {
	Checked    int
	Mismatches []Mismatch
}

// OK reports whether every vector matched on both paths.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Verify recomputes every vector in set through the stateless API and
// through a per-worker Generator that is reconfigured only when the
// algorithm changes between consecutive vectors. Mismatches are
// collected, not returned as errors; the error result is reserved for
// cancellation of ctx.
func Verify(ctx context.Context, set *Set, options VerifyOptions) (*Report, error) {
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = max(1, min(workers, len(set.Vectors)))
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Workers stride through the set, so each sees its vectors in file
	// order and writes only its own result slots.
	results := make([][]Mismatch, len(set.Vectors))
	group, groupContext := errgroup.WithContext(ctx)
	for worker := range workers {
		group.Go(func() error {
			var generatorOptions []hashgen.Option
			generatorOptions = append(generatorOptions, hashgen.WithLogger(logger))
			if options.LockedMemory {
				generatorOptions = append(generatorOptions, hashgen.WithLockedMemory())
			}
			generator := hashgen.New(generatorOptions...)
			defer generator.Close()

			for index := worker; index < len(set.Vectors); index += workers {
				if err := groupContext.Err(); err != nil {
					return err
				}
				results[index] = check(&set.Vectors[index], generator)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Checked: len(set.Vectors)}
	for _, mismatches := range results {
		report.Mismatches = append(report.Mismatches, mismatches...)
	}
	logger.Info("vectors verified",
		"checked", report.Checked,
		"mismatches", len(report.Mismatches),
		"workers", workers,
	)
	return report, nil
}

func check(vector *Vector, generator *hashgen.Generator) []Mismatch {
	mismatch := Mismatch{ID: vector.ID, Algorithm: vector.Algorithm.String(), Want: vector.Digest}

	value, err := vector.Value()
	if err != nil {
		mismatch.Path = "parse"
		mismatch.Err = err
		return []Mismatch{mismatch}
	}

	var mismatches []Mismatch
	stateless, err := hashgen.HashValue(value, vector.Encoding, vector.Algorithm)
	if err != nil || stateless != vector.Digest {
		failed := mismatch
		failed.Path, failed.Got, failed.Err = "stateless", stateless, err
		mismatches = append(mismatches, failed)
	}

	if generator.Algorithm() != vector.Algorithm {
		generator.SetAlgorithm(vector.Algorithm)
	}
	stateful, err := generator.HashValue(value, vector.Encoding)
	if err != nil || stateful != vector.Digest {
		failed := mismatch
		failed.Path, failed.Got, failed.Err = "generator", stateful, err
		mismatches = append(mismatches, failed)
	}
	return mismatches
}
