// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the hashgen
// binary.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// When GitCommit is not injected, [Commit] falls back to the VCS
// revision the Go toolchain stamps into the binary, so a plain
// "go build" in a checkout still reports its commit.
//
//   - [Info] -- "0.1.0-dev (abc1234, 2026-10-19T...)" for the version command
//   - [Full] -- Info plus Go version and GOOS/GOARCH
//   - [Short] -- just the version number
//
// No hashgen dependencies.
package version
