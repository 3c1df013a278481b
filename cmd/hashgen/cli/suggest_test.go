// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestClosest(t *testing.T) {
	candidates := []string{"hash", "encode", "algorithms", "vectors", "version"}
	tests := []struct {
		name string
		want string
	}{
		{name: "vectros", want: "vectors"},
		{name: "encod", want: "encode"},
		{name: "hsah", want: "hash"},
		{name: "algorithm", want: "algorithms"},
		{name: "verison", want: "version"},
		{name: "zzzzzzzz", want: ""},
		{name: "", want: ""},
	}
	for _, test := range tests {
		if got := closest(test.name, candidates); got != test.want {
			t.Errorf("closest(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.StringP("algorithm", "a", "", "")
	flagSet.Bool("array", false, "")
	flagSet.String("encoding", "", "")

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"--algoritm", "MD5"}, want: "--algorithm"},
		{args: []string{"--encodng=UTF-8"}, want: "--encoding"},
		{args: []string{"-a", "MD5", "--aray"}, want: "--array"},
		{args: []string{"--completely-unrelated"}, want: ""},
		{args: []string{"--", "--algoritm"}, want: ""},
		{args: []string{"value"}, want: ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flagSet); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}

func TestNegativeValue(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"0", "-1"}, want: "-1"},
		{args: []string{"-t", "double", "-Inf"}, want: "-Inf"},
		{args: []string{"-0x10"}, want: "-0x10"},
		{args: []string{"-2.5e3"}, want: "-2.5e3"},
		{args: []string{"-t", "int", "-x"}, want: ""},
		{args: []string{"--", "-1"}, want: ""},
		{args: []string{"--count=-1"}, want: ""},
		{args: []string{"-"}, want: ""},
	}
	for _, test := range tests {
		if got := negativeValue(test.args); got != test.want {
			t.Errorf("negativeValue(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
