// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFromPath loads the file at path, or stdin for "-", into a new
// locked Buffer. Bytes are kept verbatim: a trailing newline is part of
// the input. An empty source is an error. Every heap buffer used while
// reading is zeroed before return.
func ReadFromPath(path string) (*Buffer, error) {
	source := io.Reader(os.Stdin)
	name := "stdin"
	sizeHint := 0
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		source, name = file, path
		if info, err := file.Stat(); err == nil && info.Mode().IsRegular() {
			sizeHint = int(info.Size())
		}
	}

	data, err := readAll(source, sizeHint)
	defer Zero(data[:cap(data)])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, errors.New("secret is empty")
	}
	return NewFromBytes(data)
}

// readAll reads reader to EOF. When the data outgrows the buffer, the
// contents move to one twice the size and the old buffer is zeroed, so
// only the returned slice holds the plaintext. sizeHint is the expected
// length; one spare byte lets the final read see EOF without growing.
// The data read so far is returned along with any error.
func readAll(reader io.Reader, sizeHint int) ([]byte, error) {
	data := make([]byte, 0, max(sizeHint+1, 512))
	for {
		if len(data) == cap(data) {
			larger := make([]byte, len(data), 2*cap(data))
			copy(larger, data)
			Zero(data)
			data = larger
		}
		read, err := reader.Read(data[len(data):cap(data)])
		data = data[:len(data)+read]
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		if err != nil {
			return data, err
		}
	}
}
