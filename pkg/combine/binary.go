// File: pkg/combine/binary.go
package combine

import (
	"bytes"
	"errors"
	"io"
)

// ErrBinary marks a file whose probe contained a NUL byte.
var ErrBinary = errors.New("likely binary file")

// readProbe reads up to ProbeSize bytes from r. A short file is not an error.
func readProbe(r io.Reader) ([]byte, error) {
	probe := make([]byte, ProbeSize)
	n, err := io.ReadFull(r, probe)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return probe[:n], nil
}

// looksBinary checks the probe for NUL bytes, which text files do not contain.
func looksBinary(probe []byte) bool {
	return bytes.IndexByte(probe, 0) >= 0
}
