// Package idxtest builds IDX fixture files for tests.
package idxtest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// Encode lays out a big-endian IDX header followed by body
func Encode(header []uint32, body []byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, header)
	buf.Write(body)
	return buf.Bytes()
}

// WriteGzip writes Encode(header, body) gzip-compressed to path, creating parent directories
func WriteGzip(t testing.TB, path string, header []uint32, body []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := gzip.NewWriter(f)
	_, err = zw.Write(Encode(header, body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}
