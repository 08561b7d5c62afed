package output

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/df07/go-raycaster/pkg/core"
)

// Compression identifies the stream wrapper applied to a PPM file
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionSnappy
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionSnappy:
		return "snappy"
	default:
		return "none"
	}
}

// CompressionFor picks the compression from the file extension:
// .gz, .zst and .sz select gzip, zstd and framed snappy.
func CompressionFor(path string) Compression {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(lower, ".zst"):
		return CompressionZstd
	case strings.HasSuffix(lower, ".sz"):
		return CompressionSnappy
	default:
		return CompressionNone
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// newCompressor wraps w so that closing the result flushes any compressed trailer
func newCompressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case CompressionSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

// WriteFile encodes fb as PPM into path, compressing by extension.
// The file is closed on every path and removed again if any stage fails.
func WriteFile(path string, fb *core.Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Op: OpCreate, Path: path, Err: err}
	}

	writeErr := encodeTo(file, path, fb)
	closeErr := file.Close()

	if writeErr == nil && closeErr != nil {
		writeErr = &WriteError{Op: OpClose, Path: path, Err: closeErr}
	}
	if writeErr != nil {
		os.Remove(path)
		return writeErr
	}
	return nil
}

func encodeTo(file *os.File, path string, fb *core.Framebuffer) error {
	stream, err := newCompressor(file, CompressionFor(path))
	if err != nil {
		return &WriteError{Op: OpCompress, Path: path, Err: err}
	}

	if err := EncodePPM(stream, fb); err != nil {
		stream.Close()
		return &WriteError{Op: OpWrite, Path: path, Err: err}
	}
	if err := stream.Close(); err != nil {
		return &WriteError{Op: OpCompress, Path: path, Err: err}
	}
	return nil
}
