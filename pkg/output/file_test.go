package output

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestCompressionFor(t *testing.T) {
	tests := []struct {
		path     string
		expected Compression
	}{
		{"out.ppm", CompressionNone},
		{"out.ppm.gz", CompressionGzip},
		{"OUT.PPM.GZ", CompressionGzip},
		{"frames/out.ppm.zst", CompressionZstd},
		{"out.ppm.sz", CompressionSnappy},
		{"out.png", CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := CompressionFor(tt.path); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWriteFile_RoundTripsEveryCompression(t *testing.T) {
	fb := filledFramebuffer(4, 3, core.NewVec3(0.10, 0.10, 0.11))
	var want bytes.Buffer
	if err := EncodePPM(&want, fb); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	tests := []struct {
		name   string
		decode func(r io.Reader) (io.Reader, error)
	}{
		{"out.ppm", func(r io.Reader) (io.Reader, error) { return r, nil }},
		{"out.ppm.gz", func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) }},
		{"out.ppm.zst", func(r io.Reader) (io.Reader, error) {
			dec, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return dec.IOReadCloser(), nil
		}},
		{"out.ppm.sz", func(r io.Reader) (io.Reader, error) { return snappy.NewReader(r), nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name)
			if err := WriteFile(path, fb); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			file, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer file.Close()

			reader, err := tt.decode(file)
			if err != nil {
				t.Fatalf("decoder: %v", err)
			}
			got, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !bytes.Equal(got, want.Bytes()) {
				t.Errorf("Decoded contents differ:\nwant %q\ngot  %q", want.String(), string(got))
			}
		})
	}
}

func TestWriteFile_CreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.ppm")
	err := WriteFile(path, filledFramebuffer(1, 1, core.Vec3{}))

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Expected *WriteError, got %T: %v", err, err)
	}
	if writeErr.Op != OpCreate || writeErr.Path != path {
		t.Errorf("Expected create failure for %s, got %+v", path, writeErr)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected wrapped ErrNotExist, got %v", err)
	}
}

func TestWriteError_Message(t *testing.T) {
	err := &WriteError{Op: OpWrite, Path: "out.ppm", Err: errors.New("disk full")}
	if err.Error() != "write out.ppm: disk full" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
