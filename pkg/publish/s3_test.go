package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// fakeS3 records PutObject calls; every other S3API method panics if used
type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestUploader_Key(t *testing.T) {
	tests := []struct {
		prefix   string
		expected string
	}{
		{"", "out.ppm"},
		{"renders", "renders/out.ppm"},
		{"/renders/2024/", "renders/2024/out.ppm"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			u := NewUploaderWithClient(&fakeS3{}, Config{Bucket: "b", Prefix: tt.prefix}, nil)
			if got := u.Key("/tmp/x/out.ppm"); got != tt.expected {
				t.Errorf("Expected key %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUploader_UploadFile(t *testing.T) {
	path := writeTempFile(t, "frame.ppm", "P3 1 1 255\n0 0 0\n\n")
	client := &fakeS3{}
	u := NewUploaderWithClient(client, Config{Bucket: "renders", Prefix: "daily"}, nil)

	key, err := u.UploadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("UploadFile failed: %v", err)
	}
	if key != "daily/frame.ppm" {
		t.Errorf("Expected key daily/frame.ppm, got %s", key)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("Expected one PutObject call, got %d", len(client.inputs))
	}

	input := client.inputs[0]
	if aws.StringValue(input.Bucket) != "renders" {
		t.Errorf("Expected bucket renders, got %s", aws.StringValue(input.Bucket))
	}
	if aws.StringValue(input.ContentType) != "image/x-portable-pixmap" {
		t.Errorf("Unexpected content type %s", aws.StringValue(input.ContentType))
	}
	if aws.Int64Value(input.ContentLength) != int64(len(client.bodies[0])) {
		t.Errorf("Content length %d does not match body size %d", aws.Int64Value(input.ContentLength), len(client.bodies[0]))
	}
	if client.bodies[0] != "P3 1 1 255\n0 0 0\n\n" {
		t.Errorf("Unexpected body %q", client.bodies[0])
	}
}

func TestUploader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		u := NewUploaderWithClient(&fakeS3{}, Config{Bucket: "b"}, nil)
		if _, err := u.UploadFile(context.Background(), filepath.Join(t.TempDir(), "nope.ppm")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("client failure is wrapped", func(t *testing.T) {
		boom := errors.New("access denied")
		u := NewUploaderWithClient(&fakeS3{err: boom}, Config{Bucket: "b"}, nil)
		_, err := u.UploadFile(context.Background(), writeTempFile(t, "a.png", "x"))
		if !errors.Is(err, boom) {
			t.Errorf("Expected wrapped client error, got %v", err)
		}
	})

	t.Run("no bucket", func(t *testing.T) {
		if _, err := NewUploader(Config{}, nil); !errors.Is(err, ErrNoBucket) {
			t.Errorf("Expected ErrNoBucket, got %v", err)
		}
	})
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"a.ppm":     "image/x-portable-pixmap",
		"a.ppm.gz":  "application/gzip",
		"a.ppm.zst": "application/zstd",
		"a.ppm.sz":  "application/x-snappy-framed",
		"a.PNG":     "image/png",
		"a.jpeg":    "image/jpeg",
		"a.bin":     "application/octet-stream",
	}
	for name, expected := range tests {
		if got := ContentType(name); got != expected {
			t.Errorf("%s: expected %s, got %s", name, expected, got)
		}
	}
}
