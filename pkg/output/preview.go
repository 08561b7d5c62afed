package output

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DefaultPreviewSize is the longest edge of a preview thumbnail in pixels
const DefaultPreviewSize = 256

// Thumbnail scales img so that its longest edge is size pixels, keeping the aspect ratio.
// Images already smaller than size are returned at their original resolution.
func Thumbnail(img image.Image, size int) image.Image {
	if size <= 0 {
		size = DefaultPreviewSize
	}
	return resize.Thumbnail(uint(size), uint(size), img, resize.Bilinear)
}

// WritePreview writes a thumbnail of img to path. The image format comes from the
// extension (.png, .jpg, .gif, .bmp, .tif).
func WritePreview(path string, img image.Image, size int) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return &WriteError{Op: OpCreate, Path: path, Err: fmt.Errorf("preview format: %w", err)}
	}

	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Op: OpCreate, Path: path, Err: err}
	}

	writeErr := imaging.Encode(file, Thumbnail(img, size), format)
	closeErr := file.Close()

	if writeErr != nil {
		os.Remove(path)
		return &WriteError{Op: OpWrite, Path: path, Err: writeErr}
	}
	if closeErr != nil {
		os.Remove(path)
		return &WriteError{Op: OpClose, Path: path, Err: closeErr}
	}
	return nil
}
