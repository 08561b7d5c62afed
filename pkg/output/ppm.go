package output

import (
	"bufio"
	"io"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
)

// EncodePPM writes fb as an ASCII P3 portable pixmap: a "P3 <w> <h> 255" header line,
// one line per row with "r g b" pixels in emission order, then an empty line.
// Channels are clamped and truncated, never rounded.
func EncodePPM(w io.Writer, fb *core.Framebuffer) error {
	bw := bufio.NewWriter(w)

	header := "P3 " + strconv.Itoa(fb.Width) + " " + strconv.Itoa(fb.Height) + " 255\n"
	if _, err := bw.WriteString(header); err != nil {
		return err
	}

	// Scratch space for a single "255 255 255" triplet
	buf := make([]byte, 0, 12)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.RGB8(x, y)
			buf = buf[:0]
			if x > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendUint(buf, uint64(r), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(g), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(b), 10)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
