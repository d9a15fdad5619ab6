package raycaster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the pixel output contract the renderer draws into: per-pixel
// RGB writes followed by exactly one Present per rendered frame. There are
// no partial-buffer flush semantics.
type Surface interface {
	SetPixel(x, y int, clr Color)
	Present()
}

// Canvas is an in-memory RGBA frame buffer implementing Surface, blitted to
// an ebiten.Image with DrawTo. Alpha is fixed opaque. Channel values are
// clamped to [0, 255] at write time.
type Canvas struct {
	width, height int
	pix           []byte

	// ScreenshotDir is the directory queued screenshots are written to.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewCanvas allocates a canvas of the given pixel dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:         width,
		height:        height,
		pix:           make([]byte, width*height*4),
		ScreenshotDir: "screenshots",
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetPixel writes one pixel. Out-of-range coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, clr Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.pix[i] = clampByte(clr.R)
	c.pix[i+1] = clampByte(clr.G)
	c.pix[i+2] = clampByte(clr.B)
	c.pix[i+3] = 0xff
}

// Present completes the frame. Queued screenshots are captured here so they
// always see a fully painted buffer.
func (c *Canvas) Present() {
	c.flushScreenshots()
}

// DrawTo blits the frame buffer onto the given image. The image must have
// the canvas's dimensions.
func (c *Canvas) DrawTo(screen *ebiten.Image) {
	screen.WritePixels(c.pix)
}

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Present call. The resulting PNG is written to
// ScreenshotDir with a timestamped filename.
func (c *Canvas) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label from the current buffer.
func (c *Canvas) flushScreenshots() {
	if len(c.screenshotQueue) == 0 {
		return
	}

	if err := os.MkdirAll(c.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[raycaster] screenshot: mkdir %s: %v\n", c.ScreenshotDir, err)
		c.screenshotQueue = c.screenshotQueue[:0]
		return
	}

	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.pix)

	stamp := time.Now().Format("20060102_150405")

	for _, label := range c.screenshotQueue {
		path := fmt.Sprintf("%s/%s_%s.png", c.ScreenshotDir, stamp, sanitizeLabel(label))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[raycaster] screenshot: %v\n", err)
		}
	}

	c.screenshotQueue = c.screenshotQueue[:0]
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// clampByte clamps a channel value to the displayable [0, 255] range.
func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
