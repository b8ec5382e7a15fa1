package surface

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/pierrec/lz4/v4"
)

// Frame archives start with this magic, followed by little endian uint32
// width and height, then raw RGBA frames. The whole stream is lz4 framed.
const frameMagic = "CLKF"

// MaxFrameBytes caps the RGBA size of one frame (a 8192x8192 surface).
const MaxFrameBytes = 8192 * 8192 * 4

var ErrBadArchive = errors.New("not a clockface frame archive")

func checkFrameSize(width, height uint64) error {
	if width == 0 || height == 0 || width > MaxFrameBytes || height > MaxFrameBytes ||
		width*height > MaxFrameBytes/4 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	return nil
}

// FrameWriter appends fixed-size RGBA frames to an lz4 compressed stream.
type FrameWriter struct {
	zw     *lz4.Writer
	width  int
	height int
	frames int
}

// NewFrameWriter writes the archive header to w.
func NewFrameWriter(w io.Writer, width, height int) (*FrameWriter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if err := checkFrameSize(uint64(width), uint64(height)); err != nil {
		return nil, err
	}

	zw := lz4.NewWriter(w)
	header := make([]byte, 12)
	copy(header, frameMagic)
	binary.LittleEndian.PutUint32(header[4:], uint32(width))
	binary.LittleEndian.PutUint32(header[8:], uint32(height))
	if _, err := zw.Write(header); err != nil {
		return nil, fmt.Errorf("write archive header: %w", err)
	}

	return &FrameWriter{zw: zw, width: width, height: height}, nil
}

// WriteFrame appends img, which must match the archive size.
func (fw *FrameWriter) WriteFrame(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() != fw.width || bounds.Dy() != fw.height {
		return fmt.Errorf("frame %d is %dx%d, archive is %dx%d",
			fw.frames, bounds.Dx(), bounds.Dy(), fw.width, fw.height)
	}

	rgba := toRGBA(img)
	rowBytes := fw.width * 4
	for y := 0; y < fw.height; y++ {
		start := y * rgba.Stride
		if _, err := fw.zw.Write(rgba.Pix[start : start+rowBytes]); err != nil {
			return fmt.Errorf("write frame %d: %w", fw.frames, err)
		}
	}
	fw.frames++
	return nil
}

// Frames returns how many frames were written.
func (fw *FrameWriter) Frames() int {
	return fw.frames
}

// Close flushes the lz4 stream. It does not close the underlying writer.
func (fw *FrameWriter) Close() error {
	return fw.zw.Close()
}

// FrameReader reads archives produced by FrameWriter.
type FrameReader struct {
	zr     *lz4.Reader
	width  int
	height int
}

// NewFrameReader reads and checks the archive header.
func NewFrameReader(r io.Reader) (*FrameReader, error) {
	zr := lz4.NewReader(r)
	header := make([]byte, 12)
	if _, err := io.ReadFull(zr, header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}
	if string(header[:4]) != frameMagic {
		return nil, ErrBadArchive
	}

	width := binary.LittleEndian.Uint32(header[4:])
	height := binary.LittleEndian.Uint32(header[8:])
	if err := checkFrameSize(uint64(width), uint64(height)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}

	return &FrameReader{
		zr:     zr,
		width:  int(width),
		height: int(height),
	}, nil
}

func (fr *FrameReader) Width() int  { return fr.width }
func (fr *FrameReader) Height() int { return fr.height }

// ReadFrame returns the next frame, or io.EOF after the last one.
func (fr *FrameReader) ReadFrame() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, fr.width, fr.height))
	n, err := io.ReadFull(fr.zr, img.Pix)
	if err == io.EOF && n == 0 {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return img, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
