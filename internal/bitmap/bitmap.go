// Package bitmap encodes minimal 24-bit uncompressed BMP images. The pixel
// content comes from an external byte source; this package only guarantees
// that headers, row padding, and total size are valid for any BMP reader.
package bitmap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// HeaderSize is the fixed byte offset of the pixel data: the file
	// header followed immediately by the info header, with no palette.
	HeaderSize = fileHeaderSize + infoHeaderSize

	bitsPerPixel   = 24
	bytesPerPixel  = 3
	colorPlanes    = 1
	biRGB          = 0    // uncompressed pixel storage
	pixelsPerMeter = 2835 // roughly 72 DPI
)

// ErrInvalidDimension reports width/height values the format cannot encode:
// a non-positive width, a negative height, or a pixel area whose encoded
// size overflows the 32-bit header fields.
var ErrInvalidDimension = errors.New("invalid bitmap dimension")

// fileHeader is the 14-byte BMP file header, little-endian on the wire.
type fileHeader struct {
	Signature  [2]byte
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

// infoHeader is the 40-byte BITMAPINFOHEADER that follows the file header.
type infoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// RowStride returns the byte length of one scan line including padding:
// width*3 rounded up to the next multiple of 4. Defined for positive widths;
// callers validate through FileSize first.
func RowStride(width int) int64 {
	return (int64(width)*bytesPerPixel + 3) &^ 3
}

// FileSize validates the dimensions and returns the total encoded file size,
// headers included. A zero height is legal and yields a header-only file.
func FileSize(width, height int) (int64, error) {
	if width <= 0 || int64(width) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: width %d", ErrInvalidDimension, width)
	}
	if height < 0 || int64(height) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: height %d", ErrInvalidDimension, height)
	}
	stride := RowStride(width)
	if height > 0 && stride > (math.MaxUint32-HeaderSize)/int64(height) {
		return 0, fmt.Errorf("%w: %dx%d overflows the 32-bit size field", ErrInvalidDimension, width, height)
	}
	return HeaderSize + stride*int64(height), nil
}

// Encode writes one complete bitmap of the given dimensions to w, reading
// width*3 bytes per row from src. Rows are emitted in generation order and
// padded with zero bytes to a 4-byte boundary. Nothing is written when the
// dimensions are invalid.
func Encode(w io.Writer, width, height int, src io.Reader) error {
	total, err := FileSize(width, height)
	if err != nil {
		return err
	}
	stride := RowStride(width)
	imageSize := stride * int64(height)

	if err := binary.Write(w, binary.LittleEndian, fileHeader{
		Signature:  [2]byte{'B', 'M'},
		FileSize:   uint32(total),
		DataOffset: HeaderSize,
	}); err != nil {
		return fmt.Errorf("failed to write file header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, infoHeader{
		HeaderSize:      infoHeaderSize,
		Width:           int32(width),
		Height:          int32(height),
		Planes:          colorPlanes,
		BitCount:        bitsPerPixel,
		Compression:     biRGB,
		ImageSize:       uint32(imageSize),
		XPixelsPerMeter: pixelsPerMeter,
		YPixelsPerMeter: pixelsPerMeter,
	}); err != nil {
		return fmt.Errorf("failed to write info header: %w", err)
	}
	if height == 0 {
		return nil
	}

	// The pad bytes at the tail of the row stay zero for the whole run.
	row := make([]byte, stride)
	pixels := row[:int64(width)*bytesPerPixel]
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(src, pixels); err != nil {
			return fmt.Errorf("failed to read pixel data: %w", err)
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write pixel row: %w", err)
		}
	}
	return nil
}
