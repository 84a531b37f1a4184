package image1bit

import (
	"errors"
	"image"
	"image/color"
)

// Bit represents a monochrome pixel, either fully on (white) or off (black).
type Bit struct {
	On bool
}

// RGBA converts the Bit color to standard RGBA.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as color.GrayModel, thresholded at half intensity.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit{On: y >= 0x8000}
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Packed is a 1-bit image where pixels are stored in horizontal bit packing.
// Each byte contains 8 pixels, the most significant bit being the leftmost.
type Packed struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewPacked creates a new Packed image with the specified bounds.
// Rows are padded to a whole byte.
func NewPacked(r image.Rectangle) *Packed {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Packed{Rect: r}
	}
	stride := (w + 7) / 8
	return &Packed{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// FromBytes wraps already packed pixel data as a Packed image.
// pix must hold at least ceil(r.Dx()/8)*r.Dy() bytes; extra bytes are ignored.
// The returned image shares pix; it is not copied.
func FromBytes(r image.Rectangle, pix []byte) (*Packed, error) {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.New("image1bit: empty rectangle")
	}
	stride := (w + 7) / 8
	if len(pix) < stride*h {
		return nil, errors.New("image1bit: not enough pixel data")
	}
	return &Packed{
		Pix:    pix[:stride*h],
		Stride: stride,
		Rect:   r,
	}, nil
}

// ColorModel returns the color model of the image.
func (p *Packed) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *Packed) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Packed) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit color of the pixel at (x, y).
func (p *Packed) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Bit{}
	}
	offset, mask := p.pixOffset(x, y)
	return Bit{On: p.Pix[offset]&mask != 0}
}

// Set sets the color of the pixel at (x, y).
func (p *Packed) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Packed) SetBit(x, y int, c Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if c.On {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Column 0 of a byte is bit 7.
func (p *Packed) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx&7)
	return
}
