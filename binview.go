// Package binview renders the first bits of a binary file as a small bitmap.
//
// See doc.go for the pipeline and cmd/binview for the command line tool.
package binview

import (
	"fmt"
	"image"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
)

// Grid and output geometry.
const (
	Cols         = 32          // Grid width in bits
	Rows         = 24          // Grid height in bits
	RequiredBits = Cols * Rows // Bits consumed from the input
	Scale        = 10          // Upscale factor in both dimensions
	Width        = Cols * Scale
	Height       = Rows * Scale
)

// Intensity values of a grid cell.
const (
	Black uint8 = 0
	White uint8 = 255
)

// SizeError is returned when the input holds fewer than RequiredBits bits.
type SizeError struct {
	Required int // Bits needed to fill the grid
	Actual   int // Bits available in the input
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("binview: file too small: need %d bits, got %d", e.Required, e.Actual)
}

// Grid is the Rows x Cols pixel grid. Every cell is either Black or White.
type Grid [Rows][Cols]uint8

// Gray returns the grid as an unscaled Cols x Rows grayscale image.
func (g *Grid) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Cols, Rows))
	for y := 0; y < Rows; y++ {
		copy(img.Pix[y*img.Stride:], g[y][:])
	}
	return img
}

// String dumps the grid one row per line, '#' for White and '.' for Black.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for _, row := range g {
		for _, v := range row {
			if v == White {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Load reads the entire file at path.
// Errors are returned unchanged from the operating system.
func Load(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ToBits expands every byte of buf into 8 values of 0 or 1, most significant bit first.
func ToBits(buf []byte) []uint8 {
	bits := make([]uint8, 0, len(buf)*8)
	for _, b := range buf {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>uint(shift))&1)
		}
	}
	return bits
}

// ToGrid fills a Grid row-major from the first RequiredBits entries of bits.
// Any nonzero entry becomes White. Entries past RequiredBits are ignored.
func ToGrid(bits []uint8) (*Grid, error) {
	if len(bits) < RequiredBits {
		return nil, &SizeError{Required: RequiredBits, Actual: len(bits)}
	}
	g := new(Grid)
	for i, bit := range bits[:RequiredBits] {
		if bit != 0 {
			g[i/Cols][i%Cols] = White
		}
	}
	return g, nil
}

// Upscale replicates every grid cell into a Scale x Scale block,
// producing a Width x Height image.
func Upscale(g *Grid) *image.Gray {
	src := g.Gray()
	dst := image.NewGray(image.Rect(0, 0, Width, Height))
	// Integer ratios make NearestNeighbor an exact block copy.
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Render runs the pure part of the pipeline on buf.
func Render(buf []byte) (*Grid, *image.Gray, error) {
	g, err := ToGrid(ToBits(buf))
	if err != nil {
		return nil, nil, err
	}
	return g, Upscale(g), nil
}

// View loads path, renders it and draws the result on d.
// d is not touched if any earlier step fails.
func View(path string, d display.Drawer) error {
	buf, err := Load(path)
	if err != nil {
		return err
	}
	_, img, err := Render(buf)
	if err != nil {
		return err
	}
	return d.Draw(img.Bounds(), img, image.Point{})
}
