package viewer

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/flavioheleno/binview"
	"github.com/flavioheleno/binview/image1bit"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
)

var (
	_ display.Drawer = (*Dev)(nil)
	_ display.Drawer = (*Terminal)(nil)
)

// TerminalOpts is the configuration for the terminal display.
type TerminalOpts struct {
	W    int // Frame width in pixels (default: 320)
	H    int // Frame height in pixels (default: 240)
	Cell int // Frame pixels per printed block, both ways (default: 10)
}

// Terminal prints frames to a writer as rows of ANSI colored blocks.
// Each Cell x Cell square of the frame becomes one block.
type Terminal struct {
	w    io.Writer
	rect image.Rectangle
	cell int

	// One bit per printed block
	cells *image1bit.Packed

	halted bool
}

// NewTerminal creates a terminal display writing to w.
//
// opts can be nil to use defaults (320x240 frame, 10 pixels per block).
func NewTerminal(w io.Writer, opts *TerminalOpts) (*Terminal, error) {
	if opts == nil {
		opts = &TerminalOpts{}
	}
	width, height, cell := opts.W, opts.H, opts.Cell
	if width == 0 && height == 0 {
		width, height = binview.Width, binview.Height
	}
	if cell == 0 {
		cell = binview.Scale
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("viewer: width and height must be positive")
	}
	if cell < 0 || width%cell != 0 || height%cell != 0 {
		return nil, errors.New("viewer: cell size must divide width and height")
	}

	return &Terminal{
		w:     w,
		rect:  image.Rect(0, 0, width, height),
		cell:  cell,
		cells: image1bit.NewPacked(image.Rect(0, 0, width/cell, height/cell)),
	}, nil
}

// ColorModel returns the color model of the terminal.
func (t *Terminal) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the frame bounds of the terminal.
func (t *Terminal) Bounds() image.Rectangle {
	return t.rect
}

// Draw samples src into the block buffer and prints the whole buffer.
func (t *Terminal) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if t.halted {
		return errors.New("viewer: halted")
	}

	dst = dst.Intersect(t.rect)
	if dst.Empty() {
		return nil
	}

	// Blocks covered by dst, rounded outwards
	dr := image.Rect(
		dst.Min.X/t.cell, dst.Min.Y/t.cell,
		(dst.Max.X+t.cell-1)/t.cell, (dst.Max.Y+t.cell-1)/t.cell,
	)
	sr := image.Rectangle{Min: sp, Max: sp.Add(dst.Size())}
	xdraw.NearestNeighbor.Scale(t.cells, dr, src, sr, xdraw.Src, nil)

	return t.print()
}

// print writes every block row followed by a newline.
func (t *Terminal) print() error {
	w := bufio.NewWriter(t.w)
	b := t.cells.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := 0
			if t.cells.BitAt(x, y).On {
				v = 255
			}
			if _, err := io.WriteString(w, coloredBlock("  ", v, v, v)); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// coloredBlock wraps block in a 24-bit ANSI background color.
func coloredBlock(block string, red, green, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}

// Halt stops the terminal display.
func (t *Terminal) Halt() error {
	t.halted = true
	return nil
}

// String returns a string representation of the terminal display.
func (t *Terminal) String() string {
	return fmt.Sprintf("viewer.Terminal{%dx%d/%d}", t.rect.Dx(), t.rect.Dy(), t.cell)
}
