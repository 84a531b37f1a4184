// Package viewer provides display.Drawer implementations for rendered bitmaps.
//
// Dev hands every drawn frame to the host's default image viewer.
// Terminal prints frames as ANSI colored blocks.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"runtime"

	"github.com/flavioheleno/binview"
	"golang.org/x/image/bmp"
	"golang.org/x/sys/execabs"
)

// Opts is the configuration for the image viewer device.
type Opts struct {
	// Frame dimensions in pixels
	W int // Width (default: 320)
	H int // Height (default: 240)

	// Directory for the temporary image handed to the viewer (default: os.TempDir())
	TempDir string

	// Launch opens the image file at path in a viewer and returns without
	// waiting for it to close. nil selects the host's default viewer.
	Launch func(path string) error
}

// Dev is the device handle for the host's image viewer.
type Dev struct {
	launch  func(path string) error
	tempDir string

	rect image.Rectangle
	next *image.Gray // Frame being composed

	// Path of the last image handed to the viewer
	last string

	halted bool
}

// New creates a viewer device.
//
// opts can be nil to use defaults (320x240, host viewer). New fails when no
// viewer launcher can be found on PATH.
func New(opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	w, h := opts.W, opts.H
	if w == 0 && h == 0 {
		w, h = binview.Width, binview.Height
	}
	if w <= 0 || h <= 0 {
		return nil, errors.New("viewer: width and height must be positive")
	}

	launch := opts.Launch
	if launch == nil {
		var err error
		if launch, err = hostLauncher(runtime.GOOS); err != nil {
			return nil, err
		}
	}

	return &Dev{
		launch:  launch,
		tempDir: opts.TempDir,
		rect:    image.Rect(0, 0, w, h),
	}, nil
}

// launchCommand returns the program and leading arguments that open a file
// in the default application on goos.
func launchCommand(goos string) (name string, args []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// hostLauncher resolves the default viewer launcher for goos.
func hostLauncher(goos string) (func(path string) error, error) {
	name, args := launchCommand(goos)
	bin, err := execabs.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("viewer: no image viewer launcher: %w", err)
	}
	return func(path string) error {
		cmd := execabs.Command(bin, append(args[:len(args):len(args)], path)...)
		if err := cmd.Start(); err != nil {
			return err
		}
		// The viewer outlives this call.
		return cmd.Process.Release()
	}, nil
}

// ColorModel returns the color model of the device.
func (d *Dev) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds returns the frame bounds of the device.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw composes src into the frame and opens the frame in the viewer.
// The dst rectangle specifies the destination region of the frame.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("viewer: halted")
	}

	// Clip to frame bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	frame := d.compose(dst, src, sp)
	path, err := d.writeFrame(frame)
	if err != nil {
		return err
	}
	if err := d.launch(path); err != nil {
		return fmt.Errorf("viewer: failed to open %s: %w", path, err)
	}
	d.last = path
	return nil
}

// compose returns the frame to show after drawing src into dst.
func (d *Dev) compose(dst image.Rectangle, src image.Image, sp image.Point) *image.Gray {
	// Fast path: source is already a full-size grayscale frame
	if g, ok := src.(*image.Gray); ok {
		if dst == d.rect && sp == g.Rect.Min && g.Rect == d.rect {
			return g
		}
	}

	// Lazy-initialize the frame buffer
	if d.next == nil {
		d.next = image.NewGray(d.rect)
	}
	draw.Draw(d.next, dst, src, sp, draw.Src)
	return d.next
}

// writeFrame encodes frame as a BMP file in the temp directory.
func (d *Dev) writeFrame(frame *image.Gray) (string, error) {
	f, err := os.CreateTemp(d.tempDir, "binview-*.bmp")
	if err != nil {
		return "", fmt.Errorf("viewer: failed to create image file: %w", err)
	}
	if err := bmp.Encode(f, frame); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("viewer: failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("viewer: failed to write image: %w", err)
	}
	return f.Name(), nil
}

// Last returns the path of the last image handed to the viewer, or "".
func (d *Dev) Last() string {
	return d.last
}

// Halt stops the device. Viewers already started keep running.
func (d *Dev) Halt() error {
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("viewer.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
