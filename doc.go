// Package binview renders the first bits of a binary file as a small bitmap.
//
// Viewing raw bytes as pixels is a quick way to spot structure in a binary
// file: headers, padding runs and repeated records all show up as patterns.
// binview reads exactly the first 768 bits (96 bytes) of a file and shows
// them as a 32×24 black and white image, scaled 10× to 320×240.
//
// # Pipeline
//
//	Load     file            → []byte
//	ToBits   []byte          → []uint8 (0 or 1, MSB-first per byte)
//	ToGrid   []uint8         → *Grid   (24 rows × 32 columns, 0 or 255)
//	Upscale  *Grid           → *image.Gray (320×240, nearest neighbor)
//	View     path, Drawer    → draws the image on any display.Drawer
//
// Bit order is MSB-first, so the byte 0xB0 (0b10110000) becomes the pixels
//
//	255 0 255 255 0 0 0 0
//
// Row 0 holds bits 0-31, row 1 holds bits 32-63, and so on. Everything after
// bit 768 is ignored.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/binview"
//		"github.com/flavioheleno/binview/viewer"
//	)
//
//	func main() {
//		dev, err := viewer.New(nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		if err := binview.View("firmware.bin", dev); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The pure part of the pipeline needs no display at all:
//
//	grid, img, err := binview.Render(data)
//	fmt.Print(grid) // '#' for white, '.' for black
//
// # Errors
//
// Files shorter than 96 bytes fail with a *SizeError reporting both the
// required (768) and the available bit count:
//
//	var se *binview.SizeError
//	if errors.As(err, &se) {
//		fmt.Println(se.Required, se.Actual)
//	}
//
// Read errors are returned exactly as the operating system reports them.
//
// # Displays
//
// View accepts any display.Drawer from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// The viewer package provides two: viewer.Dev hands the image to the host's
// default image viewer, and viewer.Terminal prints it with ANSI colors.
package binview
