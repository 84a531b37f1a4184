// Package image1bit provides a 1-bit monochrome image format with MSB-first packing.
//
// Pixels are stored in horizontal bit packing where each byte contains 8 pixels.
// The most significant bit of a byte is the leftmost pixel.
//
// Memory layout example for an 8-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7
//	Values: 1 0 1 1 0 0 0 0
//	Bytes:  0xB0
//
// This is the same order in which the bits of a raw file are read, so the
// first Stride*Dy bytes of any file can be viewed directly as a Packed image.
//
// This package provides:
//
// - Bit: A color type representing a single on/off pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - Packed: An image.Image implementation storing 8 pixels per byte
//
// Example usage:
//
//	// Wrap the first 96 bytes of a file as a 32x24 image
//	img, err := image1bit.FromBytes(image.Rect(0, 0, 32, 24), data[:96])
//
//	// Read a pixel
//	on := img.BitAt(0, 0).On
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.Bit{On: true}), image.Point{}, draw.Src)
package image1bit
