// Command binview shows the first 768 bits of a file as a 320x240 image.
//
// Usage:
//
//	binview <file>
//
// The bits are read MSB-first into a 32x24 grid (1 is white, 0 is black),
// scaled 10x and opened in the default image viewer. Without a viewer on
// PATH the image is printed to the terminal instead. Files must hold at
// least 96 bytes; anything past that is ignored.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/flavioheleno/binview"
	"github.com/flavioheleno/binview/viewer"
	"periph.io/x/conn/v3/display"
)

const usage = "Drag a binary file onto this exe to view it as an image."

func main() {
	if err := run(os.Args[1:], os.Stdout, openDisplay); err != nil {
		log.Fatal(err)
	}
}

// openDisplay returns the host image viewer, or the terminal when none exists.
func openDisplay() (display.Drawer, error) {
	dev, err := viewer.New(nil)
	if err == nil {
		return dev, nil
	}
	log.Printf("%v; printing to the terminal instead", err)
	return viewer.NewTerminal(os.Stdout, nil)
}

// run parses args and views the named file. open is only called once a
// path is known, so a bare invocation touches neither files nor displays.
func run(args []string, stdout io.Writer, open func() (display.Drawer, error)) error {
	fs := flag.NewFlagSet("binview", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(stdout, usage)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, usage)
		return nil
	}

	d, err := open()
	if err != nil {
		return err
	}
	defer d.Halt()

	return binview.View(fs.Arg(0), d)
}
