// Command basic converts one image at 80 columns and prints how long it took.
//
// Usage: basic [image or directory]. Without an argument the first image in
// ./examples is used, a directory converts every image in it.
package main

import (
	"fmt"
	"os"

	"github.com/nebbyJammin/jpg2ascii/internal/cmdutil"
	"github.com/nebbyJammin/jpg2ascii/internal/log"
	"github.com/nebbyJammin/jpg2ascii/pkg/asciiart"
)

const width = 80

func main() {
	logger, _, err := log.SetupLogger(os.Getenv("JPG2ASCII_LOG_LEVEL"), "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	a := asciiart.New(
		asciiart.WithWidth(width),
		asciiart.WithLogger(logger),
	)

	path := "examples"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	info, err := os.Stat(path)
	if err != nil {
		logger.Error("no input", "path", path, "error", err)
		os.Exit(1)
	}

	if info.IsDir() && len(os.Args) > 1 {
		if _, err := cmdutil.ConvertImages(os.Stdout, a, path); err != nil {
			logger.Error("converting images failed", "dir", path, "error", err)
			os.Exit(1)
		}
		return
	}

	if info.IsDir() {
		if path, err = cmdutil.FindImage(path); err != nil {
			logger.Error("put a jpg, png or gif into ./examples or pass a path", "error", err)
			os.Exit(1)
		}
	}

	timing, err := cmdutil.ConvertImage(os.Stdout, a, path)
	if err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %s in %dms\n", timing.Path, timing.Conversion.Milliseconds())
}
