// This package implements the command line tool that uses the API.
// It converts an image on the filesystem (or piped into stdin with "-") to
// ascii art, optionally in 24 bit colour, and can play animated GIFs in the
// terminal with --animate.
//
// Flags can also be set with JPG2ASCII_* environment variables or in a
// config.json, config.yaml or config.toml in the user config directory
// (e.g. ~/.config/jpg2ascii) or the working directory.
//
// Supported formats are png, jpeg, gif, bmp, tiff and webp
// (See github.com/nebbyJammin/jpg2ascii/pkg/asciiart).
package main
