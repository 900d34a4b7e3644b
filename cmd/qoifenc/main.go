// Command qoifenc encodes images into qoif streams and inspects the result.
//
// Usage:
//
//	qoifenc encode -i photo.png -o photo.qoi --rgba
//	qoifenc encode -i frame.raw --raw 640x480 --raw-order little -o frame.qoi.zst --compress zstd
//	qoifenc inspect -i photo.qoi
//
// Use "-" as input to read from stdin and "-o -" to write to stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "qoifenc: %v\n", err)
		os.Exit(1)
	}
}
