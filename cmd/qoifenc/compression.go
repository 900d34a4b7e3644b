package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qoifgo/qoif/errs"
	"github.com/qoifgo/qoif/format"
)

var compressionSuffixes = map[format.CompressionType]string{
	format.CompressionNone: "",
	format.CompressionZstd: ".zst",
	format.CompressionS2:   ".s2",
	format.CompressionLZ4:  ".lz4",
}

// resolveCompression picks the compression type from the flag value, or from
// the file suffix of path when the flag is empty.
func resolveCompression(flag string, path string) (format.CompressionType, error) {
	if flag == "" {
		ext := strings.ToLower(filepath.Ext(path))
		for ct, suffix := range compressionSuffixes {
			if suffix != "" && suffix == ext {
				return ct, nil
			}
		}

		return format.CompressionNone, nil
	}

	ct, ok := format.ParseCompressionType(flag)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, flag)
	}

	return ct, nil
}

// defaultOutputPath derives the output name from the input name:
// photo.png becomes photo.qoi, or photo.qoi.zst with zstd.
func defaultOutputPath(input string, ct format.CompressionType) string {
	if input == "-" {
		return "-"
	}

	base := strings.TrimSuffix(input, filepath.Ext(input))

	return base + ".qoi" + compressionSuffixes[ct]
}
