package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qoifgo/qoif/compress"
	"github.com/qoifgo/qoif/format"
	"github.com/qoifgo/qoif/internal/hash"
	"github.com/qoifgo/qoif/section"
)

type inspectFlags struct {
	Input    string
	Compress string
}

// report summarizes a stream without decoding its pixels.
type report struct {
	header     section.Header
	fileSize   int
	streamSize int
	digest     uint64
	chunks     map[format.ChunkKind]int
	covered    uint64
}

func newInspectCmd(a *app) *cobra.Command {
	var flags inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the header, size, digest and chunk counts of a qoif stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.inspect(flags)
			if err != nil {
				return err
			}
			r.print(cmd.OutOrStdout())

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Input, "input", "i", "", `stream file ("-" for stdin)`)
	f.StringVar(&flags.Compress, "compress", "", "compression of the file: none|zstd|s2|lz4 (default: from suffix)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) inspect(flags inspectFlags) (report, error) {
	ct, err := resolveCompression(flags.Compress, flags.Input)
	if err != nil {
		return report{}, err
	}

	in, err := openInput(flags.Input)
	if err != nil {
		return report{}, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return report{}, err
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return report{}, err
	}

	streamData, err := codec.Decompress(data)
	if err != nil {
		return report{}, fmt.Errorf("decompress %s: %w", ct, err)
	}

	r := report{
		fileSize:   len(data),
		streamSize: len(streamData),
		digest:     hash.Digest(streamData),
		chunks:     make(map[format.ChunkKind]int, len(format.ChunkKinds)),
	}

	if r.header, err = section.ParseHeader(streamData); err != nil {
		return report{}, err
	}

	err = section.ScanChunks(streamData, func(kind format.ChunkKind, chunk []byte) {
		r.chunks[kind]++
		if kind == format.ChunkRun {
			r.covered += uint64(section.RunLength(chunk[0]))
		} else {
			r.covered++
		}
	})
	if err != nil {
		return report{}, err
	}

	return r, nil
}

func (r report) print(w io.Writer) {
	fmt.Fprintf(w, "width:       %d\n", r.header.Width)
	fmt.Fprintf(w, "height:      %d\n", r.header.Height)
	fmt.Fprintf(w, "channels:    %d (%s)\n", uint8(r.header.Channels), r.header.Channels)
	fmt.Fprintf(w, "colorspace:  %d (%s)\n", uint8(r.header.Colorspace), r.header.Colorspace)
	fmt.Fprintf(w, "file size:   %d\n", r.fileSize)
	fmt.Fprintf(w, "stream size: %d\n", r.streamSize)
	fmt.Fprintf(w, "digest:      %016x\n", r.digest)
	for _, kind := range format.ChunkKinds {
		fmt.Fprintf(w, "chunks %-5s %d\n", kind.String()+":", r.chunks[kind])
	}
	fmt.Fprintf(w, "pixels:      %d of %d\n", r.covered, r.header.PixelCount())
}
