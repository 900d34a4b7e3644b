package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qoifgo/qoif/compress"
	"github.com/qoifgo/qoif/pixel"
	"github.com/qoifgo/qoif/stream"
)

type encodeFlags struct {
	Input         string
	Output        string
	RGB           bool
	RGBA          bool
	Compress      string
	FlushFinalRun bool
	Raw           string
	RawOrder      string
}

func newEncodeCmd(a *app) *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a PNG/JPEG/GIF image or raw pixel words into a qoif stream",
		Long: `Encode an image into a qoif stream.

The input is decoded as PNG, JPEG or GIF unless --raw is given, in which case
it is read as 32-bit RGBA words in --raw-order byte order.

Streams are 4-channel by default; --rgb writes a 3-channel stream and
discards alpha. The output may be compressed as a whole with --compress.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEncode(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Input, "input", "i", "", `input file ("-" for stdin)`)
	f.StringVarP(&flags.Output, "output", "o", "", `output file (default: <input>.qoi, "-" for stdout)`)
	f.BoolVar(&flags.RGB, "rgb", false, "write a 3-channel stream")
	f.BoolVar(&flags.RGBA, "rgba", false, "write a 4-channel stream (default)")
	f.StringVar(&flags.Compress, "compress", "", "compress the stream: none|zstd|s2|lz4 (default: from output suffix)")
	f.BoolVar(&flags.FlushFinalRun, "flush-final-run", false, "emit the run pending after the last pixel")
	f.StringVar(&flags.Raw, "raw", "", "read raw pixel words of the given WxH dimensions")
	f.StringVar(&flags.RawOrder, "raw-order", "big", "byte order of raw pixel words: big|little|native")

	_ = cmd.MarkFlagRequired("input")
	cmd.MarkFlagsMutuallyExclusive("rgb", "rgba")

	return cmd
}

func (a *app) runEncode(cmd *cobra.Command, flags encodeFlags) error {
	src, err := a.readSource(flags)
	if err != nil {
		return err
	}

	output := flags.Output
	ct, err := resolveCompression(flags.Compress, output)
	if err != nil {
		return err
	}
	if output == "" {
		output = defaultOutputPath(flags.Input, ct)
	}

	opts := []stream.EncoderOption{
		stream.WithRGBA(),
		stream.WithFinalRunFlush(flags.FlushFinalRun),
		stream.WithLogger(a.logger),
	}
	if flags.RGB {
		opts = append(opts, stream.WithRGB())
	}

	encoder, err := stream.NewEncoder(src.width, src.height, opts...)
	if err != nil {
		return err
	}

	dst, err := createOutput(output)
	if err != nil {
		return err
	}

	sink, err := compress.NewWriter(ct, dst)
	if err != nil {
		_ = dst.Close()
		return err
	}

	if err := writeStream(encoder, src.pixels, sink, dst); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}

	stats := encoder.Stats()
	cstats := sink.Stats()

	a.logger.Info("encoded",
		zap.String("input", flags.Input),
		zap.String("output", output),
		zap.String("source", src.format),
		zap.Stringer("compression", ct),
		zap.Int64("stream_bytes", stats.Bytes),
		zap.Int64("output_bytes", cstats.CompressedSize),
	)

	if output != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d %s, %d bytes (%s), digest %016x\n",
			output, src.width, src.height, encoder.Channels(), cstats.CompressedSize, ct, stats.Digest)
	}

	return nil
}

// writeStream encodes pixels into sink, which closes dst on success. The
// encoder leaves sink open after a failed write, so on error sink is aborted
// and dst closed here.
func writeStream(encoder *stream.Encoder, pixels []pixel.Pixel, sink *compress.Writer, dst io.Closer) error {
	if err := encoder.Encode(pixels, sink); err != nil {
		sink.Abort()
		_ = dst.Close()

		return err
	}

	return nil
}

func (a *app) readSource(flags encodeFlags) (source, error) {
	in, err := openInput(flags.Input)
	if err != nil {
		return source{}, err
	}
	defer in.Close()

	if flags.Raw != "" {
		return readRaw(in, flags.Raw, flags.RawOrder)
	}

	return readImage(in)
}

// createOutput opens path for writing. "-" is stdout, which is never closed.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
