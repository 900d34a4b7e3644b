// Package pixel defines the packed 32-bit pixel consumed by the qoif encoder
// and helpers for producing pixel sequences from images and raw buffers.
//
// A Pixel stores its channels from most to least significant byte as
// Red, Green, Blue, Alpha:
//
//	p := pixel.Pack(0x12, 0x34, 0x56, 0xFF) // 0x123456FF
//	p.R() // 0x12
//	p.A() // 0xFF
package pixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/qoifgo/qoif/endian"
	"github.com/qoifgo/qoif/errs"
)

// Pixel is a packed RGBA value, R in the most significant byte.
type Pixel uint32

// Start is the implicit previous pixel before the first pixel of a stream.
const Start Pixel = 0x000000FF

// Pack combines four channel bytes into a Pixel.
func Pack(r, g, b, a uint8) Pixel {
	return Pixel(r)<<24 | Pixel(g)<<16 | Pixel(b)<<8 | Pixel(a)
}

func (p Pixel) R() uint8 { return uint8(p >> 24) }
func (p Pixel) G() uint8 { return uint8(p >> 16) }
func (p Pixel) B() uint8 { return uint8(p >> 8) }
func (p Pixel) A() uint8 { return uint8(p) }

// Opaque returns p with its alpha byte forced to 0xFF.
func (p Pixel) Opaque() Pixel {
	return p | 0xFF
}

// NRGBA converts p to a non-premultiplied color.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// FromColor packs any color, un-premultiplying through color.NRGBAModel.
func FromColor(c color.Color) Pixel {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.R, n.G, n.B, n.A)
}

// FromImage returns the pixels of img in row-major order, top-left first.
func FromImage(img image.Image) []Pixel {
	bounds := img.Bounds()
	return AppendImage(make([]Pixel, 0, bounds.Dx()*bounds.Dy()), img)
}

// AppendImage appends the pixels of img to dst in row-major order and
// returns the extended slice.
func AppendImage(dst []Pixel, img image.Image) []Pixel {
	bounds := img.Bounds()

	// fast path avoids the color.Color interface for the common decoder output
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, y):]
			for x := 0; x < bounds.Dx(); x++ {
				i := x * 4
				dst = append(dst, Pack(row[i], row[i+1], row[i+2], row[i+3]))
			}
		}

		return dst
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst = append(dst, FromColor(img.At(x, y)))
		}
	}

	return dst
}

// FromBytes unpacks raw 32-bit pixel words using the given byte order.
//
// With the big-endian engine the input is a plain R,G,B,A byte sequence; the
// little-endian engine reads words written as A,B,G,R.
func FromBytes(engine endian.EndianEngine, data []byte) ([]Pixel, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidRawLength, len(data))
	}

	pixels := make([]Pixel, len(data)/4)
	for i := range pixels {
		pixels[i] = Pixel(engine.Uint32(data[i*4:]))
	}

	return pixels, nil
}
