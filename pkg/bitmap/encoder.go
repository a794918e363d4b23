package bitmap

import (
	"image"

	"github.com/disintegration/imaging"
)

// Normalize copies src into a non-premultiplied RGBA image anchored at (0,0).
// Grey and paletted sources are expanded to RGB on the way.
func Normalize(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(src)
}

// RowFunc is called once a full row has been encoded.
type RowFunc func(y int)

// Encode scans src in row-major order, x fastest, and packs every pixel into
// a byte swapped RGB565 word. The alpha channel is ignored.
func Encode(src image.Image, rows ...RowFunc) *RGB565 {
	n := Normalize(src)
	b := n.Bounds()
	d := NewRGB565(b)

	for y := 0; y < b.Dy(); y++ {
		line := n.Pix[y*n.Stride:]
		for x := 0; x < b.Dx(); x++ {
			p := line[x*4 : x*4+3]
			d.words[y*d.stride+x] = Word(p[0], p[1], p[2])
		}
		for _, fn := range rows {
			fn(y)
		}
	}

	return d
}
