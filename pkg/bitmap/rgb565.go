package bitmap

import (
	"image"
	"image/color"
)

// https://github.com/gonutz/framebuffer/blob/master/fb.go

// Quantize truncates 8-bit channels to their top 5, 6 and 5 bits.
func Quantize(r, g, b uint8) (r5, g6, b5 uint16) {
	r5 = uint16(r>>3) & 0x1F
	g6 = uint16(g>>2) & 0x3F
	b5 = uint16(b>>3) & 0x1F
	return
}

// Pack lays the quantized channels out as RRRRRGGGGGGBBBBB.
func Pack(r5, g6, b5 uint16) uint16 {
	return b5 | g6<<5 | r5<<11
}

// Swap exchanges the high and low byte of a word.
func Swap(p uint16) uint16 {
	return p>>8 | p<<8
}

// Word returns the byte swapped RGB565 value of a 24-bit colour, the form
// written into generated arrays.
func Word(r, g, b uint8) uint16 {
	return Swap(Pack(Quantize(r, g, b)))
}

func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		words:      make([]uint16, r.Dx()*r.Dy()),
		stride:     r.Dx(),
		bounds:     r,
		colorModel: rgb565Color{},
	}
}

// RGB565 holds byte swapped RGB565 words in row-major order. It implements
// the draw.Image interface.
type RGB565 struct {
	words      []uint16
	stride     int
	bounds     image.Rectangle
	colorModel color.Model
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *RGB565) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *RGB565) ColorModel() color.Model {
	return d.colorModel
}

// At implements the image.Image (and draw.Image) interface.
func (d *RGB565) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(d.bounds)) {
		return rgb565(0)
	}
	return rgb565(Swap(d.words[d.offset(x, y)]))
}

// Set implements the draw.Image interface. Alpha is dropped, the colour
// channels are kept as they are before premultiplication.
func (d *RGB565) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(d.bounds)) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	d.words[d.offset(x, y)] = Word(n.R, n.G, n.B)
}

// Words returns the swapped words, row-major, x fastest.
func (d *RGB565) Words() []uint16 {
	return d.words
}

func (d *RGB565) offset(x, y int) int {
	return (y-d.bounds.Min.Y)*d.stride + (x - d.bounds.Min.X)
}

// Each pixel is two bytes, 5 bits for red, 6 bits for green and 5 bits for
// blue. There is no alpha channel, so alpha is assumed to always be 100%
// opaque.
// This shows the layout of a packed pixel before the byte swap:
//
//    bit 76543210  76543210
//        RRRRRGGG  GGGBBBBB
//       high byte  low byte
type rgb565Color struct{}

func (rgb565Color) Convert(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rgb565(Pack(Quantize(n.R, n.G, n.B)))
}

// rgb565 implements the color.Color interface.
type rgb565 uint16

// RGBA implements the color.Color interface.
func (c rgb565) RGBA() (r, g, b, a uint32) {
	// To convert a color channel from 5 or 6 bits back to 16 bits, the short
	// bit pattern is duplicated to fill all 16 bits.
	// For example the green channel in rgb565 is the middle 6 bits:
	//     00000GGGGGG00000
	//
	// To create a 16 bit channel, these bits are or-ed together starting at the
	// highest bit:
	//     GGGGGG0000000000 shifted << 5
	//     000000GGGGGG0000 shifted >> 1
	//     000000000000GGGG shifted >> 7
	rBits := uint32(c & 0xF800) // RRRRR00000000000
	gBits := uint32(c & 0x7E0)  // 00000GGGGGG00000
	bBits := uint32(c & 0x1F)   // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}
