package codegen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/samber/lo"
)

const (
	Include   = "#include <cstdint>"
	Extension = ".cpp"
	PerLine   = 8
)

// Array is a named C++ array of 16-bit words with its dimensions.
type Array struct {
	Name   string
	Width  int
	Height int
	Words  []uint16
}

// WriteTo renders the array declaration. A trailing group shorter than
// PerLine is not newline terminated, the closing brace follows it.
func (a *Array) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, "%s\n", Include)
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "int %s_width  = %d;\n", a.Name, a.Width)
	fmt.Fprintf(bw, "int %s_height = %d;\n", a.Name, a.Height)
	fmt.Fprintf(bw, "uint16_t %s[] = {\n", a.Name)

	for _, line := range lo.Chunk(a.Words, PerLine) {
		bw.WriteByte('\t')
		for _, word := range line {
			fmt.Fprintf(bw, "0x%04X, ", word)
		}
		if len(line) == PerLine {
			bw.WriteByte('\n')
		}
	}

	fmt.Fprintf(bw, "};\n")

	err := bw.Flush()
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
