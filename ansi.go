package convolve

import (
	"bufio"
	"fmt"
	"io"
)

// WriteANSI renders g as rows of true-color terminal cells, one space per
// pixel with the pixel's RGB as background. Alpha is ignored. Intended for
// small images.
func WriteANSI(w io.Writer, g *Grid) error {
	if err := g.validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			p := Unpack(g.At(i, j))
			fmt.Fprintf(bw, "\x1b[48;2;%d;%d;%dm \x1b[0m", p.R, p.G, p.B)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
