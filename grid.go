package convolve

import (
	"fmt"
	"image"
	"image/color"
)

// Grid is a Height x Width array of packed ARGB pixels stored row-major.
type Grid struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// At returns the packed pixel at row i, column j.
func (g *Grid) At(i, j int) uint32 {
	return g.Pix[i*g.Width+j]
}

// Set stores a packed pixel at row i, column j.
func (g *Grid) Set(i, j int, v uint32) {
	g.Pix[i*g.Width+j] = v
}

// In reports whether (i, j) lies inside the grid.
func (g *Grid) In(i, j int) bool {
	return i >= 0 && j >= 0 && i < g.Height && j < g.Width
}

func (g *Grid) sameShape(o *Grid) bool {
	return g.Width == o.Width && g.Height == o.Height
}

func (g *Grid) validate() error {
	if g == nil {
		return fmt.Errorf("nil grid: %w", ErrEmptyImage)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("invalid grid dimensions %dx%d: %w", g.Width, g.Height, ErrEmptyImage)
	}
	if len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("grid holds %d pixels, want %d", len(g.Pix), g.Width*g.Height)
	}
	return nil
}

// GridFromImage converts img into a grid of non-premultiplied ARGB values.
// The grid origin is img.Bounds().Min.
func GridFromImage(img image.Image) (*Grid, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image provided: %w", ErrEmptyImage)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d: %w", width, height, ErrEmptyImage)
	}

	g := NewGrid(width, height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+j, bounds.Min.Y+i)).(color.NRGBA)
			g.Set(i, j, Pack(Pixel{A: c.A, R: c.R, G: c.G, B: c.B}))
		}
	}

	return g, nil
}

// Image returns the grid as an *image.NRGBA anchored at (0, 0).
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			p := Unpack(g.At(i, j))
			offset := img.PixOffset(j, i)
			img.Pix[offset+0] = p.R
			img.Pix[offset+1] = p.G
			img.Pix[offset+2] = p.B
			img.Pix[offset+3] = p.A
		}
	}
	return img
}

// opaqueImage drops the alpha channel and returns R, G and B as a fully
// opaque image. JPEG output goes through here.
func (g *Grid) opaqueImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			p := Unpack(g.At(i, j))
			offset := img.PixOffset(j, i)
			img.Pix[offset+0] = p.R
			img.Pix[offset+1] = p.G
			img.Pix[offset+2] = p.B
			img.Pix[offset+3] = 0xff
		}
	}
	return img
}
