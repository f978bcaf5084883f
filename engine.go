package convolve

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

var (
	// ErrEmptyImage is returned for nil or zero-sized inputs.
	ErrEmptyImage = errors.New("empty image")

	// ErrDimensionMismatch is returned by Add when the grids differ in size.
	ErrDimensionMismatch = errors.New("grid dimensions differ")
)

// Border selects what a 3x3 window sees outside the grid.
type Border int

const (
	// BorderZero treats out-of-bounds neighbours as all-zero pixels. Edge
	// pixels therefore come out darker than interior ones.
	BorderZero Border = iota
	// BorderClamp repeats the nearest edge pixel.
	BorderClamp
)

func (b Border) String() string {
	switch b {
	case BorderZero:
		return "zero"
	case BorderClamp:
		return "clamp"
	default:
		return fmt.Sprintf("Border(%d)", int(b))
	}
}

// ParseBorder maps "zero" or "clamp" to a Border.
func ParseBorder(s string) (Border, error) {
	switch s {
	case "zero", "":
		return BorderZero, nil
	case "clamp":
		return BorderClamp, nil
	}
	return BorderZero, fmt.Errorf("unknown border policy %q", s)
}

// Option configures an Engine.
type Option func(*Engine)

// WithBorder sets the border policy. The default is BorderZero.
func WithBorder(b Border) Option {
	return func(e *Engine) {
		e.border = b
	}
}

// Engine applies kernels to grids. It holds no per-image state and its
// methods never modify their inputs.
type Engine struct {
	border Border
}

// NewEngine constructs an Engine with zero padding unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{border: BorderZero}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Border reports the engine's border policy.
func (e *Engine) Border() Border {
	return e.border
}

var defaultEngine struct {
	once sync.Once
	eng  *Engine
}

func getDefaultEngine() *Engine {
	defaultEngine.once.Do(func() {
		defaultEngine.eng = NewEngine()
	})
	return defaultEngine.eng
}

// Convolve applies k to g with the default zero-padding engine.
func Convolve(k Kernel, g *Grid) (*Grid, error) {
	return getDefaultEngine().Convolve(k, g)
}

// EdgeMap sums the Sobel X, Sobel Y and Laplacian responses of g using the
// default engine.
func EdgeMap(g *Grid) (*Grid, error) {
	return getDefaultEngine().EdgeMap(g)
}

// Convolve returns a new grid where every pixel is the kernel-weighted sum
// of its 3x3 neighbourhood, computed per channel. Each product is rounded
// half to even before it is accumulated and each channel sum is clamped to
// [0, 255].
func (e *Engine) Convolve(k Kernel, g *Grid) (*Grid, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	out := NewGrid(g.Width, g.Height)
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			var sum [4]int
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					v, ok := e.neighbor(g, i+di, j+dj)
					if !ok {
						continue
					}

					w := k[di+1][dj+1]
					ch := Unpack(v).channels()
					for c := range ch {
						sum[c] += int(math.RoundToEven(float64(ch[c]) * w))
					}
				}
			}
			out.Set(i, j, packClamped(sum))
		}
	}

	Logger().Debug("convolved grid",
		"width", g.Width,
		"height", g.Height,
		"kernel_sum", k.Sum(),
		"border", e.border.String())

	return out, nil
}

// neighbor returns the pixel the window sees at (i, j). ok is false when
// the position is outside the grid and contributes nothing.
func (e *Engine) neighbor(g *Grid, i, j int) (v uint32, ok bool) {
	if g.In(i, j) {
		return g.At(i, j), true
	}

	if e.border != BorderClamp {
		return 0, false
	}

	i = min(max(i, 0), g.Height-1)
	j = min(max(j, 0), g.Width-1)
	return g.At(i, j), true
}

// EdgeMap convolves g with SobelX, SobelY and Laplacian and adds the three
// results with Add.
func (e *Engine) EdgeMap(g *Grid) (*Grid, error) {
	passes := []NamedKernel{
		{Name: "sobel-x", Kernel: SobelX},
		{Name: "sobel-y", Kernel: SobelY},
		{Name: "laplacian", Kernel: Laplacian},
	}

	var acc *Grid
	for _, p := range passes {
		Logger().Debug("applying kernel", "kernel", p.Name)

		res, err := e.Convolve(p.Kernel, g)
		if err != nil {
			return nil, fmt.Errorf("convolve %s: %w", p.Name, err)
		}

		if acc == nil {
			acc = res
			continue
		}

		acc, err = Add(acc, res)
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", p.Name, err)
		}
	}

	return acc, nil
}

// Add sums a and b channel by channel. The sums are not clamped: they are
// packed with plain shifts, so a channel above 255 carries into the channel
// above it and alpha overflow is truncated.
func Add(a, b *Grid) (*Grid, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	if !a.sameShape(b) {
		return nil, fmt.Errorf("%dx%d vs %dx%d: %w", a.Width, a.Height, b.Width, b.Height, ErrDimensionMismatch)
	}

	out := NewGrid(a.Width, a.Height)
	for idx := range a.Pix {
		ca := Unpack(a.Pix[idx]).channels()
		cb := Unpack(b.Pix[idx]).channels()

		var sum [4]int
		for c := range sum {
			sum[c] = ca[c] + cb[c]
		}
		out.Pix[idx] = packRaw(sum)
	}

	Logger().Debug("added grids", "width", a.Width, "height", a.Height)

	return out, nil
}
