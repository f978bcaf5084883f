package convolve

// Kernel is a 3x3 weight matrix indexed [row][col]. Entry [1][1] weighs the
// centre pixel; [0][*] weighs the row above it.
type Kernel [3][3]float64

var (
	// SobelX responds to horizontal intensity changes (vertical edges).
	SobelX = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	// SobelY responds to vertical intensity changes (horizontal edges).
	SobelY = Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	Sharpen = Kernel{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}

	// Gaussian is the unnormalized 3x3 binomial blur; its weights sum to 16.
	Gaussian = Kernel{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	}

	Laplacian = Kernel{
		{0, -1, 0},
		{-1, 4, -1},
		{0, -1, 0},
	}
)

// NamedKernel pairs a predefined kernel with a display name.
type NamedKernel struct {
	Name   string
	Kernel Kernel
}

// Kernels lists the predefined kernels.
func Kernels() []NamedKernel {
	return []NamedKernel{
		{Name: "sobel-x", Kernel: SobelX},
		{Name: "sobel-y", Kernel: SobelY},
		{Name: "sharpen", Kernel: Sharpen},
		{Name: "gaussian", Kernel: Gaussian},
		{Name: "laplacian", Kernel: Laplacian},
	}
}

// Sum returns the total of all weights.
func (k Kernel) Sum() float64 {
	var s float64
	for _, row := range k {
		for _, w := range row {
			s += w
		}
	}
	return s
}
