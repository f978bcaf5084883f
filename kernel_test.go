package convolve

import "testing"

func TestKernelSums(t *testing.T) {
	want := map[string]float64{
		"sobel-x":   0,
		"sobel-y":   0,
		"sharpen":   1,
		"gaussian":  16,
		"laplacian": 0,
	}

	kernels := Kernels()
	if len(kernels) != len(want) {
		t.Fatalf("Kernels() returned %d kernels, want %d", len(kernels), len(want))
	}

	for _, nk := range kernels {
		w, ok := want[nk.Name]
		if !ok {
			t.Fatalf("unexpected kernel %q", nk.Name)
		}
		if got := nk.Kernel.Sum(); got != w {
			t.Errorf("%s sum = %v, want %v", nk.Name, got, w)
		}
	}
}
