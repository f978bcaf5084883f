package convolve

// Pixel is one ARGB pixel split into its 8-bit channels.
type Pixel struct {
	A, R, G, B uint8
}

// Pack encodes p as A<<24 | R<<16 | G<<8 | B.
func Pack(p Pixel) uint32 {
	return uint32(p.A)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// Unpack splits a packed ARGB value into its channels.
func Unpack(v uint32) Pixel {
	return Pixel{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// channels returns the pixel as [a, r, g, b] for per-channel arithmetic.
func (p Pixel) channels() [4]int {
	return [4]int{int(p.A), int(p.R), int(p.G), int(p.B)}
}

// packClamped clamps each channel to [0, 255] before packing.
func packClamped(c [4]int) uint32 {
	return Pack(Pixel{
		A: clampChannel(c[0]),
		R: clampChannel(c[1]),
		G: clampChannel(c[2]),
		B: clampChannel(c[3]),
	})
}

// packRaw shifts and ORs the channels without masking. Values above 255
// overlap the next channel's bits and anything past bit 31 is dropped.
// Channels must be non-negative.
func packRaw(c [4]int) uint32 {
	return uint32(c[0]<<24 | c[1]<<16 | c[2]<<8 | c[3])
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
