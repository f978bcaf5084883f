package convolve

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	for a := 0; a < 256; a += 15 {
		for r := 0; r < 256; r += 17 {
			for g := 0; g < 256; g += 51 {
				for b := 0; b < 256; b += 85 {
					p := Pixel{A: uint8(a), R: uint8(r), G: uint8(g), B: uint8(b)}
					if got := Unpack(Pack(p)); got != p {
						t.Fatalf("Unpack(Pack(%+v)) = %+v", p, got)
					}
				}
			}
		}
	}

	// Edge values for every channel.
	for _, v := range []uint8{0, 1, 127, 128, 254, 255} {
		p := Pixel{A: v, R: v, G: v, B: v}
		if got := Unpack(Pack(p)); got != p {
			t.Fatalf("Unpack(Pack(%+v)) = %+v", p, got)
		}
	}
}

func TestPackLayout(t *testing.T) {
	got := Pack(Pixel{A: 0xff, R: 0x12, G: 0x34, B: 0x56})
	if got != 0xff123456 {
		t.Fatalf("Pack = %#08x, want 0xff123456", got)
	}
}

func TestPackClamped(t *testing.T) {
	got := packClamped([4]int{300, -20, 128, 255})
	want := Pack(Pixel{A: 255, R: 0, G: 128, B: 255})
	if got != want {
		t.Fatalf("packClamped = %#08x, want %#08x", got, want)
	}
}

func TestPackRawOverflow(t *testing.T) {
	cases := []struct {
		name string
		in   [4]int
		want uint32
	}{
		{name: "in range", in: [4]int{255, 1, 2, 3}, want: 0xff010203},
		{name: "red carries into alpha", in: [4]int{0, 400, 0, 0}, want: 0x01900000},
		{name: "green carries into red", in: [4]int{0, 0, 400, 0}, want: 0x00019000},
		{name: "alpha truncated", in: [4]int{510, 0, 0, 0}, want: 0xfe000000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := packRaw(tc.in); got != tc.want {
				t.Fatalf("packRaw(%v) = %#08x, want %#08x", tc.in, got, tc.want)
			}
		})
	}
}
