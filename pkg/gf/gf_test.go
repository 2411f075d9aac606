package gf_test

import (
	"testing"

	"github.com/kargakis/goaes/pkg/gf"
)

func TestXtime(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want byte
	}{
		{
			name: "zero",
			in:   0x00,
			want: 0x00,
		},
		{
			name: "no reduction",
			in:   0x01,
			want: 0x02,
		},
		{
			name: "0x57 from the FIPS-197 worked example",
			in:   0x57,
			want: 0xae,
		},
		{
			name: "reduction",
			in:   0xae,
			want: 0x47,
		},
		{
			name: "high bit alone",
			in:   0x80,
			want: 0x1b,
		},
	}

	for _, tt := range tests {
		if got := gf.Xtime(tt.in); got != tt.want {
			t.Errorf("%s: Xtime(%#x) = %#x, want %#x", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestMulKnown(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x57, 0x13, 0xfe}, // FIPS-197 worked example
		{0x57, 0x02, 0xae},
		{0x57, 0x01, 0x57},
		{0x00, 0xff, 0x00},
		{0x01, 0x01, 0x01},
	}

	for _, tt := range tests {
		if got := gf.Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%#x, %#x) = %#x, want %#x", tt.a, tt.b, got, tt.want)
		}
	}
}

// Test all Mul inputs against a bit-by-bit n² algorithm over the
// powers of x.
func TestMulExhaustive(t *testing.T) {
	var powx [15]byte
	p := byte(1)
	for i := range powx {
		powx[i] = p
		p = gf.Xtime(p)
	}

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			var want byte
			for k := uint(0); k < 8; k++ {
				for l := uint(0); l < 8; l++ {
					if a&(1<<k) != 0 && b&(1<<l) != 0 {
						want ^= powx[k+l]
					}
				}
			}
			if got := gf.Mul(byte(a), byte(b)); got != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x", a, b, got, want)
			}
		}
	}
}
