package aes

import (
	"testing"

	"github.com/kargakis/goaes/pkg/gf"
)

// Check that the S-boxes are inverses of each other. They have more
// structure that we could test, but if this sanity check passes,
// we'll assume the cut and paste from the FIPS PDF worked.
func TestSboxes(t *testing.T) {
	for i := 0; i < 256; i++ {
		if j := sbox0[sbox1[i]]; j != byte(i) {
			t.Errorf("sbox0[sbox1[%#x]] = %#x", i, j)
		}
		if j := sbox1[sbox0[i]]; j != byte(i) {
			t.Errorf("sbox1[sbox0[%#x]] = %#x", i, j)
		}
	}
}

// Test that gf.Xtime reduces by the same polynomial the tables are
// built on.
func TestXtimePoly(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := uint16(i) << 1
		if want&0x100 != 0 {
			want ^= poly
		}
		if got := gf.Xtime(byte(i)); got != byte(want) {
			t.Errorf("Xtime(%#x) = %#x, want %#x", i, got, byte(want))
		}
	}
}
