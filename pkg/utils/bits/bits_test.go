package bits_test

import (
	"bytes"
	"math/big"
	"testing"

	bitsutil "github.com/kargakis/goaes/pkg/utils/bits"
)

func TestUint64ToBytes(t *testing.T) {
	var n uint64 = 1000
	nBytes := bitsutil.Uint64ToBytes(n)
	bigN := new(big.Int).SetBytes(nBytes)
	if bigN.Uint64() != n {
		t.Errorf("expected big.Int(n) to be %d, got %d", n, bigN.Uint64())
	}
}

func TestBytesToUint64(t *testing.T) {
	bigN := big.NewInt(10000000000)
	nBytes := make([]byte, 8)
	bigNBytes := bigN.Bytes()
	copy(nBytes[8-len(bigNBytes):], bigNBytes)

	n := bitsutil.BytesToUint64(nBytes)
	if bigN.Uint64() != n {
		t.Errorf("expected n to be %d, got %d", bigN.Uint64(), n)
	}
}

func TestPutUint64(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want []byte
	}{
		{
			name: "zero",
			n:    0,
			want: make([]byte, 8),
		},
		{
			name: "counter one",
			n:    1,
			want: []byte{0, 0, 0, 0, 0, 0, 0, 1},
		},
		{
			name: "all bytes set",
			n:    0x0102030405060708,
			want: []byte{1, 2, 3, 4, 5, 6, 7, 8},
		},
	}

	for _, tt := range tests {
		b := make([]byte, 8)
		bitsutil.PutUint64(b, tt.n)
		if !bytes.Equal(b, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, b)
		}
		if got := bitsutil.BytesToUint64(b); got != tt.n {
			t.Errorf("%s: round trip: expected %d, got %d", tt.name, tt.n, got)
		}
	}
}
